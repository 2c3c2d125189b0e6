package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-serviceorder-api/internal/aws"
	"github.com/imrishuroy/go-serviceorder-api/internal/changes"
	"github.com/imrishuroy/go-serviceorder-api/internal/config"
	"github.com/imrishuroy/go-serviceorder-api/internal/handlers"
	"github.com/imrishuroy/go-serviceorder-api/internal/logger"
	"github.com/imrishuroy/go-serviceorder-api/internal/orders"
)

func setupRouter(d *handlers.Dispatcher) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	handlers.RegisterRoutes(r, d)

	return r
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg := logger.New(cfg.LogLevel, cfg.RunLocal)
	defer func() { _ = lg.Sync() }()

	clients, err := aws.NewAWSClients(context.Background())
	if err != nil {
		lg.Fatal("failed to init aws clients", zap.Error(err))
	}

	store := orders.NewStore(clients.DynamoDB, cfg.TableName, cfg.CustomerIndex)

	var notifier handlers.Notifier
	if cfg.EventsQueueURL != "" {
		notifier = changes.NewPublisher(aws.NewPublisher(clients.SQS, cfg.EventsQueueURL))
	}

	d := handlers.NewDispatcher(store, notifier, lg)

	// RUN_LOCAL serves the gin router directly for development.
	if cfg.RunLocal {
		lg.Info("running local server", zap.String("addr", cfg.LocalAddr))
		if err := setupRouter(d).Run(cfg.LocalAddr); err != nil {
			lg.Fatal("failed to run local server", zap.Error(err))
		}
		return
	}

	// greedy {proxy+} integrations carry no pathParameters, so gin does the routing
	if cfg.UseGinProxy {
		adapter := ginadapter.New(setupRouter(d))
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	lambda.Start(d.Handle)
}
