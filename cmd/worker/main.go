package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-serviceorder-api/internal/aws"
	"github.com/imrishuroy/go-serviceorder-api/internal/config"
	"github.com/imrishuroy/go-serviceorder-api/internal/logger"
	"github.com/imrishuroy/go-serviceorder-api/internal/metrics"
)

func main() {
	runLocal := os.Getenv(config.EnvRunLocal) == "true"
	lg := logger.New(os.Getenv(config.EnvLogLevel), runLocal)
	defer func() { _ = lg.Sync() }()

	namespace := os.Getenv(config.EnvMetricsNS)
	if namespace == "" {
		namespace = config.DefaultMetricsNS
	}

	clients, err := aws.NewAWSClients(context.Background())
	if err != nil {
		log.Fatalf("failed to init aws clients: %v", err)
	}

	p := NewProcessor(metrics.NewCloudWatchRecorder(clients.CloudWatch, namespace), lg)

	// If RUN_LOCAL=true, process a single simulated SQS message and exit.
	if runLocal {
		testBody := os.Getenv("LOCAL_SQS_BODY")
		if testBody == "" {
			testBody = `{"event_type":"service_order.created","order_id":"00000000-0000-4000-8000-000000000001","customer_id":"local-customer"}`
		}
		event := events.SQSEvent{
			Records: []events.SQSMessage{
				{MessageId: "local-1", Body: testBody},
			},
		}
		resp, err := p.Handle(context.Background(), event)
		if err != nil || len(resp.BatchItemFailures) > 0 {
			lg.Fatal("local handler error", zap.Error(err), zap.Int("failures", len(resp.BatchItemFailures)))
		}
		return
	}

	lambda.Start(p.Handle)
}
