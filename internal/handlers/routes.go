package handlers

import (
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-serviceorder-api/internal/validation"
)

// Route paths served by the gin router, used for local runs and the proxy integration.
const (
	CollectionPath = "/customers/:customerId/service-orders"
	ItemPath       = "/customers/:customerId/service-orders/:id"
)

// RegisterRoutes mounts the service order routes plus /health and /metrics on r.
// Every method is forwarded so the dispatcher can answer OPTIONS and 405 itself.
func RegisterRoutes(r *gin.Engine, d *Dispatcher) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Any(CollectionPath, d.serveGin)
	r.Any(ItemPath, d.serveGin)
}

func (d *Dispatcher) serveGin(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		d.log.Error("read request body", zap.Error(err))
		writeResponse(c, errorResponse(http.StatusInternalServerError, msgInternal))
		return
	}

	resp := d.Dispatch(c.Request.Context(), fromGin(c, string(raw)))
	writeResponse(c, resp)
}

func fromGin(c *gin.Context, body string) validation.Event {
	path := make(map[string]string, len(c.Params))
	for _, p := range c.Params {
		path[p.Key] = p.Value
	}

	query := map[string]string{}
	for k, v := range c.Request.URL.Query() {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}

	return validation.Event{
		Method:                c.Request.Method,
		Resource:              c.FullPath(),
		RequestID:             c.GetHeader("X-Request-Id"),
		PathParameters:        path,
		QueryStringParameters: query,
		Body:                  body,
	}
}

func writeResponse(c *gin.Context, resp events.APIGatewayProxyResponse) {
	for k, v := range resp.Headers {
		c.Header(k, v)
	}
	if resp.Body == "" {
		c.Status(resp.StatusCode)
		return
	}
	c.Data(resp.StatusCode, resp.Headers["Content-Type"], []byte(resp.Body))
}
