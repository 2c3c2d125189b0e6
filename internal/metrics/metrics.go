package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "service_orders_requests_total",
		Help: "Total number of service order requests by method and response status.",
	},
		[]string{"method", "status"},
	)

	InternalErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "service_orders_internal_errors_total",
		Help: "Total number of store failures by operation.",
	},
		[]string{"operation"},
	)

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "service_orders_notification_failures_total",
		Help: "Total number of change notifications that could not be published.",
	})
)
