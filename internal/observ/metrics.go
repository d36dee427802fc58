package observ

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Total number of orders placed",
	})

	OrdersUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_updated_total",
		Help: "Total number of order updates",
	})

	OrdersCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_cancelled_total",
		Help: "Total number of order cancellations",
	})

	// NotificationFailures counts best-effort notification sends that did
	// not reach the channel, by stage (publish = local send, delivery =
	// receipt reported by the gateway).
	NotificationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_failures_total",
			Help: "Total number of failed outbound notifications",
		},
		[]string{"stage"},
	)

	OracleRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oracle_requests_total",
			Help: "Total number of NLU oracle calls",
		},
		[]string{"outcome"},
	)
)
