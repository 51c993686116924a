// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// OrdersCreated counts orders successfully created at checkout.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "grocery",
		Name:      "orders_created_total",
		Help:      "Number of orders created at checkout.",
	})

	// StatusTransitions counts applied order status transitions by target status.
	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "grocery",
		Name:      "order_status_transitions_total",
		Help:      "Number of applied order status transitions.",
	}, []string{"status"})

	// PaymentTransitions counts applied payment status transitions by target status.
	PaymentTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "grocery",
		Name:      "payment_status_transitions_total",
		Help:      "Number of applied payment status transitions.",
	}, []string{"status"})
)

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
