// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Operation metrics
	OperationsSubmitted *prometheus.CounterVec // by action
	OperationOutcomes   *prometheus.CounterVec // by action, result
	ValidationFailures  *prometheus.CounterVec // by kind, caught before submission

	// View metrics
	RefreshSignals   prometheus.Counter
	ObjectsFetched   prometheus.Counter
	ListingsResolved prometheus.Counter

	// Node metrics
	RPCCallLatency *prometheus.HistogramVec // by method
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "sui_market_lab"
	}

	return &Metrics{
		OperationsSubmitted: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_submitted_total",
			Help:      "Operations handed to the execution collaborator, by action.",
		}, []string{"action"}),
		OperationOutcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_outcomes_total",
			Help:      "Terminal operation outcomes, by action and result.",
		}, []string{"action", "result"}),
		ValidationFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Local validation failures caught before any network round-trip.",
		}, []string{"kind"}),
		RefreshSignals: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refresh_signals_total",
			Help:      "Data-changed signals emitted on acknowledged success.",
		}),
		ObjectsFetched: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "objects_fetched_total",
			Help:      "Owned object snapshots fetched from the node.",
		}),
		ListingsResolved: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "listings_resolved_total",
			Help:      "Registry listings resolved to their escrowed asset.",
		}),
		RPCCallLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_call_latency_seconds",
			Help:      "Fullnode JSON-RPC call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
