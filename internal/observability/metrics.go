package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce       sync.Once
	httpRequestsTotal  *prometheus.CounterVec
	httpLatencySeconds *prometheus.HistogramVec
	registrationsTotal *prometheus.CounterVec
	ledgerOpsTotal     *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used across the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		httpLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		registrationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "registrations_total",
			Help: "Total number of registration attempts by outcome.",
		}, []string{"outcome"})

		ledgerOpsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "participant_ledger_ops_total",
			Help: "Total number of participant soft-delete ledger operations.",
		}, []string{"op"})

		prometheus.MustRegister(httpRequestsTotal, httpLatencySeconds, registrationsTotal, ledgerOpsTotal)
	})
}

// HTTPRequests exposes the counter for API requests.
func HTTPRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return httpRequestsTotal
}

// HTTPLatency exposes the latency histogram for API requests.
func HTTPLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return httpLatencySeconds
}

// Registrations exposes the counter for registration outcomes.
func Registrations() *prometheus.CounterVec {
	RegisterMetrics()
	return registrationsTotal
}

// LedgerOps exposes the counter for soft-delete ledger operations.
func LedgerOps() *prometheus.CounterVec {
	RegisterMetrics()
	return ledgerOpsTotal
}
