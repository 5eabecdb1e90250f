package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_transactions_total",
			Help: "Total number of gateway transactions by type and normalized status",
		},
		[]string{"type", "status"},
	)

	transactionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_transaction_duration_seconds",
			Help:    "Duration of gateway round trips in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"type"},
	)

	transactionsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gateway_transactions_in_flight",
			Help: "Number of gateway transactions currently being processed",
		},
	)
)

// TrackTransaction marks a transaction as in flight and returns a done
// function that records its duration and final status
func TrackTransaction(tranType string) func(status string) {
	start := time.Now()
	transactionsInFlight.Inc()
	return func(status string) {
		transactionsInFlight.Dec()
		transactionDuration.WithLabelValues(tranType).Observe(time.Since(start).Seconds())
		transactionsTotal.WithLabelValues(tranType, status).Inc()
	}
}
