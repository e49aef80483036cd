package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const outcomeSuccess = "success"

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	retries  *prometheus.CounterVec
}

// newMetrics registers the client collectors on reg. A nil reg leaves them
// unregistered.
func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "promptly_client_requests_total",
				Help: "Promptly API calls by operation and outcome (success or error kind)",
			},
			[]string{"operation", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "promptly_client_request_duration_seconds",
				Help:    "Latency of Promptly API calls by operation",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		retries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "promptly_client_retries_total",
				Help: "Retries of Promptly API calls by the error kind that triggered them",
			},
			[]string{"kind"},
		),
	}
}
