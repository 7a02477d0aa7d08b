package services

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all custom Prometheus metrics for the application
type Metrics struct {
	// CharSnap proxy metrics
	CharSnapRequests       *prometheus.CounterVec
	CharSnapUpstreamErrors prometheus.Counter
	CharSnapLatency        prometheus.Histogram
}

// NewMetrics creates the application metrics on the given registerer
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// Proxied requests by upstream status code
		CharSnapRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rickorty_charsnap_requests_total",
			Help: "Total number of requests relayed to the CharSnap upstream by status code",
		}, []string{"status"}),

		CharSnapUpstreamErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "rickorty_charsnap_upstream_errors_total",
			Help: "Total number of CharSnap requests that failed before an upstream response was read",
		}),

		CharSnapLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "rickorty_charsnap_request_duration_seconds",
			Help:    "CharSnap upstream round-trip latency in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}),
	}
}

// RecordCharSnapResponse records a relayed upstream response
func (m *Metrics) RecordCharSnapResponse(statusCode int, seconds float64) {
	if m == nil {
		return
	}
	m.CharSnapRequests.WithLabelValues(strconv.Itoa(statusCode)).Inc()
	m.CharSnapLatency.Observe(seconds)
}

// RecordCharSnapError records a failed upstream call
func (m *Metrics) RecordCharSnapError(seconds float64) {
	if m == nil {
		return
	}
	m.CharSnapUpstreamErrors.Inc()
	m.CharSnapLatency.Observe(seconds)
}
