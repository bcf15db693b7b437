package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds process-level Prometheus metrics. Module-level metrics live
// next to their module (internal/investor/metrics).
type Metrics struct {
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates and registers all process-level Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dealgate_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and path",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "path"}),
	}
}

// ObserveHTTPRequest records one request's duration in seconds.
func (m *Metrics) ObserveHTTPRequest(method, path string, seconds float64) {
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(seconds)
}
