package middleware

import (
	"net/http"
	"time"

	"dealgate/internal/platform/metrics"
)

// Latency records request durations into the process-level histogram. The
// route pattern, not the raw path, would be the better label; chi exposes
// it only after routing, so the raw path is used with low-cardinality
// routes.
func Latency(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			m.ObserveHTTPRequest(r.Method, r.URL.Path, time.Since(start).Seconds())
		})
	}
}
