package httpx

import (
	"fmt"
	"net/http"
	"time"

	"github.com/VictoriaMetrics/metrics"
)

var durationBuckets = metrics.ExponentialBuckets(1e-3, 5, 6)

// MetricsMiddleware counts requests and observes their latency in set,
// labelled by method, matched route pattern and status. It must wrap the
// ServeMux directly so the matched pattern is visible after dispatch.
// Unmatched requests share the "unmatched" method and path labels. A
// panicking request is recorded as a 500 and the panic is re-raised.
func MetricsMiddleware(set *metrics.Set) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := wrap(w)

			defer func() {
				status := rw.statusCode
				v := recover()
				if v != nil && !rw.wroteHeader() {
					status = http.StatusInternalServerError
				}
				observeRequest(set, r, status, start)
				if v != nil {
					panic(v)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}

func observeRequest(set *metrics.Set, r *http.Request, status int, start time.Time) {
	method, pattern := r.Method, r.Pattern
	if pattern == "" {
		method, pattern = "unmatched", "unmatched"
	}
	labels := fmt.Sprintf(`{method=%q,path=%q,status="%d"}`, method, pattern, status)
	set.GetOrCreateCounter("http_requests_total" + labels).Inc()
	set.GetOrCreatePrometheusHistogramExt("http_request_duration_seconds"+labels, durationBuckets).UpdateDuration(start)
}

// MetricsHandler exposes set and the process metrics in Prometheus text format.
func MetricsHandler(set *metrics.Set) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		set.WritePrometheus(w)
		metrics.WriteProcessMetrics(w)
	}
}
