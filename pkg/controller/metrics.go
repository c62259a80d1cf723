package controller

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel/metric"

	"tb3/pkg/metrics"
)

// WithMetrics returns a middleware that counts requests and records their
// latency, labelled by the matched route pattern. It must wrap the
// http.ServeMux that does the matching.
func WithMetrics(meter metric.Meter) (func(http.Handler) http.Handler, error) {
	instruments, err := metrics.NewHTTP(meter)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			instruments.Record(r.Context(), r.Pattern, rec.status, time.Since(start))
		})
	}, nil
}
