// Package metrics holds the OpenTelemetry instruments shared by the tb3
// servers. Instruments are exported through the Prometheus exporter wired in
// the API server.
package metrics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Instrument names as they appear before the exporter rewrites dots.
const (
	RequestsName = "http.server.requests"
	DurationName = "http.server.duration"
)

// RequestBuckets are latency boundaries in seconds. Ledger reads answer well
// under a millisecond while audits wait on postgres.
var RequestBuckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5} //nolint: gochecknoglobals

// HTTP counts requests and records their latency per route and status.
type HTTP struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

// NewHTTP creates the request instruments on meter.
func NewHTTP(meter metric.Meter) (*HTTP, error) {
	requests, err := meter.Int64Counter(RequestsName,
		metric.WithDescription("Number of handled HTTP requests."))
	if err != nil {
		return nil, fmt.Errorf("could not create request counter: %w", err)
	}
	duration, err := meter.Float64Histogram(DurationName,
		metric.WithDescription("Latency of handled HTTP requests."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(RequestBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &HTTP{requests: requests, duration: duration}, nil
}

// Record accounts one request. An empty route is recorded as "unmatched" so
// that scanners probing random paths share a single series.
func (h *HTTP) Record(ctx context.Context, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	attrs := metric.WithAttributes(
		attribute.String("route", route),
		attribute.String("status", strconv.Itoa(status)),
	)
	h.requests.Add(ctx, 1, attrs)
	h.duration.Record(ctx, elapsed.Seconds(), attrs)
}
