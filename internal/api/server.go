// Package api configures and exposes the HTTP server, routes, metrics, docs
// and related middleware of the tb3 backend.
package api

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	root "tb3"
	"tb3/internal/api/handler/v1handler"
	"tb3/internal/config"
	"tb3/pkg/controller"
	"tb3/pkg/serrors"
	"tb3/pkg/tb3"
)

const (
	// SpecPath serves the OpenAPI document of the REST surface.
	SpecPath = "/specs/v1.yaml"
	// DocsPath serves the Swagger UI.
	DocsPath = "/v1/docs/"

	timeoutBody = `{"code":"TIMEOUT","message":"request timed out"}`
)

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// Zero durations fall back to the net/http defaults.
type Options struct {
	// SecHandlerOptions configures bearer token verification on governance writes.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// CORSOrigins lists the browser origins allowed to call the API.
	CORSOrigins []string
	// Pprof mounts the runtime profiler.
	Pprof bool

	// Registerer and Gatherer default to the prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		CORSOrigins:       cfg.HTTP.CORSOrigins,
		Pprof:             cfg.HTTP.Pprof,
	}
}

type Deps struct {
	v1handler.Deps
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - OpenTelemetry request metrics exported through Prometheus
// - Embedded OpenAPI v1 document and Swagger UI
// - the REST surface, validated against the OpenAPI document
// - pprof endpoints for profiling when enabled
// It also wraps the mux with CORS and logging middlewares and applies a request timeout.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	spec, err := fs.ReadFile(root.Specs, "specs/v1.yaml")
	if err != nil {
		return nil, fmt.Errorf("could not read openapi document: %w", err)
	}

	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(opts.Registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

	// v1 specs file
	mux.HandleFunc(SpecPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec)
	})
	// v1 api swagger playground
	mux.Handle(DocsPath, v5emb.New("tb3", SpecPath, DocsPath))

	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	apiMux := http.NewServeMux()
	if err := v1handler.New(deps.Deps, secHandler).Register(apiMux); err != nil {
		return nil, fmt.Errorf("could not register v1 handlers: %w", err)
	}
	validate, err := controller.WithRequestValidation(ctx, spec, writeValidationError)
	if err != nil {
		return nil, fmt.Errorf("could not create request validator: %w", err)
	}
	withMetrics, err := controller.WithMetrics(mp.Meter("tb3/internal/api"))
	if err != nil {
		return nil, fmt.Errorf("could not create metrics middleware: %w", err)
	}
	mux.Handle("/", validate(withMetrics(apiMux)))

	// pprof
	if opts.Pprof {
		mux.Handle(controller.PprofPrefix, controller.PprofMux())
	}

	// cors
	handler := controller.WithCORS(opts.CORSOrigins)(mux)

	// logger
	handler = controller.WithLogger(handler)

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, timeoutBody)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

// writeValidationError renders a rejected request the same way the handlers
// render their errors.
func writeValidationError(w http.ResponseWriter, message string, statusCode int) {
	body, err := sonic.ConfigStd.Marshal(tb3.ErrorBody{
		Code:    serrors.FromHTTPStatus(statusCode).Error(),
		Message: message,
	})
	if err != nil {
		statusCode = http.StatusInternalServerError
		body = []byte(`{"code":"INTERNAL","message":"internal error"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}
