// Package observability wires the logger, tracer, and metrics registry used
// across all modules.
package observability

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// Observability bundles the components every module receives.
type Observability struct {
	Logger   *slog.Logger
	Tracer   trace.Tracer
	Registry *prometheus.Registry
}

// New builds the production observability stack: JSON slog to stdout, the
// globally configured OTel tracer (noop unless an SDK is installed by the
// deployment), and a Prometheus registry with process collectors.
func New(serviceName, environment string) *Observability {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(
		slog.String("service", serviceName),
		slog.String("environment", environment),
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Observability{
		Logger:   logger,
		Tracer:   otel.GetTracerProvider().Tracer(serviceName),
		Registry: registry,
	}
}

// NewNoOp returns a silent stack for tests.
func NewNoOp() *Observability {
	return &Observability{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Tracer:   tracenoop.NewTracerProvider().Tracer("test"),
		Registry: prometheus.NewRegistry(),
	}
}

// MetricsHandler serves the registry for scraping.
func (o *Observability) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(o.Registry, promhttp.HandlerOpts{})
}
