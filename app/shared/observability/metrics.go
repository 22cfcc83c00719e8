package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OperationMetrics records service operation outcomes. Modules share one
// implementation, labeled by module and operation.
type OperationMetrics interface {
	RecordOperationAttempt(ctx context.Context, module, operation string)
	RecordOperationSuccess(ctx context.Context, module, operation string)
	RecordOperationFailure(ctx context.Context, module, operation string)
	RecordOperationDuration(ctx context.Context, module, operation string, duration time.Duration)
}

type prometheusOperationMetrics struct {
	attempts  *prometheus.CounterVec
	successes *prometheus.CounterVec
	failures  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewOperationMetrics registers and returns prometheus-backed operation
// metrics.
func NewOperationMetrics(registry *prometheus.Registry) OperationMetrics {
	labels := []string{"module", "operation"}
	m := &prometheusOperationMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "podium_operation_attempts_total",
			Help: "Number of service operation attempts.",
		}, labels),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "podium_operation_successes_total",
			Help: "Number of service operations that completed successfully.",
		}, labels),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "podium_operation_failures_total",
			Help: "Number of service operations that failed.",
		}, labels),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "podium_operation_duration_seconds",
			Help:    "Duration of service operations.",
			Buckets: prometheus.DefBuckets,
		}, labels),
	}
	registry.MustRegister(m.attempts, m.successes, m.failures, m.durations)
	return m
}

func (m *prometheusOperationMetrics) RecordOperationAttempt(_ context.Context, module, operation string) {
	m.attempts.WithLabelValues(module, operation).Inc()
}

func (m *prometheusOperationMetrics) RecordOperationSuccess(_ context.Context, module, operation string) {
	m.successes.WithLabelValues(module, operation).Inc()
}

func (m *prometheusOperationMetrics) RecordOperationFailure(_ context.Context, module, operation string) {
	m.failures.WithLabelValues(module, operation).Inc()
}

func (m *prometheusOperationMetrics) RecordOperationDuration(_ context.Context, module, operation string, duration time.Duration) {
	m.durations.WithLabelValues(module, operation).Observe(duration.Seconds())
}

// NoOpMetrics discards every observation; used in tests.
type NoOpMetrics struct{}

var _ OperationMetrics = NoOpMetrics{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string, string)                {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string, string)                {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string, string)                {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, string, time.Duration) {}
