package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records promptkit metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordRender records a named render with its duration and cache status.
	RecordRender(ctx context.Context, template string, duration time.Duration, cacheHit bool)

	// RecordParse records a template parse and the size of the resulting tree.
	RecordParse(ctx context.Context, template string, nodes int)

	// RecordStoreOp records a store operation and its error status.
	RecordStoreOp(ctx context.Context, op string, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	renders       metric.Int64Counter
	renderLatency metric.Float64Histogram
	cacheHits     metric.Int64Counter
	parseNodes    metric.Int64Histogram
	storeOps      metric.Int64Counter
	storeErrors   metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("promptkit")

	renders, err := meter.Int64Counter("promptkit.render.count",
		metric.WithDescription("Number of template renders"),
	)
	if err != nil {
		return nil, err
	}

	renderLatency, err := meter.Float64Histogram("promptkit.render.latency_ms",
		metric.WithDescription("Render latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	cacheHits, err := meter.Int64Counter("promptkit.render.cache_hits",
		metric.WithDescription("Number of renders served from cache"),
	)
	if err != nil {
		return nil, err
	}

	parseNodes, err := meter.Int64Histogram("promptkit.parse.nodes",
		metric.WithDescription("Nodes per parsed template"),
	)
	if err != nil {
		return nil, err
	}

	storeOps, err := meter.Int64Counter("promptkit.store.ops",
		metric.WithDescription("Number of template store operations"),
	)
	if err != nil {
		return nil, err
	}

	storeErrors, err := meter.Int64Counter("promptkit.store.errors",
		metric.WithDescription("Number of template store errors"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		renders:       renders,
		renderLatency: renderLatency,
		cacheHits:     cacheHits,
		parseNodes:    parseNodes,
		storeOps:      storeOps,
		storeErrors:   storeErrors,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordRender records a named render.
func (m *otelMetrics) RecordRender(ctx context.Context, template string, duration time.Duration, cacheHit bool) {
	attrs := []attribute.KeyValue{
		attribute.String("template", template),
		attribute.Bool("cache_hit", cacheHit),
	}

	m.renders.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.renderLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if cacheHit {
		m.cacheHits.Add(ctx, 1, metric.WithAttributes(
			attribute.String("template", template),
		))
	}
}

// RecordParse records a template parse.
func (m *otelMetrics) RecordParse(ctx context.Context, template string, nodes int) {
	attrs := []attribute.KeyValue{
		attribute.String("template", template),
	}
	m.parseNodes.Record(ctx, int64(nodes), metric.WithAttributes(attrs...))
}

// RecordStoreOp records a store operation.
func (m *otelMetrics) RecordStoreOp(ctx context.Context, op string, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("operation", op),
	}

	m.storeOps.Add(ctx, 1, metric.WithAttributes(attrs...))

	if err != nil {
		m.storeErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}
