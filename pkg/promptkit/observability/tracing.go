package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the promptkit tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("promptkit")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartRenderSpan starts a span for a named render.
	// Returns the context with span and the span itself.
	StartRenderSpan(ctx context.Context, template, renderID string) (context.Context, trace.Span)

	// StartComposeSpan starts a span for a manifest composition.
	// Fragment render spans should be children of the compose span.
	StartComposeSpan(ctx context.Context, manifestVersion string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartRenderSpan starts a span for a named render.
func (m *otelSpanManager) StartRenderSpan(ctx context.Context, template, renderID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "promptkit.render",
		trace.WithAttributes(
			attribute.String("template.name", template),
			attribute.String("render.id", renderID),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartComposeSpan starts a span for a manifest composition.
func (m *otelSpanManager) StartComposeSpan(ctx context.Context, manifestVersion string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "promptkit.compose",
		trace.WithAttributes(
			attribute.String("manifest.version", manifestVersion),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}

// Convenience functions that operate on the global tracer.
// These are useful for simple cases where you don't need the interface.

// StartRenderSpan starts a span for a named render.
// Uses the global OTel tracer.
func StartRenderSpan(ctx context.Context, template, renderID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "promptkit.render",
		trace.WithAttributes(
			attribute.String("template.name", template),
			attribute.String("render.id", renderID),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartComposeSpan starts a span for a manifest composition.
// Uses the global OTel tracer.
func StartComposeSpan(ctx context.Context, manifestVersion string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "promptkit.compose",
		trace.WithAttributes(
			attribute.String("manifest.version", manifestVersion),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span in context.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
