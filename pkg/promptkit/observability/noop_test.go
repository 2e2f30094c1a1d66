package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoopMetrics_ImplementsInterface(t *testing.T) {
	var _ MetricsRecorder = NoopMetrics{}
}

func TestNoopMetrics_RecordRender(t *testing.T) {
	m := NoopMetrics{}

	t.Run("does not panic with valid args", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordRender(context.Background(), "greeting", 100*time.Millisecond, false)
		})
	})

	t.Run("does not panic with cache hit", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordRender(context.Background(), "greeting", time.Millisecond, true)
		})
	})

	t.Run("does not panic with nil context", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordRender(nil, "greeting", 0, false)
		})
	})

	t.Run("does not panic with empty template name", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordRender(context.Background(), "", 0, false)
		})
	})
}

func TestNoopMetrics_RecordParse(t *testing.T) {
	m := NoopMetrics{}

	t.Run("does not panic with valid args", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordParse(context.Background(), "greeting", 12)
		})
	})

	t.Run("does not panic with zero nodes", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordParse(context.Background(), "greeting", 0)
		})
	})

	t.Run("does not panic with nil context", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordParse(nil, "greeting", 1)
		})
	})
}

func TestNoopMetrics_RecordStoreOp(t *testing.T) {
	m := NoopMetrics{}

	t.Run("does not panic with nil error", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordStoreOp(context.Background(), "get", nil)
		})
	})

	t.Run("does not panic with error", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordStoreOp(context.Background(), "stat", errors.New("test"))
		})
	})

	t.Run("does not panic with empty op", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordStoreOp(context.Background(), "", nil)
		})
	})
}

func TestNoopSpanManager_ImplementsInterface(t *testing.T) {
	var _ SpanManager = NoopSpanManager{}
}

func TestNoopSpanManager_StartRenderSpan(t *testing.T) {
	sm := NoopSpanManager{}

	t.Run("returns same context", func(t *testing.T) {
		ctx := context.Background()
		newCtx, span := sm.StartRenderSpan(ctx, "greeting", "render-1")

		assert.Equal(t, ctx, newCtx, "Context should be unchanged")
		assert.NotNil(t, span, "Span should not be nil")
	})

	t.Run("span is valid noop span", func(t *testing.T) {
		_, span := sm.StartRenderSpan(context.Background(), "greeting", "render-1")

		// Noop spans are not recording
		assert.False(t, span.IsRecording())
	})

	t.Run("does not panic with empty args", func(t *testing.T) {
		assert.NotPanics(t, func() {
			sm.StartRenderSpan(context.Background(), "", "")
		})
	})
}

func TestNoopSpanManager_StartComposeSpan(t *testing.T) {
	sm := NoopSpanManager{}

	t.Run("returns same context", func(t *testing.T) {
		ctx := context.Background()
		newCtx, span := sm.StartComposeSpan(ctx, "1.0")

		assert.Equal(t, ctx, newCtx, "Context should be unchanged")
		assert.NotNil(t, span, "Span should not be nil")
	})

	t.Run("span is valid noop span", func(t *testing.T) {
		_, span := sm.StartComposeSpan(context.Background(), "1.0")

		assert.False(t, span.IsRecording())
	})

	t.Run("does not panic with empty version", func(t *testing.T) {
		assert.NotPanics(t, func() {
			sm.StartComposeSpan(context.Background(), "")
		})
	})
}

func TestNoopSpanManager_EndSpanWithError(t *testing.T) {
	sm := NoopSpanManager{}

	t.Run("does not panic with nil span", func(t *testing.T) {
		assert.NotPanics(t, func() {
			sm.EndSpanWithError(nil, nil)
		})
	})

	t.Run("does not panic with nil error", func(t *testing.T) {
		_, span := sm.StartRenderSpan(context.Background(), "g", "r")
		assert.NotPanics(t, func() {
			sm.EndSpanWithError(span, nil)
		})
	})

	t.Run("does not panic with error", func(t *testing.T) {
		_, span := sm.StartRenderSpan(context.Background(), "g", "r")
		assert.NotPanics(t, func() {
			sm.EndSpanWithError(span, errors.New("test error"))
		})
	})
}

func TestNoopSpanManager_AddSpanEvent(t *testing.T) {
	sm := NoopSpanManager{}

	t.Run("does not panic with valid args", func(t *testing.T) {
		ctx := context.Background()
		assert.NotPanics(t, func() {
			sm.AddSpanEvent(ctx, "test_event", attribute.String("key", "value"))
		})
	})

	t.Run("does not panic with no attributes", func(t *testing.T) {
		ctx := context.Background()
		assert.NotPanics(t, func() {
			sm.AddSpanEvent(ctx, "test_event")
		})
	})

	t.Run("does not panic with nil context", func(t *testing.T) {
		assert.NotPanics(t, func() {
			sm.AddSpanEvent(nil, "test_event")
		})
	})

	t.Run("does not panic with empty event name", func(t *testing.T) {
		assert.NotPanics(t, func() {
			sm.AddSpanEvent(context.Background(), "")
		})
	})
}

func TestNoopImplementations_NoSideEffects(t *testing.T) {
	// This test verifies that noop implementations can be used
	// in a realistic scenario without any side effects

	metrics := NoopMetrics{}
	spans := NoopSpanManager{}

	ctx := context.Background()

	// Simulate a manifest composition
	ctx, composeSpan := spans.StartComposeSpan(ctx, "1.0")

	// Simulate fragment renders
	for i, name := range []string{"identity", "safety", "modes/reviewer"} {
		ctx, renderSpan := spans.StartRenderSpan(ctx, name, "render-123")

		start := time.Now()
		// Simulate work
		time.Sleep(1 * time.Millisecond)
		duration := time.Since(start)

		metrics.RecordStoreOp(ctx, "stat", nil)
		metrics.RecordParse(ctx, name, 5)
		metrics.RecordRender(ctx, name, duration, i == 2)

		if i == 2 {
			spans.AddSpanEvent(ctx, "cache_hit", attribute.String("template", name))
		}

		spans.EndSpanWithError(renderSpan, nil)
	}

	spans.EndSpanWithError(composeSpan, nil)

	// If we get here without panicking, the test passes
}
