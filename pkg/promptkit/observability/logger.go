// Package observability provides production-grade observability features
// for promptkit: structured logging, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds render context to a logger.
// Returns a new logger with render_id and template fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "render-123", "greeting")
//	enriched.Info("doing work") // includes render_id, template
func EnrichLogger(logger *slog.Logger, renderID, template string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("render_id", renderID),
		slog.String("template", template),
	)
}

// LogRenderStart logs the start of a named render.
func LogRenderStart(logger *slog.Logger, renderID, template string) {
	if logger == nil {
		return
	}
	logger.Info("render starting",
		slog.String("render_id", renderID),
		slog.String("template", template),
	)
}

// LogRenderComplete logs successful render completion.
func LogRenderComplete(logger *slog.Logger, renderID, template string, durationMs float64, outputBytes int) {
	if logger == nil {
		return
	}
	logger.Info("render completed",
		slog.String("render_id", renderID),
		slog.String("template", template),
		slog.Float64("duration_ms", durationMs),
		slog.Int("output_bytes", outputBytes),
	)
}

// LogRenderError logs render failure.
func LogRenderError(logger *slog.Logger, renderID, template string, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("render failed",
		slog.String("render_id", renderID),
		slog.String("template", template),
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogCacheHit logs a render served from cache.
func LogCacheHit(logger *slog.Logger, template string) {
	if logger == nil {
		return
	}
	logger.Debug("cache hit",
		slog.String("template", template),
	)
}

// LogCacheMiss logs a render that had to be computed.
func LogCacheMiss(logger *slog.Logger, template string) {
	if logger == nil {
		return
	}
	logger.Debug("cache miss",
		slog.String("template", template),
	)
}

// LogFragmentLoad logs a fragment fetched during composition.
func LogFragmentLoad(logger *slog.Logger, fragment string, sizeBytes int) {
	if logger == nil {
		return
	}
	logger.Debug("fragment loaded",
		slog.String("fragment", fragment),
		slog.Int("size_bytes", sizeBytes),
	)
}

// LogFragmentSkipped logs a missing fragment dropped from composition (non-fatal).
func LogFragmentSkipped(logger *slog.Logger, fragment string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("fragment skipped",
		slog.String("fragment", fragment),
		slog.String("error", err.Error()),
	)
}

// LogStoreError logs a store operation failure (non-fatal).
func LogStoreError(logger *slog.Logger, op, template string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("store operation failed",
		slog.String("operation", op),
		slog.String("template", template),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
