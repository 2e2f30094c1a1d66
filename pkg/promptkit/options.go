package promptkit

import (
	"log/slog"

	"github.com/randalmurphal/promptkit/pkg/promptkit/cache"
	"github.com/randalmurphal/promptkit/pkg/promptkit/observability"
	"github.com/randalmurphal/promptkit/pkg/promptkit/store"
	"github.com/randalmurphal/promptkit/pkg/promptkit/template"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithStore sets the template store used by RenderNamed, Compose, and
// Preload. Without a store those operations return ErrNoStore.
//
// Default: none
//
// Example:
//
//	st, err := store.NewSQLiteStore("prompts.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r := promptkit.New(promptkit.WithStore(st))
func WithStore(s store.Store) Option {
	return func(r *Renderer) {
		r.store = s
	}
}

// WithCache enables render caching for named templates. Cached output is
// keyed by template name, store version, and scalar variables, so entries
// invalidate naturally when a template is overwritten.
//
// Default: no caching
//
// Example:
//
//	r := promptkit.New(
//	    promptkit.WithStore(st),
//	    promptkit.WithCache(cache.New()),
//	)
func WithCache(c *cache.Cache) Option {
	return func(r *Renderer) {
		r.cache = c
	}
}

// WithLogger sets the structured logger for render lifecycle events.
//
// Default: slog.Default()
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
//	r := promptkit.New(promptkit.WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder for render, parse, and store
// operations.
//
// Default: observability.NoopMetrics
//
// Example:
//
//	r := promptkit.New(promptkit.WithMetrics(observability.NewMetricsRecorder()))
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(r *Renderer) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithTracing sets the span manager wrapping named renders and
// compositions.
//
// Default: observability.NoopSpanManager
//
// Example:
//
//	r := promptkit.New(promptkit.WithTracing(observability.NewSpanManager()))
func WithTracing(s observability.SpanManager) Option {
	return func(r *Renderer) {
		if s != nil {
			r.spans = s
		}
	}
}

// WithMissingAction sets how unresolved substitution markers are handled
// by every render this Renderer performs.
//
// Default: template.MissingEmpty
//
// Example:
//
//	// First-stage expansion that leaves runtime variables in place.
//	r := promptkit.New(promptkit.WithMissingAction(template.MissingKeep))
func WithMissingAction(action template.MissingAction) Option {
	return func(r *Renderer) {
		r.missing = action
	}
}
