package promptkit

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"

	"github.com/randalmurphal/promptkit/pkg/promptkit/cache"
	"github.com/randalmurphal/promptkit/pkg/promptkit/observability"
	"github.com/randalmurphal/promptkit/pkg/promptkit/store"
	"github.com/randalmurphal/promptkit/pkg/promptkit/template"
)

// maxSuggestions caps the near-miss names attached to UnknownTemplateError.
const maxSuggestions = 3

// Renderer is the library facade: direct rendering plus named-template
// lookup, caching, composition, and observability over a configured store.
//
// A Renderer is immutable after New and safe for concurrent use.
type Renderer struct {
	store   store.Store
	cache   *cache.Cache
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
	missing template.MissingAction
	catalog *catalog
}

// New creates a Renderer. Zero-config New() works: it renders strings with
// slog.Default() logging, no store, no cache, and no-op telemetry.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		logger:  slog.Default(),
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
		catalog: newCatalog(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render expands a template string against vars. It never fails: missing
// paths, falsy conditionals, and non-sequence loop values degrade to empty
// output per the template package's semantics.
func (r *Renderer) Render(src string, vars map[string]any) string {
	return template.Parse(src, template.WithMissingAction(r.missing)).Render(vars)
}

// Render expands a template string against vars with default behavior.
// Convenience wrapper over the template package for one-off renders.
func Render(src string, vars map[string]any) string {
	return template.Render(src, vars)
}

// RenderNamed loads a template from the configured store by name and
// renders it against vars. Parsed templates are memoized per store version,
// and when a cache is configured the rendered output is memoized too.
//
// Returns UnknownTemplateError (with fuzzy name suggestions) if the name is
// absent, or TemplateError for other store failures. Rendering itself never
// fails.
func (r *Renderer) RenderNamed(ctx context.Context, name string, vars map[string]any) (string, error) {
	if r.store == nil {
		return "", ErrNoStore
	}

	renderID := uuid.NewString()
	ctx, span := r.spans.StartRenderSpan(ctx, name, renderID)
	observability.LogRenderStart(r.logger, renderID, name)
	start := time.Now()
	done := observability.TimedOperation()

	out, cacheHit, err := r.renderNamed(ctx, name, vars)
	r.spans.EndSpanWithError(span, err)
	if err != nil {
		observability.LogRenderError(r.logger, renderID, name, err, done())
		return "", err
	}

	if cacheHit {
		observability.LogCacheHit(r.logger, name)
	} else if r.cache != nil {
		observability.LogCacheMiss(r.logger, name)
	}
	r.metrics.RecordRender(ctx, name, time.Since(start), cacheHit)
	observability.LogRenderComplete(r.logger, renderID, name, done(), len(out))
	return out, nil
}

func (r *Renderer) renderNamed(ctx context.Context, name string, vars map[string]any) (out string, cacheHit bool, err error) {
	info, err := r.store.Stat(ctx, name)
	if err != nil {
		r.metrics.RecordStoreOp(ctx, "stat", err)
		if errors.Is(err, store.ErrNotFound) {
			return "", false, r.unknownTemplate(ctx, name)
		}
		return "", false, &TemplateError{Name: name, Op: "stat", Err: err}
	}
	r.metrics.RecordStoreOp(ctx, "stat", nil)

	if r.cache != nil {
		if cached, ok := r.cache.Get(name, info.Version, vars); ok {
			return cached, true, nil
		}
	}

	tpl, err := r.loadEntry(ctx, name, info.Version)
	if err != nil {
		return "", false, err
	}

	out = tpl.Render(vars)
	if r.cache != nil {
		r.cache.Set(name, info.Version, vars, out)
	}
	return out, false, nil
}

// unknownTemplate builds an UnknownTemplateError with fuzzy suggestions
// from the store's current contents. Listing failures just mean no
// suggestions; the not-found error is the one worth reporting.
func (r *Renderer) unknownTemplate(ctx context.Context, name string) error {
	unknownErr := &UnknownTemplateError{Name: name}

	infos, err := r.store.List(ctx)
	if err != nil {
		return unknownErr
	}
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}

	// fuzzy.Find returns matches best-first.
	matches := fuzzy.Find(name, names)
	for i := 0; i < len(matches) && i < maxSuggestions; i++ {
		unknownErr.Suggestions = append(unknownErr.Suggestions, matches[i].Str)
	}
	return unknownErr
}
