package promptkit

import (
	"context"
	"errors"
	"sync"

	"github.com/randalmurphal/promptkit/pkg/promptkit/store"
	"github.com/randalmurphal/promptkit/pkg/promptkit/template"
)

// catalogEntry is one parsed template pinned to the store version it was
// parsed from.
type catalogEntry struct {
	version int
	tpl     *template.Template
}

// catalog memoizes parsed templates by name. Entries are validated against
// the store version on every lookup, so an overwritten template reparses on
// its next use. It uses sync.RWMutex for read-heavy workloads.
type catalog struct {
	mu      sync.RWMutex
	entries map[string]catalogEntry
}

func newCatalog() *catalog {
	return &catalog{
		entries: make(map[string]catalogEntry),
	}
}

// get returns the parsed template for name at version, loading and parsing
// it through load on a miss. Uses double-checked locking so concurrent
// misses for the same name parse once.
func (c *catalog) get(name string, version int, load func() (*template.Template, error)) (*template.Template, error) {
	c.mu.RLock()
	entry, ok := c.entries[name]
	c.mu.RUnlock()
	if ok && entry.version == version {
		return entry.tpl, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Re-check: another goroutine may have parsed while we waited.
	if entry, ok := c.entries[name]; ok && entry.version == version {
		return entry.tpl, nil
	}

	tpl, err := load()
	if err != nil {
		return nil, err
	}
	c.entries[name] = catalogEntry{version: version, tpl: tpl}
	return tpl, nil
}

// loadEntry fetches a template source from the store and parses it into the
// catalog, recording parse metrics. Used by RenderNamed misses and Preload.
func (r *Renderer) loadEntry(ctx context.Context, name string, version int) (*template.Template, error) {
	return r.catalog.get(name, version, func() (*template.Template, error) {
		src, err := r.store.Get(ctx, name)
		if err != nil {
			r.metrics.RecordStoreOp(ctx, "get", err)
			if errors.Is(err, store.ErrNotFound) {
				return nil, r.unknownTemplate(ctx, name)
			}
			return nil, &TemplateError{Name: name, Op: "get", Err: err}
		}
		r.metrics.RecordStoreOp(ctx, "get", nil)

		tpl := template.Parse(src, template.WithMissingAction(r.missing))
		r.metrics.RecordParse(ctx, name, tpl.NodeCount())
		return tpl, nil
	})
}
