package promptkit

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// preloadConcurrency bounds parallel store reads during Preload.
const preloadConcurrency = 8

// Preload warms the parse catalog with every template in the store, loading
// and parsing in parallel. Call it at startup so first renders skip store
// I/O and parsing.
//
// Returns the first store error encountered; the catalog keeps whatever was
// loaded before the failure.
func (r *Renderer) Preload(ctx context.Context) error {
	if r.store == nil {
		return ErrNoStore
	}

	infos, err := r.store.List(ctx)
	if err != nil {
		r.metrics.RecordStoreOp(ctx, "list", err)
		return &TemplateError{Op: "list", Err: err}
	}
	r.metrics.RecordStoreOp(ctx, "list", nil)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(preloadConcurrency)
	for _, info := range infos {
		info := info
		g.Go(func() error {
			_, err := r.loadEntry(ctx, info.Name, info.Version)
			return err
		})
	}
	return g.Wait()
}
