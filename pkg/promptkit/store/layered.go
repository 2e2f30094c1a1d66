package store

import (
	"context"
	"errors"
	"sort"
)

// Layered combines stores with first-hit-wins lookup. Reads consult layers
// in order; writes go to the first layer only, so deleting an entry there
// reveals whatever a lower layer holds under the same name.
type Layered struct {
	layers []Store
}

// NewLayered creates a layered store. Typical layering is runtime overrides
// first, then a directory of project templates, then embedded defaults.
func NewLayered(layers ...Store) *Layered {
	return &Layered{layers: layers}
}

// Put implements Store. The write goes to the first layer.
func (l *Layered) Put(ctx context.Context, name, src string) error {
	if len(l.layers) == 0 {
		return ErrReadOnly
	}
	return l.layers[0].Put(ctx, name, src)
}

// Get implements Store. Layers are consulted in order; the first hit wins.
func (l *Layered) Get(ctx context.Context, name string) (string, error) {
	for _, layer := range l.layers {
		src, err := layer.Get(ctx, name)
		if err == nil {
			return src, nil
		}
		if errors.Is(err, ErrNotFound) {
			continue
		}
		return "", err
	}
	return "", ErrNotFound
}

// Stat implements Store. Layers are consulted in order; the first hit wins.
func (l *Layered) Stat(ctx context.Context, name string) (Info, error) {
	for _, layer := range l.layers {
		info, err := layer.Stat(ctx, name)
		if err == nil {
			return info, nil
		}
		if errors.Is(err, ErrNotFound) {
			continue
		}
		return Info{}, err
	}
	return Info{}, ErrNotFound
}

// List implements Store. Names are merged across layers; when a name
// appears in several layers the earliest layer's entry is kept.
func (l *Layered) List(ctx context.Context) ([]Info, error) {
	seen := make(map[string]bool)
	var merged []Info
	for _, layer := range l.layers {
		infos, err := layer.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, info := range infos {
			if seen[info.Name] {
				continue
			}
			seen[info.Name] = true
			merged = append(merged, info)
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Name < merged[j].Name
	})

	return merged, nil
}

// Delete implements Store. The delete goes to the first layer only.
func (l *Layered) Delete(ctx context.Context, name string) error {
	if len(l.layers) == 0 {
		return nil
	}
	return l.layers[0].Delete(ctx, name)
}

// Close implements Store. All layers are closed; the first error wins.
func (l *Layered) Close() error {
	var firstErr error
	for _, layer := range l.layers {
		if err := layer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
