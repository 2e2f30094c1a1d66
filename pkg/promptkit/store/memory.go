package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory template store for testing and small setups.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string]storedTemplate
	closed bool
}

// storedTemplate holds a template source with metadata for Stat and List.
type storedTemplate struct {
	src       string
	version   int
	updatedAt time.Time
}

// NewMemoryStore creates a new in-memory template store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]storedTemplate),
	}
}

// Put implements Store.
func (m *MemoryStore) Put(_ context.Context, name, src string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	version := 1
	if existing, ok := m.data[name]; ok {
		version = existing.version + 1
	}

	m.data[name] = storedTemplate{
		src:       src,
		version:   version,
		updatedAt: time.Now().UTC(),
	}

	return nil
}

// Get implements Store.
func (m *MemoryStore) Get(_ context.Context, name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", ErrStoreClosed
	}

	tmpl, ok := m.data[name]
	if !ok {
		return "", ErrNotFound
	}
	return tmpl.src, nil
}

// Stat implements Store.
func (m *MemoryStore) Stat(_ context.Context, name string) (Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return Info{}, ErrStoreClosed
	}

	tmpl, ok := m.data[name]
	if !ok {
		return Info{}, ErrNotFound
	}
	return Info{
		Name:      name,
		Version:   tmpl.version,
		UpdatedAt: tmpl.updatedAt,
		Size:      int64(len(tmpl.src)),
	}, nil
}

// List implements Store.
func (m *MemoryStore) List(_ context.Context) ([]Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	infos := make([]Info, 0, len(m.data))
	for name, tmpl := range m.data {
		infos = append(infos, Info{
			Name:      name,
			Version:   tmpl.version,
			UpdatedAt: tmpl.updatedAt,
			Size:      int64(len(tmpl.src)),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})

	return infos, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.data, name)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.data = nil
	return nil
}

// Len returns the number of stored templates.
// Useful for testing.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.data)
}
