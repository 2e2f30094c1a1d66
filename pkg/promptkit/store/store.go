// Package store provides named storage for template sources.
package store

import (
	"context"
	"errors"
	"time"
)

// Store persists template sources under stable names.
// Implementations must be safe for concurrent use.
type Store interface {
	// Put stores a template source under name.
	// Creates the entry on first write and bumps Version on overwrite.
	Put(ctx context.Context, name, src string) error

	// Get retrieves a template source by name.
	// Returns ErrNotFound if the name is unknown.
	Get(ctx context.Context, name string) (string, error)

	// Stat returns metadata for a template without loading its source.
	// Returns ErrNotFound if the name is unknown.
	Stat(ctx context.Context, name string) (Info, error)

	// List returns metadata for all stored templates, ordered by name.
	// Returns an empty slice (not an error) if the store is empty.
	List(ctx context.Context) ([]Info, error)

	// Delete removes a template.
	// Returns nil if the template doesn't exist.
	Delete(ctx context.Context, name string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Info provides metadata without loading the full source.
type Info struct {
	Name      string
	Version   int
	UpdatedAt time.Time
	Size      int64
}

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates a template doesn't exist.
	ErrNotFound = errors.New("template not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("template store closed")

	// ErrReadOnly indicates a write against a read-only store.
	ErrReadOnly = errors.New("template store is read-only")
)
