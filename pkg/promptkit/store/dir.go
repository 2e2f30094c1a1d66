package store

import (
	"fmt"
	"os"
)

// DirStore serves templates read-only from a directory on disk. Files are
// re-read on every Get, so edits show up without a restart.
type DirStore struct {
	*FSStore
	dir string
}

// NewDirStore creates a read-only store over dir.
func NewDirStore(dir string) (*DirStore, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open template dir: %w", err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("open template dir: %s is not a directory", dir)
	}
	return &DirStore{FSStore: NewFSStore(os.DirFS(dir)), dir: dir}, nil
}

// Dir returns the directory backing the store.
func (d *DirStore) Dir() string {
	return d.dir
}
