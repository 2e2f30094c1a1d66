package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
)

// templateExts are the file extensions served by file-backed stores,
// tried in order. The extension is stripped from the template name.
var templateExts = []string{".md", ".txt"}

// FSStore serves templates read-only from an fs.FS, typically an embed.FS
// holding built-in defaults. Files with .md or .txt extensions are exposed
// with the extension stripped; nested directories become slash-separated
// names ("agents/scout" for agents/scout.md).
type FSStore struct {
	fsys   fs.FS
	mu     sync.RWMutex
	closed bool
}

// NewFSStore creates a read-only store over fsys.
func NewFSStore(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys}
}

// Put implements Store. FSStore is read-only, so Put always fails.
func (f *FSStore) Put(_ context.Context, _, _ string) error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.closed {
		return ErrStoreClosed
	}
	return ErrReadOnly
}

// Get implements Store.
func (f *FSStore) Get(_ context.Context, name string) (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.closed {
		return "", ErrStoreClosed
	}

	for _, ext := range templateExts {
		data, err := fs.ReadFile(f.fsys, name+ext)
		if err == nil {
			return string(data), nil
		}
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			continue
		}
		return "", fmt.Errorf("read template %s: %w", name, err)
	}
	return "", ErrNotFound
}

// Stat implements Store.
func (f *FSStore) Stat(_ context.Context, name string) (Info, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.closed {
		return Info{}, ErrStoreClosed
	}

	for _, ext := range templateExts {
		fi, err := fs.Stat(f.fsys, name+ext)
		if err == nil {
			return Info{
				Name:      name,
				Version:   versionOf(fi),
				UpdatedAt: fi.ModTime(),
				Size:      fi.Size(),
			}, nil
		}
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			continue
		}
		return Info{}, fmt.Errorf("stat template %s: %w", name, err)
	}
	return Info{}, ErrNotFound
}

// List implements Store.
func (f *FSStore) List(_ context.Context) ([]Info, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.closed {
		return nil, ErrStoreClosed
	}

	seen := make(map[string]bool)
	var infos []Info
	err := fs.WalkDir(f.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := path.Ext(p)
		if !isTemplateExt(ext) {
			return nil
		}
		name := strings.TrimSuffix(p, ext)
		if seen[name] {
			return nil
		}
		seen[name] = true

		fi, err := d.Info()
		if err != nil {
			return err
		}
		infos = append(infos, Info{
			Name:      name,
			Version:   versionOf(fi),
			UpdatedAt: fi.ModTime(),
			Size:      fi.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})

	return infos, nil
}

// Delete implements Store. FSStore is read-only, so Delete always fails.
func (f *FSStore) Delete(_ context.Context, _ string) error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.closed {
		return ErrStoreClosed
	}
	return ErrReadOnly
}

// Close implements Store.
func (f *FSStore) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	return nil
}

func isTemplateExt(ext string) bool {
	for _, e := range templateExts {
		if ext == e {
			return true
		}
	}
	return false
}

// versionOf derives a version from a file's modification time so edits
// invalidate caches keyed on (name, version). Filesystems that don't
// carry modification times report version 1.
func versionOf(fi fs.FileInfo) int {
	if fi.ModTime().IsZero() {
		return 1
	}
	return int(fi.ModTime().Unix())
}
