// Package cache memoizes rendered output keyed by template identity and variables.
package cache

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Cache stores rendered output keyed by a hash of template name, store
// version, and the scalar variables that produced it. A bumped version
// misses naturally, so stale entries are never served after a template
// changes.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]map[string]string // name -> key -> rendered
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]map[string]string),
	}
}

// Get returns a cached render and true, or empty string and false.
// Contexts holding non-scalar values are uncacheable and always miss.
func (c *Cache) Get(name string, version int, vars map[string]any) (string, bool) {
	key, ok := cacheKey(name, version, vars)
	if !ok {
		return "", false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	rendered, ok := c.entries[name][key]
	return rendered, ok
}

// Set stores a rendered output. Uncacheable contexts are dropped silently.
func (c *Cache) Set(name string, version int, vars map[string]any, rendered string) {
	key, ok := cacheKey(name, version, vars)
	if !ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entries[name] == nil {
		c.entries[name] = make(map[string]string)
	}
	c.entries[name][key] = rendered
}

// Invalidate drops all cached renders for a template name.
func (c *Cache) Invalidate(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, name)
}

// InvalidateAll clears the cache.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]map[string]string)
}

// Len returns the total number of cached renders.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0
	for _, byKey := range c.entries {
		count += len(byKey)
	}
	return count
}

// cacheKey produces a SHA256 hex string from name + version + sorted
// variable pairs. Values are type-tagged so int 0 and string "0" key
// differently; they render differently under conditionals. Non-scalar
// values (maps, slices, nil) make the context uncacheable.
func cacheKey(name string, version int, vars map[string]any) (string, bool) {
	keys := make([]string, 0, len(vars))
	for k, v := range vars {
		if !scalar(v) {
			return "", false
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('\x00')
	b.WriteString(strconv.Itoa(version))
	b.WriteByte('\x00')
	for _, k := range keys {
		v := vars[k]
		b.WriteString(k)
		b.WriteByte('=')
		fmt.Fprintf(&b, "%T:%v", v, v)
		b.WriteByte('\x00')
	}

	h := sha256.Sum256([]byte(b.String()))
	return fmt.Sprintf("%x", h), true
}

// scalar reports whether a value can participate in a cache key.
func scalar(v any) bool {
	switch v.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}
