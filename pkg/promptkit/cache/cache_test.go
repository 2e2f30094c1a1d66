package cache_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/randalmurphal/promptkit/pkg/promptkit/cache"
	"github.com/stretchr/testify/assert"
)

// TestCache_GetSet verifies the basic hit/miss cycle.
func TestCache_GetSet(t *testing.T) {
	c := cache.New()
	vars := map[string]any{"name": "World"}

	_, ok := c.Get("greeting", 1, vars)
	assert.False(t, ok)

	c.Set("greeting", 1, vars, "Hello, World!")

	rendered, ok := c.Get("greeting", 1, vars)
	assert.True(t, ok)
	assert.Equal(t, "Hello, World!", rendered)
}

// TestCache_KeyIndependentOfMapOrder verifies that equal variable sets hit
// regardless of construction order.
func TestCache_KeyIndependentOfMapOrder(t *testing.T) {
	c := cache.New()

	first := map[string]any{"a": 1, "b": 2, "c": 3}
	c.Set("tmpl", 1, first, "output")

	second := map[string]any{"c": 3, "b": 2, "a": 1}
	rendered, ok := c.Get("tmpl", 1, second)
	assert.True(t, ok)
	assert.Equal(t, "output", rendered)
}

// TestCache_Misses verifies that any keyed dimension changing causes a miss.
func TestCache_Misses(t *testing.T) {
	c := cache.New()
	vars := map[string]any{"name": "World"}
	c.Set("greeting", 1, vars, "Hello, World!")

	tests := []struct {
		name    string
		tmpl    string
		version int
		vars    map[string]any
	}{
		{"different template", "closing", 1, map[string]any{"name": "World"}},
		{"bumped version", "greeting", 2, map[string]any{"name": "World"}},
		{"different value", "greeting", 1, map[string]any{"name": "Mars"}},
		{"extra variable", "greeting", 1, map[string]any{"name": "World", "x": 1}},
		{"missing variable", "greeting", 1, map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := c.Get(tt.tmpl, tt.version, tt.vars)
			assert.False(t, ok)
		})
	}
}

// TestCache_TypeTaggedKeys verifies that values of different types never
// share a key even when they print identically.
func TestCache_TypeTaggedKeys(t *testing.T) {
	c := cache.New()

	// int 0 and string "0" render differently under conditionals
	c.Set("tmpl", 1, map[string]any{"n": 0}, "falsy output")

	_, ok := c.Get("tmpl", 1, map[string]any{"n": "0"})
	assert.False(t, ok)

	rendered, ok := c.Get("tmpl", 1, map[string]any{"n": 0})
	assert.True(t, ok)
	assert.Equal(t, "falsy output", rendered)
}

// TestCache_Uncacheable verifies that non-scalar contexts bypass the cache.
func TestCache_Uncacheable(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]any
	}{
		{"map value", map[string]any{"user": map[string]any{"name": "x"}}},
		{"slice value", map[string]any{"items": []any{1, 2}}},
		{"nil value", map[string]any{"missing": nil}},
		{"scalar beside slice", map[string]any{"name": "x", "items": []any{1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cache.New()
			c.Set("tmpl", 1, tt.vars, "output")

			_, ok := c.Get("tmpl", 1, tt.vars)
			assert.False(t, ok)
			assert.Equal(t, 0, c.Len())
		})
	}
}

// TestCache_EmptyVars verifies that an empty context is cacheable.
func TestCache_EmptyVars(t *testing.T) {
	c := cache.New()

	c.Set("static", 1, nil, "fixed output")

	rendered, ok := c.Get("static", 1, nil)
	assert.True(t, ok)
	assert.Equal(t, "fixed output", rendered)

	// nil and empty map key identically
	rendered, ok = c.Get("static", 1, map[string]any{})
	assert.True(t, ok)
	assert.Equal(t, "fixed output", rendered)
}

// TestCache_Invalidate verifies per-name and full invalidation.
func TestCache_Invalidate(t *testing.T) {
	c := cache.New()

	c.Set("greeting", 1, map[string]any{"name": "a"}, "one")
	c.Set("greeting", 1, map[string]any{"name": "b"}, "two")
	c.Set("closing", 1, nil, "three")
	assert.Equal(t, 3, c.Len())

	c.Invalidate("greeting")
	assert.Equal(t, 1, c.Len())

	_, ok := c.Get("greeting", 1, map[string]any{"name": "a"})
	assert.False(t, ok)

	_, ok = c.Get("closing", 1, nil)
	assert.True(t, ok)

	c.InvalidateAll()
	assert.Equal(t, 0, c.Len())

	_, ok = c.Get("closing", 1, nil)
	assert.False(t, ok)
}

// TestCache_Concurrent verifies concurrent safety under mixed operations.
func TestCache_Concurrent(t *testing.T) {
	c := cache.New()

	const numGoroutines = 50
	const numOps = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()

			name := "tmpl-" + strconv.Itoa(id%5)
			for j := 0; j < numOps; j++ {
				vars := map[string]any{"n": j % 10}
				switch j % 4 {
				case 0, 1:
					c.Set(name, 1, vars, "output")
				case 2:
					_, _ = c.Get(name, 1, vars)
				case 3:
					if j%20 == 3 {
						c.Invalidate(name)
					} else {
						_ = c.Len()
					}
				}
			}
		}(i)
	}

	wg.Wait()
}
