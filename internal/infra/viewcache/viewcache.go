// Package viewcache holds rendered list payloads keyed by route path, so the
// handler layer can serve repeat reads without re-querying. A write to the
// underlying data invalidates the path; the next read recomputes the entry.
package viewcache

import (
	"sync"
)

type entry struct {
	payload []byte
}

type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
	}
}

// Get returns the cached payload for the path, if any.
func (c *Cache) Get(path string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[path]
	if !ok {
		return nil, false
	}
	return e.payload, true
}

// Set stores a freshly rendered payload for the path.
func (c *Cache) Set(path string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[path] = entry{payload: payload}
}

// Invalidate drops the entry for the path. Invalidating an uncached path is
// a no-op.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, path)
}
