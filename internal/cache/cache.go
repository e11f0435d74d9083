// Package cache holds fetched collections and objects so repeat reads skip
// the network. Entries are keyed by resource plus every parameter that shaped
// the request, and mutations drop all entries for the mutated resource.
package cache

import (
	"encoding/json"
	"net/url"
	"strings"
	"sync"
)

// Cache is a process-wide response cache shared by every service. Its only
// mutation discipline is invalidation by resource key.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]json.RawMessage
}

// New creates an empty cache
func New() *Cache {
	return &Cache{
		entries: make(map[string]json.RawMessage),
	}
}

// Key builds a cache key from a resource name, an optional object id, and
// query parameters. The parameter encoding is canonical (sorted), so two
// requests with the same parameters in different order share one entry while
// any differing parameter yields a distinct one.
func Key(resource, id string, params url.Values) string {
	key := resource
	if id != "" {
		key += "/" + id
	}
	if len(params) > 0 {
		key += "?" + params.Encode()
	}
	return key
}

// Get returns the cached body for key
func (c *Cache) Get(key string) (json.RawMessage, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	val, ok := c.entries[key]
	return val, ok
}

// Set stores a response body under key
func (c *Cache) Set(key string, val json.RawMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = val
}

// Invalidate removes every entry belonging to resource: the bare key, any
// object key under it, and any parameterized collection key. It returns the
// number of entries removed; invalidating an absent resource is a no-op.
func (c *Cache) Invalidate(resource string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		if key == resource ||
			strings.HasPrefix(key, resource+"/") ||
			strings.HasPrefix(key, resource+"?") {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Clear removes all entries
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]json.RawMessage)
}

// Len returns the number of cached entries
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
