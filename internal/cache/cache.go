// Package cache provides the TTL source cache backing the data loader and
// odds reconciler. One instance exists per upstream concern, each with its
// own TTL; a coarse per-instance mutex is sufficient for the small key
// space (teams x seasons plus a single odds snapshot).
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Cache is a TTL cache keyed by composite string keys. Stale entries are
// discarded lazily on read; the cache is unbounded because only a handful
// of keys ever exist.
type Cache[V any] struct {
	mu      sync.Mutex
	name    string
	ttl     time.Duration
	entries map[string]entry[V]
	now     func() time.Time
}

// New constructs a named cache with the given TTL.
func New[V any](name string, ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		name:    name,
		ttl:     ttl,
		entries: make(map[string]entry[V]),
		now:     time.Now,
	}
}

// Name returns the cache's concern name (used in stats and metrics).
func (c *Cache[V]) Name() string {
	return c.name
}

// Get returns the cached value for key if present and fresh. Both an absent
// key and a stale entry report a miss; callers treat either as "fetch
// required". Stale entries stay in place until the next Set overwrites them.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.storedAt) >= c.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores a value under key, replacing any previous entry.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, storedAt: c.now()}
}

// Clear drops every entry.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[V])
}

// Cleanup removes entries past their TTL and returns how many were dropped.
func (c *Cache[V]) Cleanup() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	now := c.now()
	for key, e := range c.entries {
		if now.Sub(e.storedAt) >= c.ttl {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Stats describes the cache contents for introspection endpoints.
type Stats struct {
	Name    string    `json:"name"`
	Entries int       `json:"entries"`
	TTL     string    `json:"ttl"`
	Oldest  time.Time `json:"oldest,omitempty"`
	Newest  time.Time `json:"newest,omitempty"`
}

// Stats returns entry counts and the oldest/newest entry timestamps.
func (c *Cache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{Name: c.name, Entries: len(c.entries), TTL: c.ttl.String()}
	for _, e := range c.entries {
		if s.Oldest.IsZero() || e.storedAt.Before(s.Oldest) {
			s.Oldest = e.storedAt
		}
		if e.storedAt.After(s.Newest) {
			s.Newest = e.storedAt
		}
	}
	return s
}
