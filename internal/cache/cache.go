// Package cache provides a process-local TTL cache with a periodic sweep.
// The clock is injectable so expiry is testable without wall-clock sleeps.
package cache

import (
	"sync"
	"time"
)

// TTLCache maps string keys to values with a per-entry expiry. Entries past
// their TTL read as absent; the Manager sweep removes them to bound memory
// independent of access pattern.
type TTLCache[T any] struct {
	mu         sync.RWMutex
	defaultTTL time.Duration
	now        func() time.Time
	entries    map[string]entry[T]
}

type entry[T any] struct {
	data      T
	expiresAt time.Time
}

// Option configures a TTLCache.
type Option[T any] func(*TTLCache[T])

// WithClock replaces the wall clock, for tests.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(c *TTLCache[T]) {
		c.now = now
	}
}

// New creates a TTLCache whose Set entries expire after defaultTTL.
func New[T any](defaultTTL time.Duration, opts ...Option[T]) *TTLCache[T] {
	c := &TTLCache[T]{
		defaultTTL: defaultTTL,
		now:        time.Now,
		entries:    make(map[string]entry[T]),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get returns the stored value when present and still fresh.
func (c *TTLCache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero T

	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}

	if !c.now().Before(e.expiresAt) {
		return zero, false
	}

	return e.data, true
}

// Set stores a value with the default TTL.
func (c *TTLCache[T]) Set(key string, data T) {
	c.SetTTL(key, data, c.defaultTTL)
}

// SetTTL stores a value with an explicit TTL, overwriting any prior entry.
func (c *TTLCache[T]) SetTTL(key string, data T, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[T]{
		data:      data,
		expiresAt: c.now().Add(ttl),
	}
}

// Delete removes a key.
func (c *TTLCache[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Size returns the current number of entries, expired ones included.
func (c *TTLCache[T]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// CleanExpired removes all expired entries and reports how many were removed.
func (c *TTLCache[T]) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0

	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}

	return removed
}
