package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pocketwatch-io/pocketwatch/internal/cache"
)

func TestTTLCache_GetSet(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	c := cache.New(5*time.Minute, cache.WithClock[string](func() time.Time { return now }))

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("a", "first")

	got, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "first", got)

	c.Set("a", "second")

	got, ok = c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "second", got)
}

func TestTTLCache_Expiry(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	c := cache.New(5*time.Minute, cache.WithClock[int](func() time.Time { return now }))

	c.Set("a", 1)
	c.SetTTL("b", 2, time.Minute)

	now = now.Add(time.Minute)

	_, ok := c.Get("a")
	assert.True(t, ok)

	// Exactly at expiry reads as absent.
	_, ok = c.Get("b")
	assert.False(t, ok)

	now = now.Add(5 * time.Minute)

	_, ok = c.Get("a")
	assert.False(t, ok)
}

func TestTTLCache_CleanExpired(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	c := cache.New(5*time.Minute, cache.WithClock[int](func() time.Time { return now }))

	c.Set("a", 1)
	c.SetTTL("b", 2, time.Minute)
	c.SetTTL("c", 3, time.Hour)

	now = now.Add(10 * time.Minute)

	assert.Equal(t, 3, c.Size())
	assert.Equal(t, 2, c.CleanExpired())
	assert.Equal(t, 1, c.Size())

	_, ok := c.Get("c")
	assert.True(t, ok)
}

func TestTTLCache_Delete(t *testing.T) {
	c := cache.New[int](5 * time.Minute)

	c.Set("a", 1)
	c.Delete("a")

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Zero(t, c.Size())
}

func TestManager_SweepsRegisteredCaches(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	c := cache.New(time.Millisecond, cache.WithClock[int](func() time.Time { return now }))

	c.Set("a", 1)

	now = now.Add(time.Second)

	m := cache.NewManager()
	m.Register(c)
	m.StartCleanup(5 * time.Millisecond)

	assert.Eventually(t, func() bool {
		return c.Size() == 0
	}, time.Second, 5*time.Millisecond)

	m.Stop()
}
