package server

import (
	"context"
	"sync"
	"time"

	"github.com/mj1618/window-cycler/internal/cycler"
	"github.com/mj1618/window-cycler/internal/model"
)

// cacheEntry holds a cached status with its timestamp.
type cacheEntry struct {
	status    cycler.Status
	timestamp time.Time
}

// StatusCache provides a TTL-based cache for target status readings.
type StatusCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewStatusCache creates a new cache. A ttl of 0 disables caching.
func NewStatusCache(ttl time.Duration) *StatusCache {
	return &StatusCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Status returns the cached status for target if within TTL, otherwise
// calls read and caches the result.
func (c *StatusCache) Status(ctx context.Context, target model.Target, read func(context.Context, model.Target) cycler.Status) cycler.Status {
	if c.ttl == 0 {
		return read(ctx, target)
	}

	c.mu.Lock()
	if entry, ok := c.entries[target.BundleID]; ok && c.now().Sub(entry.timestamp) < c.ttl {
		st := entry.status
		c.mu.Unlock()
		return st
	}
	c.mu.Unlock()

	st := read(ctx, target)

	c.mu.Lock()
	c.entries[target.BundleID] = cacheEntry{status: st, timestamp: c.now()}
	c.mu.Unlock()

	return st
}

// Invalidate removes the entry for bundleID.
func (c *StatusCache) Invalidate(bundleID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, bundleID)
}

// InvalidateAll clears the entire cache.
func (c *StatusCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
