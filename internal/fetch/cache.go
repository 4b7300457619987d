// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

package fetch

import (
	"context"
	"sync"
	"time"
)

// Cache is a key→value store with per-entry TTL, injected into the Client
// so remote reads stay unit-testable without time-based flakiness. Staleness
// within the TTL window is tolerated by design.
type Cache interface {
	// Get returns the cached value for key and whether it is present and
	// fresh.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// DefaultTTL bounds how stale a cached remote response may be.
const DefaultTTL = 5 * time.Minute

// MemoryCache is an in-process Cache. The zero value is not usable; call
// NewMemoryCache.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry

	// now is swappable for tests.
	now func() time.Time
}

type memoryEntry struct {
	value   []byte
	expires time.Time
}

// NewMemoryCache returns an empty in-process cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry), now: time.Now}
}

// Get implements Cache. Expired entries are evicted on read.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set implements Cache.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{value: value, expires: c.now().Add(ttl)}
}
