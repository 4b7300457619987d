// Copyright 2026 The VisualisasiBogor Authors
// SPDX-License-Identifier: MIT

package fetch

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a Cache backed by Redis, for deployments where several
// dashboard instances should share one remote-fetch window. Errors degrade
// to cache misses; Redis being down never fails a render.
type RedisCache struct {
	rdb *redis.Client
}

// NewRedisCache wraps an existing Redis client.
func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

// OpenRedis connects to addr and verifies the connection. Returns nil when
// addr is empty, which callers treat as "use the in-process cache".
func OpenRedis(ctx context.Context, addr string) *RedisCache {
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, falling back to in-process cache", "addr", addr, "err", err)
		return nil
	}
	return &RedisCache{rdb: rdb}
}

// Get implements Cache.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Debug("redis get failed", "key", key, "err", err)
		return nil, false
	}
	return val, true
}

// Set implements Cache.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		slog.Debug("redis set failed", "key", key, "err", err)
	}
}
