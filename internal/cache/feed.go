// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// feed.go provides the Valkey-backed feed cache (L2). Encoded public
// responses are stored here so every instance shares them and requests
// skip the database until the entry expires or is invalidated.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// feedKeyPrefix is the Valkey key prefix for cached feeds.
	feedKeyPrefix = "feed:"

	// DefaultFeedTTL is how long a feed stays cached when the caller does
	// not ask for less.
	DefaultFeedTTL = time.Minute
)

// GalleryKey returns the cache key for the public gallery feed, optionally
// narrowed to one display location.
func GalleryKey(location string) string {
	if location == "" {
		return "gallery"
	}
	return "gallery:" + location
}

// PageKey returns the cache key for a public page.
func PageKey(slug string) string {
	return "page:" + slug
}

// FeedCache stores encoded feeds in Valkey.
type FeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFeedCache creates a feed cache backed by the given Valkey client.
func NewFeedCache(client *redis.Client, ttl time.Duration) *FeedCache {
	if ttl <= 0 {
		ttl = DefaultFeedTTL
	}
	return &FeedCache{client: client, ttl: ttl}
}

// Get returns the cached bytes for key and how long they have left to live.
// Errors are logged and reported as a miss.
func (fc *FeedCache) Get(ctx context.Context, key string) ([]byte, time.Duration, bool) {
	var (
		get  *redis.StringCmd
		pttl *redis.DurationCmd
	)
	_, err := fc.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		get = p.Get(ctx, feedKeyPrefix+key)
		pttl = p.PTTL(ctx, feedKeyPrefix+key)
		return nil
	})
	if get != nil && errors.Is(get.Err(), redis.Nil) {
		return nil, 0, false
	}
	if err != nil {
		slog.Warn("feed cache get error", "key", key, "error", err)
		return nil, 0, false
	}

	data, err := get.Bytes()
	if err != nil {
		slog.Warn("feed cache get error", "key", key, "error", err)
		return nil, 0, false
	}
	remaining := pttl.Val()
	if remaining <= 0 || remaining > fc.ttl {
		remaining = fc.ttl
	}
	slog.Debug("feed cache hit", "key", key)
	return data, remaining, true
}

// Set stores data under key. A ttl of zero or more than the default uses
// the default.
func (fc *FeedCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if ttl <= 0 || ttl > fc.ttl {
		ttl = fc.ttl
	}
	if err := fc.client.Set(ctx, feedKeyPrefix+key, data, ttl).Err(); err != nil {
		slog.Warn("feed cache set error", "key", key, "error", err)
	}
}

// Invalidate removes the given keys.
func (fc *FeedCache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = feedKeyPrefix + k
	}
	if err := fc.client.Del(ctx, full...).Err(); err != nil {
		slog.Warn("feed cache invalidate error", "keys", keys, "error", err)
		return
	}
	slog.Debug("feed cache invalidated", "keys", keys)
}

// InvalidatePrefix removes every key starting with prefix by scanning.
func (fc *FeedCache) InvalidatePrefix(ctx context.Context, prefix string) {
	var cursor uint64
	var deleted int
	for {
		keys, next, err := fc.client.Scan(ctx, cursor, feedKeyPrefix+prefix+"*", 100).Result()
		if err != nil {
			slog.Warn("feed cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := fc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("feed cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("feed cache cleared", "prefix", prefix, "deleted", deleted)
	}
}
