// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"time"
)

// Tiered reads through L1 then L2 and writes to both. The L2 tier is
// optional; without it Tiered is a plain in-process cache.
type Tiered struct {
	local  *Local
	remote *FeedCache
}

// NewTiered combines the two tiers. remote may be nil.
func NewTiered(local *Local, remote *FeedCache) *Tiered {
	return &Tiered{local: local, remote: remote}
}

// Get looks key up in L1, then L2. An L2 hit is copied into L1 for no
// longer than it has left in L2.
func (t *Tiered) Get(ctx context.Context, key string) ([]byte, bool) {
	if data, ok := t.local.Get(key); ok {
		return data, true
	}
	if t.remote == nil {
		return nil, false
	}
	data, remaining, ok := t.remote.Get(ctx, key)
	if !ok {
		return nil, false
	}
	t.local.Set(key, data, remaining)
	return data, true
}

// Set stores data in both tiers for at most ttl.
func (t *Tiered) Set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	t.local.Set(key, data, ttl)
	if t.remote != nil {
		t.remote.Set(ctx, key, data, ttl)
	}
}

// Invalidate removes keys from both tiers.
func (t *Tiered) Invalidate(ctx context.Context, keys ...string) {
	t.local.Delete(keys...)
	if t.remote != nil {
		t.remote.Invalidate(ctx, keys...)
	}
}

// InvalidatePrefix removes every key starting with prefix from both tiers.
func (t *Tiered) InvalidatePrefix(ctx context.Context, prefix string) {
	t.local.DeletePrefix(prefix)
	if t.remote != nil {
		t.remote.InvalidatePrefix(ctx, prefix)
	}
}
