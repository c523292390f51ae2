// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Local is the in-process L1 cache. Entries are short-lived so instances
// converge quickly after another instance invalidates the shared tier.
type Local struct {
	c   *gocache.Cache
	ttl time.Duration
}

// NewLocal creates an L1 cache whose entries live at most ttl.
func NewLocal(ttl time.Duration) *Local {
	return &Local{c: gocache.New(ttl, 2*ttl), ttl: ttl}
}

// Get returns the cached bytes for key.
func (l *Local) Get(key string) ([]byte, bool) {
	v, ok := l.c.Get(key)
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

// Set stores data, capped at the L1 lifetime.
func (l *Local) Set(key string, data []byte, ttl time.Duration) {
	if ttl <= 0 || ttl > l.ttl {
		ttl = l.ttl
	}
	l.c.Set(key, data, ttl)
}

// Delete removes the given keys.
func (l *Local) Delete(keys ...string) {
	for _, k := range keys {
		l.c.Delete(k)
	}
}

// DeletePrefix removes every key starting with prefix.
func (l *Local) DeletePrefix(prefix string) {
	for k := range l.c.Items() {
		if strings.HasPrefix(k, prefix) {
			l.c.Delete(k)
		}
	}
}
