// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package publish holds the scheduling rules for gallery photos: validation
// of the go-live/expiry window on submit, first/last-published stamping on
// save, and the visibility check used by the public feed. Every function
// takes the current time explicitly so callers decide where "now" comes from.
package publish

import "time"

// Clock reports the current time.
type Clock func() time.Time

// SystemClock returns the wall clock in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}
