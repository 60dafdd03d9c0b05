// Package ratelimit implements fixed-window request counting keyed by
// client address. A client gets Max requests per Window; the window starts
// at the first request and the count resets when it lapses. The limiter is
// approximate at window boundaries: a client can fit up to 2×Max−1 requests
// into a short burst straddling two windows. That matches the behavior the
// website has always had.
package ratelimit

import (
	"context"
	"time"
)

// Config holds the window parameters shared by all stores.
type Config struct {
	// Window duration. Default one hour.
	Window time.Duration
	// Max requests allowed per key per window. Default 5.
	Max int
}

// DefaultConfig matches the production contact form limits.
func DefaultConfig() Config {
	return Config{
		Window: time.Hour,
		Max:    5,
	}
}

// Result reports one check-and-record outcome.
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Store is a fixed-window counter backend. CheckAndRecord must be atomic
// per key: concurrent requests for the same key may never both be admitted
// past the limit. Once a key is over the limit its count is not advanced
// further; repeated rejected requests do not extend the window.
type Store interface {
	CheckAndRecord(ctx context.Context, key string) (Result, error)
}

// Limiter fronts a primary store with an in-memory fallback, mirroring the
// deployment reality: Redis when configured (shared across instances),
// process-local memory otherwise or when Redis errors. Failing open keeps
// the contact form available during a Redis outage.
type Limiter struct {
	primary  Store
	fallback Store
}

// New builds a limiter. primary may be nil, in which case only the
// fallback is used.
func New(primary, fallback Store) *Limiter {
	return &Limiter{primary: primary, fallback: fallback}
}

// Allow runs the check against the primary store, falling back on error.
func (l *Limiter) Allow(ctx context.Context, key string) Result {
	if l.primary != nil {
		res, err := l.primary.CheckAndRecord(ctx, key)
		if err == nil {
			return res
		}
	}
	res, _ := l.fallback.CheckAndRecord(ctx, key)
	return res
}
