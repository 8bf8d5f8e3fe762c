// Package ratelimit counts attempts per key in fixed windows. It backs the
// login throttle that produces auth/too-many-requests.
package ratelimit

import (
	"context"
	"time"
)

// Result describes a key's state after a hit.
type Result struct {
	Allowed   bool
	Count     int
	Remaining int
	ResetIn   time.Duration
}

func newResult(count, max int, resetIn time.Duration) Result {
	remaining := max - count
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   count <= max,
		Count:     count,
		Remaining: remaining,
		ResetIn:   resetIn,
	}
}

// Limiter is satisfied by both the Redis and in-memory implementations.
type Limiter interface {
	Hit(ctx context.Context, key string) (Result, error)
	Reset(ctx context.Context, key string) error
}
