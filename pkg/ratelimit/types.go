package ratelimit

import (
	"context"
	"time"
)

// Result contains the outcome of a rate limit check.
type Result struct {
	// Allowed indicates whether the request was admitted and recorded.
	Allowed bool

	// Limit is the maximum number of requests allowed in the window.
	Limit int

	// Remaining is the number of requests left in the current window.
	Remaining int

	// ResetAt is when the oldest recorded request leaves the window, i.e.
	// the earliest moment a denied caller may try again.
	ResetAt time.Time
}

// RetryAfter returns how long to wait before the next request is allowed.
// Returns 0 if the current request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Limiter is the interface middleware and callers consume.
type Limiter interface {
	// Allow checks whether one request is admitted for key and records it
	// if so.
	Allow(ctx context.Context, key string) (*Result, error)

	// Status reports the current window state without recording anything.
	Status(ctx context.Context, key string) (*Result, error)

	// Reset forgets all recorded requests for key.
	Reset(ctx context.Context, key string) error
}

// Store persists per-key request timestamps for the sliding window.
type Store interface {
	// RecordIfAllowed prunes timestamps at or before now-window, records
	// now when fewer than limit remain, and returns whether it recorded,
	// the resulting in-window count, and the oldest surviving timestamp
	// (zero when the window is empty).
	RecordIfAllowed(ctx context.Context, key string, now time.Time, window time.Duration, limit int) (allowed bool, count int, oldest time.Time, err error)

	// CountInWindow prunes expired timestamps and returns the in-window
	// count and the oldest surviving timestamp.
	CountInWindow(ctx context.Context, key string, now time.Time, window time.Duration) (count int, oldest time.Time, err error)

	// Delete removes all state for key.
	Delete(ctx context.Context, key string) error
}
