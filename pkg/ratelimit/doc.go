// Package ratelimit provides a sliding-window request rate limiter: each key
// keeps the timestamps of its recent requests, timestamps older than the
// window are discarded, and a request is allowed while fewer than the limit
// remain inside the window.
//
// The limiter reads time through an injectable clock, so behavior is
// deterministic under test. Storage is pluggable via the Store interface;
// MemoryStore is the in-process implementation.
//
//	limiter, err := ratelimit.NewSlidingWindow(ratelimit.NewMemoryStore(), 1, 10*time.Second)
//	if err != nil {
//		// invalid configuration
//	}
//
//	res, err := limiter.Allow(ctx, userID)
//	if err == nil && !res.Allowed {
//		wait := res.RetryAfter()
//	}
//
// Middleware adapts a limiter to net/http with standard X-RateLimit headers.
//
// This package is independent of the range-sum cache; the two share no state
// or interfaces.
package ratelimit
