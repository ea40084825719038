package ratelimit

import "errors"

var (
	// ErrInvalidLimit is returned when the request limit is not positive.
	ErrInvalidLimit = errors.New("invalid limit")

	// ErrInvalidWindow is returned when the window duration is not positive.
	ErrInvalidWindow = errors.New("invalid window")

	// ErrKeyRequired is returned when an empty key is passed to the limiter.
	ErrKeyRequired = errors.New("key is required")

	// ErrStoreRequired is returned when a limiter is built without a store.
	ErrStoreRequired = errors.New("store is required")
)
