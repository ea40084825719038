package cache

import "errors"

var (
	// ErrInvalidCapacity is returned when a cache is constructed with a
	// capacity that is not positive.
	ErrInvalidCapacity = errors.New("cache capacity must be positive")
)
