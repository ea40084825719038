package workload

import "errors"

var (
	// ErrInvalidArraySize is returned when the array size is below 2; the
	// hot pool needs at least one index on each side of the midpoint.
	ErrInvalidArraySize = errors.New("array size must be at least 2")

	// ErrInvalidNumOps is returned when the operation count is not positive.
	ErrInvalidNumOps = errors.New("operation count must be positive")

	// ErrInvalidHotPoolSize is returned when the hot pool size is not positive.
	ErrInvalidHotPoolSize = errors.New("hot pool size must be positive")

	// ErrInvalidProbability is returned when a probability falls outside [0, 1].
	ErrInvalidProbability = errors.New("probability must be within [0, 1]")

	// ErrNilRand is returned when no random source is provided.
	ErrNilRand = errors.New("random source is required")
)
