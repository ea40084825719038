package rangesum

import "errors"

var (
	// ErrIndexOutOfRange is returned when an index falls outside [0, len).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidRange is returned when a range has left > right.
	ErrInvalidRange = errors.New("invalid range")

	// ErrNilArray is returned when a service is constructed without an array.
	ErrNilArray = errors.New("array is required")

	// ErrUnknownOp is returned when Apply receives an operation of an
	// unrecognized kind.
	ErrUnknownOp = errors.New("unknown operation kind")
)
