package rangesum

import (
	"fmt"
	"math/rand"
)

// Array is a mutable sequence of int64 values addressed by zero-based index.
// All accessors are bounds-checked; violations surface as errors rather than
// panics or clamping.
type Array struct {
	elems []int64
}

// NewArray builds an Array that owns a copy of elems.
func NewArray(elems []int64) *Array {
	owned := make([]int64, len(elems))
	copy(owned, elems)
	return &Array{elems: owned}
}

// RandomArray builds an Array of n values drawn uniformly from [1, 100]
// using the provided random source.
func RandomArray(rng *rand.Rand, n int) *Array {
	elems := make([]int64, n)
	for i := range elems {
		elems[i] = int64(rng.Intn(100) + 1)
	}
	return &Array{elems: elems}
}

// Clone returns an independent copy, so cached and uncached runs can start
// from identical contents.
func (a *Array) Clone() *Array {
	return NewArray(a.elems)
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.elems)
}

// At returns the element at index i.
func (a *Array) At(i int) (int64, error) {
	if err := a.checkIndex(i); err != nil {
		return 0, err
	}
	return a.elems[i], nil
}

// Set writes v at index i.
func (a *Array) Set(i int, v int64) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	a.elems[i] = v
	return nil
}

// Sum computes the sum of elems[left..right] inclusive with a linear scan.
// This is the uncached baseline query.
func (a *Array) Sum(left, right int) (int64, error) {
	if err := a.checkRange(left, right); err != nil {
		return 0, err
	}
	var sum int64
	for _, v := range a.elems[left : right+1] {
		sum += v
	}
	return sum, nil
}

func (a *Array) checkIndex(i int) error {
	if i < 0 || i >= len(a.elems) {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(a.elems))
	}
	return nil
}

func (a *Array) checkRange(left, right int) error {
	if left > right {
		return fmt.Errorf("%w: left %d > right %d", ErrInvalidRange, left, right)
	}
	if left < 0 || right >= len(a.elems) {
		return fmt.Errorf("%w: range [%d,%d], length %d", ErrIndexOutOfRange, left, right, len(a.elems))
	}
	return nil
}
