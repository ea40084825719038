package rangesum

import (
	"github.com/ihorborys/rangecache/pkg/cache"
)

// Service answers range-sum queries against one Array through one LRU cache.
// Reads are cache-aside: a hit returns the memoized sum without touching the
// array, a miss scans and populates. Writes go to the array first and then
// drop every cached range covering the written index, so the cache never
// holds a sum over stale data.
//
// The service is single-threaded by design; callers that share one instance
// across goroutines must add their own mutual exclusion around the
// array-and-cache pair.
type Service struct {
	arr   *Array
	cache *cache.LRU[Key, int64]
}

// NewService builds a cached query service over arr with the given cache
// capacity. Returns ErrNilArray for a nil array and cache.ErrInvalidCapacity
// for a non-positive capacity.
func NewService(arr *Array, capacity int) (*Service, error) {
	if arr == nil {
		return nil, ErrNilArray
	}
	c, err := cache.New[Key, int64](capacity)
	if err != nil {
		return nil, err
	}
	return &Service{arr: arr, cache: c}, nil
}

// Sum returns the sum of the elements in [left, right]. After a successful
// call the result stays cached under (left, right) until a covering Update
// or capacity eviction removes it.
func (s *Service) Sum(left, right int) (int64, error) {
	if err := s.arr.checkRange(left, right); err != nil {
		return 0, err
	}

	key := Key{Left: left, Right: right}
	if sum, ok := s.cache.Get(key); ok {
		return sum, nil
	}

	sum, err := s.arr.Sum(left, right)
	if err != nil {
		return 0, err
	}
	s.cache.Put(key, sum)
	return sum, nil
}

// Update writes value at index and invalidates every cached range whose
// interval contains index. The scan walks a snapshot of the cached keys, so
// removals never race the iteration order.
func (s *Service) Update(index int, value int64) error {
	if err := s.arr.Set(index, value); err != nil {
		return err
	}

	for _, key := range s.cache.Keys() {
		if key.Contains(index) {
			s.cache.Remove(key)
		}
	}
	return nil
}

// Apply dispatches a single workload operation.
func (s *Service) Apply(op Op) error {
	switch op.Kind {
	case OpRange:
		_, err := s.Sum(op.Left, op.Right)
		return err
	case OpUpdate:
		return s.Update(op.Index, op.Value)
	default:
		return ErrUnknownOp
	}
}

// Len returns the number of elements in the underlying array.
func (s *Service) Len() int {
	return s.arr.Len()
}

// CacheLen returns the current number of memoized ranges.
func (s *Service) CacheLen() int {
	return s.cache.Len()
}

// CacheStats returns cumulative cache hit and miss counts.
func (s *Service) CacheStats() (hits, misses int64) {
	return s.cache.Stats()
}
