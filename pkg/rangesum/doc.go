// Package rangesum implements range-sum queries over a mutable integer array
// with an LRU memoization layer in front of the linear scan.
//
// Service is the cached variant: reads follow the cache-aside pattern (check
// the cache, compute and populate on miss) and writes invalidate every cached
// range whose interval contains the modified index, so a stale aggregate can
// never be served. Baseline is the uncached collaborator with the same
// surface, used to compare both against identical operation sequences.
//
//	arr := rangesum.NewArray([]int64{1, 2, 3, 4, 5})
//	svc, err := rangesum.NewService(arr, 1000)
//	if err != nil {
//		// invalid capacity or nil array
//	}
//
//	sum, _ := svc.Sum(1, 3) // scans, caches (1,3) -> 9
//	sum, _ = svc.Sum(1, 3)  // served from cache
//	_ = svc.Update(2, 100)  // drops every cached range covering index 2
//
// Out-of-bounds indices and inverted ranges are programming errors and are
// reported as ErrIndexOutOfRange and ErrInvalidRange; they are never clamped.
package rangesum
