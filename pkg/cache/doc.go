// Package cache provides a generic, fixed-capacity LRU (Least Recently Used)
// cache backed by a hash map and an intrusive recency list.
//
// When the cache reaches its capacity, the least recently used entry is
// evicted. Both Get and Put mark the touched entry as most recently used;
// Remove does not disturb the recency order of the remaining entries.
//
// # Usage
//
// Create a cache with a positive capacity:
//
//	c, err := cache.New[string, int64](1000)
//	if err != nil {
//		// capacity was not positive
//	}
//
//	c.Put("answer", 42)
//	v, ok := c.Get("answer")
//
// Keys returns a snapshot of the cached keys that stays valid while the
// caller mutates the cache, which makes it safe to drive invalidation scans:
//
//	for _, k := range c.Keys() {
//		if stale(k) {
//			c.Remove(k)
//		}
//	}
//
// # Resource Cleanup
//
// For values that need cleanup when they leave the cache, register an evict
// callback:
//
//	c.SetEvictCallback(func(key string, f *os.File) {
//		f.Close()
//	})
//
// # Thread Safety
//
// All operations are safe for concurrent use. Get, Put and Remove are O(1);
// Keys is O(n) in the current entry count.
package cache
