package cache

import (
	"container/list"
	"sync"
	"sync/atomic"
)

type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

// LRU is a fixed-capacity cache that evicts the least recently used entry
// once the capacity is exceeded. Recency is tracked by position in an
// internal list: most recently used at the front, eviction from the back.
type LRU[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	eviction *list.List
	mu       sync.Mutex
	onEvict  func(key K, value V)

	hits   atomic.Int64
	misses atomic.Int64
}

// New creates an LRU cache with the given capacity.
// Returns ErrInvalidCapacity if capacity is not positive.
func New[K comparable, V any](capacity int) (*LRU[K, V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		eviction: list.New(),
	}, nil
}

// SetEvictCallback registers a function called whenever an entry leaves the
// cache through eviction, Remove or Clear. Useful for releasing resources
// held by cached values.
func (c *LRU[K, V]) SetEvictCallback(fn func(key K, value V)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}

// Get retrieves the value for key and marks the entry as most recently used.
// The second return value reports whether the key was present; absence is
// normal control flow, not an error.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.hits.Add(1)
		c.eviction.MoveToFront(elem)
		return elem.Value.(*lruEntry[K, V]).value, true
	}

	c.misses.Add(1)
	var zero V
	return zero, false
}

// Put inserts or overwrites the value for key and marks the entry as most
// recently used. If the insertion pushes the cache past its capacity, the
// least recently used entry is evicted before Put returns.
// Returns the previous value and whether the key already existed.
func (c *LRU[K, V]) Put(key K, value V) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		entry := elem.Value.(*lruEntry[K, V])
		oldValue := entry.value
		entry.value = value
		return oldValue, true
	}

	entry := &lruEntry[K, V]{key: key, value: value}
	c.items[key] = c.eviction.PushFront(entry)

	if c.eviction.Len() > c.capacity {
		c.evictOldest()
	}

	var zero V
	return zero, false
}

// Remove deletes the entry for key if present. The recency order of the
// remaining entries is left untouched.
// Returns the removed value and whether a deletion occurred.
func (c *LRU[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		entry := elem.Value.(*lruEntry[K, V])
		c.removeElement(elem)
		return entry.value, true
	}

	var zero V
	return zero, false
}

// Keys returns a snapshot of all cached keys in unspecified order. The
// returned slice is a copy, so the caller may keep iterating it while
// removing entries from the cache.
func (c *LRU[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, len(c.items))
	for key := range c.items {
		keys = append(keys, key)
	}
	return keys
}

// Len returns the current number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Cap returns the capacity the cache was constructed with.
func (c *LRU[K, V]) Cap() int {
	return c.capacity
}

// Stats returns the cumulative hit and miss counts observed by Get.
func (c *LRU[K, V]) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Clear removes all entries from the cache.
// If an evict callback is set, it is called for each entry.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.onEvict != nil {
		for _, elem := range c.items {
			entry := elem.Value.(*lruEntry[K, V])
			c.onEvict(entry.key, entry.value)
		}
	}

	c.items = make(map[K]*list.Element, c.capacity)
	c.eviction.Init()
}

// Must be called with lock held.
func (c *LRU[K, V]) evictOldest() {
	if elem := c.eviction.Back(); elem != nil {
		c.removeElement(elem)
	}
}

// Must be called with lock held.
func (c *LRU[K, V]) removeElement(elem *list.Element) {
	c.eviction.Remove(elem)
	entry := elem.Value.(*lruEntry[K, V])
	delete(c.items, entry.key)

	if c.onEvict != nil {
		c.onEvict(entry.key, entry.value)
	}
}
