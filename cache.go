package lrucache

import (
	"fmt"
	"iter"
)

// Cache is a bounded key-value cache with least-recently-used eviction.
//
// The zero value is not usable; construct with [New]. The policy type
// parameter P selects the slot allocation strategy at compile time; see
// [Recycle] and [Append].
//
// A Cache is a single-owner structure: it performs no locking, and
// concurrent use from multiple goroutines requires external
// synchronization.
type Cache[K comparable, V any, P Policy] struct {
	arena    arena[K, V, P]
	index    map[K]int
	capacity int

	getCalls  uint64
	putCalls  uint64
	misses    uint64
	removes   uint64
	evictions uint64
}

// New returns a new cache holding at most capacity entries.
//
// capacity must be greater than 0.
func New[K comparable, V any, P Policy](capacity int) *Cache[K, V, P] {
	if capacity <= 0 {
		panic(fmt.Errorf("capacity must be greater than 0; got %d", capacity))
	}

	return &Cache[K, V, P]{
		arena:    newArena[K, V, P](capacity),
		index:    make(map[K]int, capacity),
		capacity: capacity,
	}
}

// Put stores (k, v) and marks k as the most recently used entry.
//
// If k is already present, its value is updated in place and no eviction
// can occur. Otherwise, if the cache is full, the least recently used entry
// is evicted first and returned. The returned pair is the only eviction
// notification the cache provides.
func (c *Cache[K, V, P]) Put(k K, v V) (evictedKey K, evictedValue V, evicted bool) {
	c.putCalls++

	if idx, ok := c.index[k]; ok {
		c.arena.slots[idx].value = v
		c.arena.moveToFront(idx)

		return
	}

	if len(c.index) == c.capacity {
		tail, ok := c.arena.popBack()
		if !ok {
			panic("lrucache: full cache has an empty recency list")
		}

		s := &c.arena.slots[tail]
		evictedKey, evictedValue, evicted = s.key, s.value, true

		delete(c.index, s.key)
		c.arena.dealloc(tail)
		c.evictions++
	}

	idx := c.arena.alloc(k, v)
	c.arena.pushFront(idx)
	c.index[k] = idx

	return
}

// Get returns the value for the given key and marks it as the most recently
// used entry.
//
// Returns the zero value and false if the key is not found.
func (c *Cache[K, V, P]) Get(k K) (V, bool) {
	c.getCalls++

	idx, ok := c.index[k]
	if !ok {
		c.misses++

		var zero V

		return zero, false
	}
	c.arena.moveToFront(idx)

	return c.arena.slots[idx].value, true
}

// Peek returns the value for the given key without affecting recency order.
//
// Returns the zero value and false if the key is not found.
func (c *Cache[K, V, P]) Peek(k K) (V, bool) {
	c.getCalls++

	idx, ok := c.index[k]
	if !ok {
		c.misses++

		var zero V

		return zero, false
	}

	return c.arena.slots[idx].value, true
}

// Has returns true if an entry for the given key exists in the cache. It
// does not affect recency order.
func (c *Cache[K, V, P]) Has(k K) bool {
	_, ok := c.Peek(k)

	return ok
}

// Remove removes the entry for the given key, returning its value.
//
// The loaded result reports whether the key was present. Under [Recycle]
// the vacated slot index is reused by a later Put.
func (c *Cache[K, V, P]) Remove(k K) (v V, loaded bool) {
	c.removes++

	idx, ok := c.index[k]
	if !ok {
		return v, false
	}

	v = c.arena.slots[idx].value

	delete(c.index, k)
	c.arena.unlink(idx)
	c.arena.dealloc(idx)

	return v, true
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V, P]) Len() int {
	return len(c.index)
}

// IsEmpty returns true if the cache holds no entries.
func (c *Cache[K, V, P]) IsEmpty() bool {
	return len(c.index) == 0
}

// Cap returns the maximum number of entries the cache can hold.
func (c *Cache[K, V, P]) Cap() int {
	return c.capacity
}

// Clear removes all entries and resets stats. Under [Recycle] the free pool
// is discarded wholesale rather than refilled entry by entry.
func (c *Cache[K, V, P]) Clear() {
	c.arena.reset()
	clear(c.index)

	c.getCalls = 0
	c.putCalls = 0
	c.misses = 0
	c.removes = 0
	c.evictions = 0
}

// All returns an iterator over all key-value pairs in recency order, most
// recently used first.
//
// The iterator is invalidated by any mutation of the cache: do not Put,
// Get or Remove while consuming it.
func (c *Cache[K, V, P]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for idx := c.arena.head; idx != noIdx; idx = c.arena.slots[idx].next {
			s := &c.arena.slots[idx]
			if !yield(s.key, s.value) {
				return
			}
		}
	}
}

// Keys returns an iterator over all keys in recency order, most recently
// used first.
//
// The iterator is invalidated by any mutation of the cache.
func (c *Cache[K, V, P]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for idx := c.arena.head; idx != noIdx; idx = c.arena.slots[idx].next {
			if !yield(c.arena.slots[idx].key) {
				return
			}
		}
	}
}

// Values returns an iterator over all values in recency order, most
// recently used first.
//
// The iterator is invalidated by any mutation of the cache.
func (c *Cache[K, V, P]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for idx := c.arena.head; idx != noIdx; idx = c.arena.slots[idx].next {
			if !yield(c.arena.slots[idx].value) {
				return
			}
		}
	}
}
