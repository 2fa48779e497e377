// Package lrucache provides a generic LRU cache backed by an index arena
// instead of a pointer-based linked list.
//
// # Architecture
//
// The cache is three structures kept in lockstep:
//
//   - A slot arena: flat storage holding each entry's key, value and its two
//     neighbors in recency order, addressed by stable integer indexes
//   - A recency list realized purely as those indexes (head = most recently
//     used, tail = eviction candidate)
//   - A map[K]int from key to slot index for O(1) lookups
//
// Linking through arena indexes instead of pointers keeps the list
// bounds-checked and free of per-entry heap nodes: promoting an entry or
// evicting the tail rewires a few ints. Get, Put and Remove are all O(1).
//
// # Allocation Policies
//
// The third type parameter selects what happens to the index of an evicted
// or removed entry. [Recycle] returns it to a pool for the next insert,
// keeping arena storage bounded by the capacity. [Append] never reuses
// indexes, so index space grows monotonically. The policy set is closed and
// each Cache instantiation resolves its policy at compile time; there is no
// runtime flag.
//
// # Eviction
//
// When a Put would exceed capacity, the least recently used entry is removed
// and returned from Put. That return value is the only eviction
// notification; there are no callbacks. There is no time-based expiration.
//
// # Persistence
//
// A snapshot of the cache can be [Cache.SaveToFile] and [LoadFromFile].
// Snapshots record entries in recency order and are replayed through the
// public API on load, so the on-disk format is independent of the arena
// layout and of the allocation policy.
//
// # Thread Safety
//
// None. The cache is a single-owner structure with no internal locking; no
// method may be called concurrently with any other. Callers sharing a cache
// across goroutines must supply their own synchronization.
package lrucache
