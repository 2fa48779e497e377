package lrucache

// Stats represents cache stats.
//
// Use [Cache.UpdateStats] for obtaining fresh stats from the cache.
type Stats struct {
	// GetCalls is the number of Get and Peek calls.
	GetCalls uint64

	// PutCalls is the number of Put calls.
	PutCalls uint64

	// Misses is the number of cache misses.
	Misses uint64

	// Hits is the number of cache hits.
	Hits uint64

	// Removes is the number of Remove calls.
	Removes uint64

	// Evictions is the number of entries evicted due to the capacity limit.
	Evictions uint64

	// EntriesCount is the current number of entries in the cache.
	EntriesCount uint64

	// Capacity is the maximum number of entries allowed in the cache.
	Capacity uint64
}

// UpdateStats adds cache stats to s.
//
// Call [Stats.Reset] before calling UpdateStats if s is re-used.
func (c *Cache[K, V, P]) UpdateStats(s *Stats) {
	s.GetCalls += c.getCalls
	s.PutCalls += c.putCalls
	s.Misses += c.misses
	s.Hits += c.getCalls - c.misses
	s.Removes += c.removes
	s.Evictions += c.evictions

	s.EntriesCount = uint64(len(c.index))
	s.Capacity = uint64(c.capacity)
}

// Reset resets s, so it may be re-used again in [Cache.UpdateStats].
func (s *Stats) Reset() {
	*s = Stats{}
}
