package lrucache

// noIdx is the list terminator. Slot link fields and the list boundaries
// hold noIdx when there is no neighbor.
const noIdx = -1

// slot is one arena record: a key-value pair plus its two neighbors in
// recency order. A slot's index is stable for the lifetime of its entry.
type slot[K comparable, V any] struct {
	key   K
	value V
	prev  int
	next  int
}

// Policy selects how the arena obtains a slot index on insert. The
// interface is sealed; [Append] and [Recycle] are the only implementations.
type Policy interface {
	// take pops a previously freed index, if the policy keeps any.
	take(free *[]int) (int, bool)

	// give records a freed index for reuse, if the policy reuses them.
	give(free *[]int, idx int)
}

// Append is the allocation policy that never reuses slot indexes. Freed
// slots are abandoned and every insert appends new storage, so index space
// grows monotonically with the number of inserts. Use it when stable,
// ever-increasing indexes matter more than compact storage.
type Append struct{}

func (Append) take(*[]int) (int, bool) { return 0, false }

func (Append) give(*[]int, int) {}

// Recycle is the allocation policy that returns freed indexes to a pool and
// reuses them, most recently freed first. Arena storage stays bounded by the
// cache capacity. This is the policy to pick unless you know otherwise.
type Recycle struct{}

func (Recycle) take(free *[]int) (int, bool) {
	n := len(*free)
	if n == 0 {
		return 0, false
	}
	idx := (*free)[n-1]
	*free = (*free)[:n-1]

	return idx, true
}

func (Recycle) give(free *[]int, idx int) { *free = append(*free, idx) }

// arena is flat slot storage plus the recency list boundaries. Links are
// arena indexes, so the recency list needs no pointers and no per-entry
// heap nodes.
type arena[K comparable, V any, P Policy] struct {
	slots  []slot[K, V]
	free   []int
	head   int
	tail   int
	policy P
}

func newArena[K comparable, V any, P Policy](capacity int) arena[K, V, P] {
	return arena[K, V, P]{
		slots: make([]slot[K, V], 0, capacity),
		head:  noIdx,
		tail:  noIdx,
	}
}

// alloc obtains a slot index per the policy and writes the entry into it.
// The slot is returned unlinked; the caller pushes it onto the recency list.
func (a *arena[K, V, P]) alloc(key K, value V) int {
	if idx, ok := a.policy.take(&a.free); ok {
		s := &a.slots[idx]
		s.key = key
		s.value = value
		s.prev = noIdx
		s.next = noIdx

		return idx
	}

	a.slots = append(a.slots, slot[K, V]{key: key, value: value, prev: noIdx, next: noIdx})

	return len(a.slots) - 1
}

// dealloc zeroes the slot so the arena doesn't pin the caller's key or
// value, then hands the index to the policy. The slot must already be
// unlinked.
func (a *arena[K, V, P]) dealloc(idx int) {
	var (
		zeroK K
		zeroV V
	)

	s := &a.slots[idx]
	s.key = zeroK
	s.value = zeroV
	s.prev = noIdx
	s.next = noIdx

	a.policy.give(&a.free, idx)
}

// reset drops all slots and the free pool in one step.
func (a *arena[K, V, P]) reset() {
	a.slots = a.slots[:0]
	a.free = a.free[:0]
	a.head = noIdx
	a.tail = noIdx
}
