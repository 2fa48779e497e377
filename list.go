package lrucache

// Recency list operations. The list is intrusive: it exists only as the
// prev/next fields of live slots plus the head/tail boundaries, all arena
// indexes. Every operation here is O(1).

// pushFront links idx as the new head. idx must be freshly allocated or
// already unlinked.
func (a *arena[K, V, P]) pushFront(idx int) {
	s := &a.slots[idx]
	s.prev = noIdx
	s.next = a.head

	if a.head != noIdx {
		a.slots[a.head].prev = idx
	}
	a.head = idx

	if a.tail == noIdx {
		a.tail = idx
	}
}

// unlink removes idx from wherever it sits in the list, reconnecting its
// neighbors and fixing up head/tail when idx is a boundary.
func (a *arena[K, V, P]) unlink(idx int) {
	s := &a.slots[idx]

	if s.prev != noIdx {
		a.slots[s.prev].next = s.next
	} else {
		a.head = s.next
	}

	if s.next != noIdx {
		a.slots[s.next].prev = s.prev
	} else {
		a.tail = s.prev
	}

	s.prev = noIdx
	s.next = noIdx
}

// popBack unlinks and returns the tail, the eviction candidate. Reports
// false when the list is empty.
func (a *arena[K, V, P]) popBack() (int, bool) {
	idx := a.tail
	if idx == noIdx {
		return noIdx, false
	}
	a.unlink(idx)

	return idx, true
}

// moveToFront promotes idx to head.
func (a *arena[K, V, P]) moveToFront(idx int) {
	if a.head == idx {
		return
	}
	a.unlink(idx)
	a.pushFront(idx)
}
