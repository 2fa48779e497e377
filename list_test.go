package lrucache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chain reads the list head to tail.
func chain[K comparable, V any, P Policy](a *arena[K, V, P]) []int {
	var idxs []int
	for idx := a.head; idx != noIdx; idx = a.slots[idx].next {
		idxs = append(idxs, idx)
	}

	return idxs
}

func newTestList(t *testing.T, n int) *arena[int, int, Recycle] {
	t.Helper()

	a := newArena[int, int, Recycle](n)
	for i := 0; i < n; i++ {
		idx := a.alloc(i, i)
		require.Equal(t, i, idx)
		a.pushFront(idx)
	}

	return &a
}

func TestListPushFront(t *testing.T) {
	a := newTestList(t, 3)

	// Last pushed slot is the head.
	assert.Equal(t, []int{2, 1, 0}, chain(a))
	assert.Equal(t, 2, a.head)
	assert.Equal(t, 0, a.tail)
	assert.Equal(t, noIdx, a.slots[a.head].prev)
	assert.Equal(t, noIdx, a.slots[a.tail].next)
}

func TestListUnlinkSoleElement(t *testing.T) {
	a := newTestList(t, 1)

	a.unlink(0)

	assert.Equal(t, noIdx, a.head)
	assert.Equal(t, noIdx, a.tail)
	assert.Empty(t, chain(a))
}

func TestListUnlinkHead(t *testing.T) {
	a := newTestList(t, 3)

	a.unlink(2)

	assert.Equal(t, []int{1, 0}, chain(a))
	assert.Equal(t, 1, a.head)
	assert.Equal(t, noIdx, a.slots[1].prev)
	assert.Equal(t, 0, a.tail)
}

func TestListUnlinkTail(t *testing.T) {
	a := newTestList(t, 3)

	a.unlink(0)

	assert.Equal(t, []int{2, 1}, chain(a))
	assert.Equal(t, 2, a.head)
	assert.Equal(t, 1, a.tail)
	assert.Equal(t, noIdx, a.slots[1].next)
}

func TestListUnlinkMiddle(t *testing.T) {
	a := newTestList(t, 3)

	a.unlink(1)

	assert.Equal(t, []int{2, 0}, chain(a))
	assert.Equal(t, 0, a.slots[2].next)
	assert.Equal(t, 2, a.slots[0].prev)
}

func TestListPopBack(t *testing.T) {
	a := newTestList(t, 3)

	for _, want := range []int{0, 1, 2} {
		idx, ok := a.popBack()
		require.True(t, ok)
		assert.Equal(t, want, idx)
	}

	_, ok := a.popBack()
	assert.False(t, ok, "popBack on an empty list must report false")
	assert.Equal(t, noIdx, a.head)
	assert.Equal(t, noIdx, a.tail)
}

func TestListMoveToFront(t *testing.T) {
	t.Run("tail to head", func(t *testing.T) {
		a := newTestList(t, 3)

		a.moveToFront(0)

		assert.Equal(t, []int{0, 2, 1}, chain(a))
		assert.Equal(t, 1, a.tail)
	})

	t.Run("head is a no-op", func(t *testing.T) {
		a := newTestList(t, 3)

		a.moveToFront(2)

		assert.Equal(t, []int{2, 1, 0}, chain(a))
	})

	t.Run("sole element", func(t *testing.T) {
		a := newTestList(t, 1)

		a.moveToFront(0)

		assert.Equal(t, []int{0}, chain(a))
		assert.Equal(t, 0, a.head)
		assert.Equal(t, 0, a.tail)
	})
}

func TestListRelinkAfterUnlink(t *testing.T) {
	a := newTestList(t, 2)

	// Unlink everything, then rebuild the list in the opposite order.
	a.unlink(0)
	a.unlink(1)
	require.Empty(t, chain(a))

	a.pushFront(0)
	a.pushFront(1)

	assert.Equal(t, []int{1, 0}, chain(a))
	assert.Equal(t, 1, a.head)
	assert.Equal(t, 0, a.tail)
}
