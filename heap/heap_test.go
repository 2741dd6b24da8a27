package heap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GaelEmiliano/edd/abstract"
	"github.com/GaelEmiliano/edd/heap"
)

func drain(t *testing.T, h *heap.Heap[int]) []int {
	t.Helper()
	var out []int
	for !h.IsEmpty() {
		v, err := h.Pop()
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func TestPopYieldsAscending(t *testing.T) {
	h := heap.New(abstract.Compare[int])
	for _, v := range []int{5, 1, 4, 2, 3} {
		h.Push(v)
	}
	require.Equal(t, 5, h.Len())
	require.Equal(t, []int{1, 2, 3, 4, 5}, drain(t, h))
}

func TestEmptyAccess(t *testing.T) {
	h := heap.New(abstract.Compare[int])
	_, err := h.Pop()
	require.ErrorIs(t, err, heap.ErrEmpty)
	_, err = h.Peek()
	require.ErrorIs(t, err, heap.ErrEmpty)
}

func TestPeek(t *testing.T) {
	h := heap.New(abstract.Compare[int])
	h.Push(3)
	h.Push(1)
	v, err := h.Peek()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, 2, h.Len())
}

func TestRemove(t *testing.T) {
	h := heap.New(abstract.Compare[int])
	h.Push(1)
	mid := h.Push(5)
	h.Push(3)
	h.Remove(mid)
	require.Equal(t, []int{1, 3}, drain(t, h))
	// A second removal of the same item is a no-op.
	h.Remove(mid)
	require.True(t, h.IsEmpty())
}

func TestUpdateReordersBothWays(t *testing.T) {
	type entry struct {
		key int
		tag string
	}
	cmp := func(a, b entry) int { return abstract.Compare(a.key, b.key) }
	h := heap.New(cmp)
	a := h.Push(entry{10, "a"})
	h.Push(entry{20, "b"})
	c := h.Push(entry{30, "c"})

	// Decrease c below everything, increase a above everything.
	h.Update(c, entry{5, "c"})
	h.Update(a, entry{40, "a"})

	v, err := h.Pop()
	require.NoError(t, err)
	require.Equal(t, "c", v.tag)
	v, err = h.Pop()
	require.NoError(t, err)
	require.Equal(t, "b", v.tag)
	v, err = h.Pop()
	require.NoError(t, err)
	require.Equal(t, "a", v.tag)
}

func TestClearInvalidatesItems(t *testing.T) {
	h := heap.New(abstract.Compare[int])
	it := h.Push(1)
	h.Clear()
	require.True(t, h.IsEmpty())
	h.Remove(it)
	h.Fix(it)
	h.Push(2)
	require.Equal(t, []int{2}, drain(t, h))
}

func TestRandomSoak(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for trial := 0; trial < 16; trial++ {
		h := heap.New(abstract.Compare[int])
		want := make([]int, 200)
		for i := range want {
			want[i] = rng.Intn(1000)
			h.Push(want[i])
		}
		sort.Ints(want)
		got := drain(t, h)
		require.Equal(t, want, got)
	}
}
