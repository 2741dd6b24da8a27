package abstract

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, tr *Tree[int, struct{}, noop[int]], order Order) []int {
	t.Helper()
	var out []int
	it := tr.MakeIter(order)
	for it.First(); it.Valid(); it.Next() {
		out = append(out, it.Cur())
	}
	return out
}

func TestIteratorOrders(t *testing.T) {
	tr := makeIntTree(t, 4, 2, 6, 1, 3, 5, 7)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, collect(t, &tr, InOrder))
	require.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, collect(t, &tr, PreOrder))
	require.Equal(t, []int{1, 3, 2, 5, 7, 6, 4}, collect(t, &tr, PostOrder))
}

func TestIteratorEmptyTree(t *testing.T) {
	tr := Make[int, struct{}](Compare[int], noop[int]{})
	it := tr.MakeIter(InOrder)
	it.First()
	require.False(t, it.Valid())
}

func TestIteratorSingleNode(t *testing.T) {
	tr := makeIntTree(t, 9)
	for _, order := range []Order{InOrder, PreOrder, PostOrder} {
		require.Equal(t, []int{9}, collect(t, &tr, order))
	}
}

func TestIteratorDegenerateChain(t *testing.T) {
	// A strictly decreasing insertion builds a left-spine chain, which
	// exercises the stack spill past its inline frames.
	tr := makeIntTree(t)
	for v := 64; v >= 1; v-- {
		if _, err := tr.Insert(v); err != nil {
			t.Fatalf("insert %d: %v", v, err)
		}
	}
	want := make([]int, 0, 64)
	for v := 1; v <= 64; v++ {
		want = append(want, v)
	}
	require.Equal(t, want, collect(t, &tr, InOrder))
	wantPre := make([]int, 0, 64)
	for v := 64; v >= 1; v-- {
		wantPre = append(wantPre, v)
	}
	require.Equal(t, wantPre, collect(t, &tr, PreOrder))
	require.Equal(t, want, collect(t, &tr, PostOrder))
}

func TestIteratorNodeAccess(t *testing.T) {
	tr := makeIntTree(t, 2, 1, 3)
	it := tr.MakeIter(InOrder)
	it.First()
	require.True(t, it.Valid())
	require.Equal(t, 1, it.Node().Value())
	it.Next()
	require.Same(t, tr.root, it.Node())
}

func TestIteratorRandomPermutations(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 32; trial++ {
		perm := rng.Perm(100)
		tr := makeIntTree(t)
		for _, v := range perm {
			if _, err := tr.Insert(v); err != nil {
				t.Fatalf("insert %d: %v", v, err)
			}
		}
		got := collect(t, &tr, InOrder)
		if !sort.IntsAreSorted(got) {
			t.Fatalf("in-order traversal not sorted after perm %v", perm)
		}
		if len(got) != 100 {
			t.Fatalf("expected 100 values, got %d", len(got))
		}
		// Pre- and post-order must visit every node exactly once.
		for _, order := range []Order{PreOrder, PostOrder} {
			vals := collect(t, &tr, order)
			sort.Ints(vals)
			require.Equal(t, got, vals)
		}
	}
}

func TestWalkMatchesIterator(t *testing.T) {
	tr := makeIntTree(t, 4, 2, 6, 1, 3, 5, 7)
	for _, order := range []Order{InOrder, PreOrder, PostOrder} {
		var walked []int
		tr.Walk(order, func(n *Node[int, struct{}]) { walked = append(walked, n.value) })
		require.Equal(t, collect(t, &tr, order), walked)
	}
}
