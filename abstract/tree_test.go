package abstract

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// noop is the identity policy: no augmentation, no repair, rotation
// allowed.
type noop[V any] struct{}

func (noop[V]) OnInserted(*LowLevel[V, struct{}], *Node[V, struct{}]) {}

func (noop[V]) OnRemoved(*LowLevel[V, struct{}], struct{}, *Node[V, struct{}], *Node[V, struct{}]) {
}

func (noop[V]) NeedsPhantom() bool { return false }

func (noop[V]) ExternallyRotatable() bool { return true }

func makeIntTree(t *testing.T, values ...int) Tree[int, struct{}, noop[int]] {
	t.Helper()
	tr := Make[int, struct{}](Compare[int], noop[int]{})
	for _, v := range values {
		if _, err := tr.Insert(v); err != nil {
			t.Fatalf("insert %d: %v", v, err)
		}
	}
	return tr
}

func inOrderValues(t *Tree[int, struct{}, noop[int]]) []int {
	var out []int
	t.Walk(InOrder, func(n *Node[int, struct{}]) { out = append(out, n.value) })
	return out
}

func TestInsertPlacesTiesLeft(t *testing.T) {
	tr := makeIntTree(t, 5, 5, 5)
	require.Equal(t, 3, tr.Len())
	require.Equal(t, 5, tr.root.value)
	require.NotNil(t, tr.root.left)
	require.NotNil(t, tr.root.left.left)
	require.Nil(t, tr.root.right)
}

func TestInsertShape(t *testing.T) {
	tr := makeIntTree(t, 4, 2, 6, 1, 3, 5, 7)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, inOrderValues(&tr))
	require.Equal(t, 7, tr.Len())
	require.Equal(t, 4, tr.root.value)
	require.Equal(t, 2, tr.root.left.value)
	require.Equal(t, 6, tr.root.right.value)
}

func TestInsertRecordsLastInserted(t *testing.T) {
	tr := makeIntTree(t, 2, 1, 3)
	n, err := tr.Insert(4)
	require.NoError(t, err)
	require.Same(t, n, tr.LastInserted())
	require.Equal(t, 4, tr.LastInserted().Value())
}

func TestSearch(t *testing.T) {
	tr := makeIntTree(t, 4, 2, 6, 1, 3)
	n, ok := tr.Search(3)
	require.True(t, ok)
	require.Equal(t, 3, n.Value())
	_, ok = tr.Search(42)
	require.False(t, ok)
	require.True(t, tr.Contains(6))
	require.False(t, tr.Contains(0))
}

func TestSearchReturnsFirstOnDescent(t *testing.T) {
	tr := makeIntTree(t, 5, 5)
	n, ok := tr.Search(5)
	require.True(t, ok)
	require.Same(t, tr.root, n)
}

func TestDeleteLeaf(t *testing.T) {
	tr := makeIntTree(t, 4, 2, 6)
	require.True(t, tr.Delete(2))
	require.Equal(t, []int{4, 6}, inOrderValues(&tr))
	require.Nil(t, tr.root.left)
	require.Equal(t, 2, tr.Len())
}

func TestDeleteSplicesSingleChild(t *testing.T) {
	tr := makeIntTree(t, 4, 2, 1)
	require.True(t, tr.Delete(2))
	require.Equal(t, []int{1, 4}, inOrderValues(&tr))
	require.Equal(t, 1, tr.root.left.value)
	require.Same(t, tr.root, tr.root.left.parent)
}

func TestDeleteTwoChildrenExchangesPredecessor(t *testing.T) {
	tr := makeIntTree(t, 4, 2, 6, 1, 3)
	// Deleting the root exchanges its value with 3, the in-order
	// predecessor, and splices the old 3 node.
	require.True(t, tr.Delete(4))
	require.Equal(t, []int{1, 2, 3, 6}, inOrderValues(&tr))
	require.Equal(t, 3, tr.root.value)
	require.Equal(t, 4, tr.Len())
}

func TestDeleteAbsentIsNoOp(t *testing.T) {
	tr := makeIntTree(t, 4, 2, 6)
	require.False(t, tr.Delete(42))
	require.Equal(t, 3, tr.Len())
	require.Equal(t, []int{2, 4, 6}, inOrderValues(&tr))
}

func TestDeleteRootOfSingletonEmptiesTree(t *testing.T) {
	tr := makeIntTree(t, 7)
	require.True(t, tr.Delete(7))
	require.True(t, tr.IsEmpty())
	require.Equal(t, 0, tr.Len())
	_, ok := tr.Search(7)
	require.False(t, ok)
	_, err := tr.Root()
	require.ErrorIs(t, err, ErrNoSuchNode)
}

func TestInsertNilValueRejected(t *testing.T) {
	tr := Make[*int, struct{}](func(a, b *int) int { return Compare(*a, *b) }, noop[*int]{})
	one := 1
	_, err := tr.Insert(&one)
	require.NoError(t, err)
	_, err = tr.Insert(nil)
	require.ErrorIs(t, err, ErrNilValue)
	require.Equal(t, 1, tr.Len())
	require.NotNil(t, tr.root)
	require.Nil(t, tr.root.left)
	require.Nil(t, tr.root.right)
}

func TestRotationRoundTripRestoresShape(t *testing.T) {
	tr := makeIntTree(t, 4, 2, 6, 1, 3, 5, 7)
	before := inOrderValues(&tr)
	root := tr.root

	require.NoError(t, tr.RotateLeft(root))
	require.Equal(t, 6, tr.root.value)
	require.Equal(t, before, inOrderValues(&tr), "rotation must preserve order")

	require.NoError(t, tr.RotateRight(tr.root))
	require.Same(t, root, tr.root)
	require.Equal(t, before, inOrderValues(&tr))
	require.Equal(t, 2, tr.root.left.value)
	require.Equal(t, 6, tr.root.right.value)
}

func TestRotationWithoutChildIsNoOp(t *testing.T) {
	tr := makeIntTree(t, 2, 1)
	require.NoError(t, tr.RotateLeft(tr.root)) // no right child
	require.Equal(t, 2, tr.root.value)
	require.Equal(t, []int{1, 2}, inOrderValues(&tr))
}

func TestNodeIntrospection(t *testing.T) {
	tr := makeIntTree(t, 4, 2, 6)
	root := tr.root
	require.False(t, root.HasParent())
	require.True(t, root.HasLeft())
	require.True(t, root.HasRight())
	_, err := root.Parent()
	require.ErrorIs(t, err, ErrNoSuchNode)

	left, err := root.Left()
	require.NoError(t, err)
	require.Equal(t, 2, left.Value())
	p, err := left.Parent()
	require.NoError(t, err)
	require.Same(t, root, p)
	_, err = left.Left()
	require.ErrorIs(t, err, ErrNoSuchNode)
	_, err = left.Right()
	require.ErrorIs(t, err, ErrNoSuchNode)

	require.Equal(t, 1, root.Height())
	require.Equal(t, 0, left.Height())
	require.Equal(t, 0, root.Depth())
	require.Equal(t, 1, left.Depth())
}

func TestClear(t *testing.T) {
	tr := makeIntTree(t, 1, 2, 3)
	tr.Clear()
	require.True(t, tr.IsEmpty())
	require.Equal(t, 0, tr.Len())
	_, err := tr.Root()
	require.ErrorIs(t, err, ErrNoSuchNode)
}

func TestCountMatchesTraversal(t *testing.T) {
	tr := makeIntTree(t)
	rng := rand.New(rand.NewSource(0))
	present := map[int]int{}
	for i := 0; i < 500; i++ {
		v := rng.Intn(50)
		if rng.Float64() < 0.6 {
			_, err := tr.Insert(v)
			if err != nil {
				t.Fatalf("insert %d: %v", v, err)
			}
			present[v]++
		} else if tr.Delete(v) {
			present[v]--
		}
		if got := len(inOrderValues(&tr)); got != tr.Len() {
			t.Fatalf("count %d does not match traversal length %d", tr.Len(), got)
		}
	}
	total := 0
	for _, c := range present {
		total += c
	}
	require.Equal(t, total, tr.Len())
}
