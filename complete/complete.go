// Package complete implements a structurally complete binary tree: every
// level is full except possibly the last, which fills left to right.
// Values are placed by arrival order, not by comparison, so traversal is
// breadth-first rather than sorted.
package complete

import (
	"github.com/GaelEmiliano/edd/abstract"
	"github.com/GaelEmiliano/edd/queue"
)

type node[V comparable] struct {
	value               V
	parent, left, right *node[V]
}

// Tree is a complete binary tree. The zero value is an empty tree ready
// to use.
type Tree[V comparable] struct {
	root   *node[V]
	length int
}

// New returns an empty complete binary tree.
func New[V comparable]() *Tree[V] {
	return &Tree[V]{}
}

// Len returns the number of values in the tree.
func (t *Tree[V]) Len() int { return t.length }

// IsEmpty reports whether the tree holds no values.
func (t *Tree[V]) IsEmpty() bool { return t.root == nil }

// Height returns the height of the tree, -1 when empty. Completeness
// makes it the floor of lg of the size.
func (t *Tree[V]) Height() int {
	if t.length == 0 {
		return -1
	}
	h := 0
	for n := t.length; n > 1; n >>= 1 {
		h++
	}
	return h
}

// Add places v in the first free level-order slot. A nil value is
// rejected with abstract.ErrNilValue.
//
// The slot is found without searching: the binary digits of the new size
// below its leading one spell the left/right path from the root.
func (t *Tree[V]) Add(v V) error {
	if abstract.IsNil(v) {
		return abstract.ErrNilValue
	}
	n := &node[V]{value: v}
	t.length++
	if t.root == nil {
		t.root = n
		return nil
	}
	parent := t.nodeAtPath(t.length >> 1)
	n.parent = parent
	if t.length&1 == 0 {
		parent.left = n
	} else {
		parent.right = n
	}
	return nil
}

// Delete removes one occurrence of v, reporting whether it was present.
// The victim exchanges values with the last level-order node, which is
// then detached, so the tree stays complete.
func (t *Tree[V]) Delete(v V) bool {
	victim := t.find(v)
	if victim == nil {
		return false
	}
	last := t.nodeAtPath(t.length)
	victim.value = last.value
	t.length--
	switch {
	case last.parent == nil:
		t.root = nil
	case last.parent.left == last:
		last.parent.left = nil
	default:
		last.parent.right = nil
	}
	last.parent = nil
	return true
}

// Contains reports whether the tree holds v.
func (t *Tree[V]) Contains(v V) bool {
	return t.find(v) != nil
}

// Clear removes every value from the tree.
func (t *Tree[V]) Clear() {
	t.root = nil
	t.length = 0
}

// Walk visits every value in breadth-first order.
func (t *Tree[V]) Walk(fn func(V)) {
	it := t.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		fn(it.Cur())
	}
}

// nodeAtPath returns the node at level-order position i (1-based). The
// bits of i below its leading one are the path from the root, high bit
// first, zero meaning left.
func (t *Tree[V]) nodeAtPath(i int) *node[V] {
	lead := 1
	for lead<<1 <= i {
		lead <<= 1
	}
	n := t.root
	for lead >>= 1; lead > 0; lead >>= 1 {
		if i&lead == 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n
}

// find locates the first node holding v in breadth-first order.
func (t *Tree[V]) find(v V) *node[V] {
	if t.root == nil {
		return nil
	}
	q := queue.New[*node[V]]()
	_ = q.Enqueue(t.root)
	for !q.IsEmpty() {
		n, _ := q.Dequeue()
		if n.value == v {
			return n
		}
		if n.left != nil {
			_ = q.Enqueue(n.left)
		}
		if n.right != nil {
			_ = q.Enqueue(n.right)
		}
	}
	return nil
}

// Iterator walks a complete tree in breadth-first order, driven by a
// queue of pending nodes.
type Iterator[V comparable] struct {
	t   *Tree[V]
	q   *queue.Queue[*node[V]]
	cur *node[V]
}

// MakeIter returns an iterator positioned before the first value.
func (t *Tree[V]) MakeIter() Iterator[V] {
	return Iterator[V]{t: t}
}

// First positions the iterator at the root.
func (it *Iterator[V]) First() {
	it.q = queue.New[*node[V]]()
	it.cur = nil
	if it.t.root != nil {
		_ = it.q.Enqueue(it.t.root)
	}
	it.Next()
}

// Next advances the iterator to the next value in level order.
func (it *Iterator[V]) Next() {
	n, err := it.q.Dequeue()
	if err != nil {
		it.cur = nil
		return
	}
	if n.left != nil {
		_ = it.q.Enqueue(n.left)
	}
	if n.right != nil {
		_ = it.q.Enqueue(n.right)
	}
	it.cur = n
}

// Valid reports whether the iterator is positioned at a value.
func (it *Iterator[V]) Valid() bool { return it.cur != nil }

// Cur returns the value at the current position.
func (it *Iterator[V]) Cur() V { return it.cur.value }
