// Package redblack implements a color-balanced (red-black) binary search
// tree over the abstract substrate. Every node is red or black; the root
// is black, a red node never has a red child, and every root-to-leaf path
// crosses the same number of black nodes, which bounds the tree's height
// at twice the shortest branch.
package redblack

import (
	"github.com/GaelEmiliano/edd/abstract"
	"golang.org/x/exp/constraints"
)

// Tree is a self-balancing red-black tree. It refuses external rotation:
// RotateLeft and RotateRight always fail with abstract.ErrExternalRotation
// because an uncontrolled rotation would break the color invariants
// behind the policy's back.
type Tree[V any] struct {
	t abstract.Tree[V, Color, policy[V]]
}

// New returns an empty red-black tree ordered by cmp.
func New[V any](cmp func(V, V) int) *Tree[V] {
	return &Tree[V]{t: abstract.Make[V, Color](cmp, policy[V]{})}
}

// NewOrdered returns an empty red-black tree over a naturally ordered
// type.
func NewOrdered[V constraints.Ordered]() *Tree[V] {
	return New(abstract.Compare[V])
}

// Insert adds v to the tree and rebalances. Inserting a nil value fails
// with abstract.ErrNilValue; ties descend left.
func (t *Tree[V]) Insert(v V) error {
	_, err := t.t.Insert(v)
	return err
}

// Delete removes one occurrence of v and rebalances, reporting whether
// the value was present.
func (t *Tree[V]) Delete(v V) bool {
	return t.t.Delete(v)
}

// Search returns the first node found holding v, or false when absent.
func (t *Tree[V]) Search(v V) (*abstract.Node[V, Color], bool) {
	return t.t.Search(v)
}

// Contains reports whether the tree holds v.
func (t *Tree[V]) Contains(v V) bool {
	return t.t.Contains(v)
}

// Len returns the number of values in the tree.
func (t *Tree[V]) Len() int { return t.t.Len() }

// IsEmpty reports whether the tree holds no values.
func (t *Tree[V]) IsEmpty() bool { return t.t.IsEmpty() }

// Clear removes every value from the tree.
func (t *Tree[V]) Clear() { t.t.Clear() }

// Root returns the root node, or abstract.ErrNoSuchNode when empty.
func (t *Tree[V]) Root() (*abstract.Node[V, Color], error) {
	return t.t.Root()
}

// Height returns the height of the tree, -1 when empty.
func (t *Tree[V]) Height() int {
	r, err := t.t.Root()
	if err != nil {
		return -1
	}
	return r.Height()
}

// ColorOf returns the color of a node of this tree.
func (t *Tree[V]) ColorOf(n *abstract.Node[V, Color]) Color {
	return *n.Aug()
}

// LastInserted returns the node created by the most recent Insert. It is
// only meaningful immediately after that Insert.
func (t *Tree[V]) LastInserted() *abstract.Node[V, Color] {
	return t.t.LastInserted()
}

// RotateLeft always fails with abstract.ErrExternalRotation.
func (t *Tree[V]) RotateLeft(n *abstract.Node[V, Color]) error {
	return t.t.RotateLeft(n)
}

// RotateRight always fails with abstract.ErrExternalRotation.
func (t *Tree[V]) RotateRight(n *abstract.Node[V, Color]) error {
	return t.t.RotateRight(n)
}

// Walk visits every value in the given order.
func (t *Tree[V]) Walk(order abstract.Order, fn func(V)) {
	t.t.Walk(order, func(n *abstract.Node[V, Color]) { fn(n.Value()) })
}

// Iterator lazily walks a red-black tree in a fixed depth-first order.
type Iterator[V any] struct {
	it abstract.Iterator[V, Color, policy[V]]
}

// MakeIter returns an iterator over the tree in the given order.
func (t *Tree[V]) MakeIter(order abstract.Order) Iterator[V] {
	return Iterator[V]{it: t.t.MakeIter(order)}
}

// First positions the iterator at the first value of its order.
func (it *Iterator[V]) First() { it.it.First() }

// Next advances the iterator.
func (it *Iterator[V]) Next() { it.it.Next() }

// Valid reports whether the iterator is positioned at a value.
func (it *Iterator[V]) Valid() bool { return it.it.Valid() }

// Cur returns the value at the current position.
func (it *Iterator[V]) Cur() V { return it.it.Cur() }

// Node returns the node at the current position, nil when invalid.
func (it *Iterator[V]) Node() *abstract.Node[V, Color] { return it.it.Node() }
