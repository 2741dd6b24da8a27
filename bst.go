// Package edd is a library of in-memory ordered container structures: a
// plain binary search tree plus AVL and red-black self-balancing variants
// (packages avl and redblack), together with the sequential containers,
// array utilities and graph the trees collaborate with.
package edd

import (
	"github.com/GaelEmiliano/edd/abstract"
	"golang.org/x/exp/constraints"
)

// unbalanced is the no-op balancing policy of the plain tree: no
// augmentation, no repair, rotation open to callers.
type unbalanced[V any] struct{}

func (unbalanced[V]) OnInserted(*abstract.LowLevel[V, struct{}], *abstract.Node[V, struct{}]) {}

func (unbalanced[V]) OnRemoved(*abstract.LowLevel[V, struct{}], struct{}, *abstract.Node[V, struct{}], *abstract.Node[V, struct{}]) {
}

func (unbalanced[V]) NeedsPhantom() bool { return false }

func (unbalanced[V]) ExternallyRotatable() bool { return true }

// Tree is a plain ordered binary search tree. It upholds the order
// invariant but performs no rebalancing, so its shape depends entirely on
// the insertion sequence. Unlike the balanced variants it may be rotated
// by callers.
type Tree[V any] struct {
	t abstract.Tree[V, struct{}, unbalanced[V]]
}

// New returns an empty tree ordered by cmp.
func New[V any](cmp func(V, V) int) *Tree[V] {
	return &Tree[V]{t: abstract.Make[V, struct{}](cmp, unbalanced[V]{})}
}

// NewOrdered returns an empty tree over a naturally ordered type.
func NewOrdered[V constraints.Ordered]() *Tree[V] {
	return New(abstract.Compare[V])
}

// Insert adds v to the tree. Duplicates are placed in the left subtree of
// an equal value. Inserting a nil value fails with abstract.ErrNilValue.
func (t *Tree[V]) Insert(v V) error {
	_, err := t.t.Insert(v)
	return err
}

// Delete removes one occurrence of v, reporting whether it was present.
func (t *Tree[V]) Delete(v V) bool {
	return t.t.Delete(v)
}

// Search returns the first node found holding v, or false when absent.
func (t *Tree[V]) Search(v V) (*abstract.Node[V, struct{}], bool) {
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

// Height returns the height of the tree, -1 when empty.
func (t *Tree[V]) Height() int {
	r, err := t.t.Root()
	if err != nil {
		return -1
	}
	return r.Height()
}

// Root returns the root node, or abstract.ErrNoSuchNode when empty.
func (t *Tree[V]) Root() (*abstract.Node[V, struct{}], error) {
	return t.t.Root()
}

// LastInserted returns the node created by the most recent Insert. It is
// only meaningful immediately after that Insert.
func (t *Tree[V]) LastInserted() *abstract.Node[V, struct{}] {
	return t.t.LastInserted()
}

// RotateLeft rotates the subtree rooted at n to the left. No-op when n
// has no right child.
func (t *Tree[V]) RotateLeft(n *abstract.Node[V, struct{}]) error {
	return t.t.RotateLeft(n)
}

// RotateRight rotates the subtree rooted at n to the right. No-op when n
// has no left child.
func (t *Tree[V]) RotateRight(n *abstract.Node[V, struct{}]) error {
	return t.t.RotateRight(n)
}

// Walk visits every value in the given order.
func (t *Tree[V]) Walk(order abstract.Order, fn func(V)) {
	t.t.Walk(order, func(n *abstract.Node[V, struct{}]) { fn(n.Value()) })
}

// Iterator lazily walks a plain tree in a fixed depth-first order.
type Iterator[V any] struct {
	it abstract.Iterator[V, struct{}, unbalanced[V]]
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
