// Package abstract implements the ordered binary tree substrate shared by
// every tree in this module. It maintains the binary-search-tree order
// invariant and provides search, insertion, deletion and the two rotation
// primitives; shape invariants beyond ordering are delegated to a Policy
// supplied at construction time, which augments each node with its own
// data and repairs the tree after each mutation.
package abstract

import "reflect"

// Tree is an ordered binary tree specialized by a balancing policy P with
// per-node augmentation A. Values are ordered by the comparison function
// given to Make; duplicates are permitted and always placed in the left
// subtree of an equal node, so insertion order is stable under in-order
// traversal.
//
// A Tree is not safe for concurrent mutation; callers that share one
// across goroutines must serialize access themselves.
type Tree[V, A any, P Policy[V, A]] struct {
	root   *Node[V, A]
	length int
	last   *Node[V, A]
	cmp    func(V, V) int
	policy P
}

// Make constructs an empty tree ordered by cmp and balanced by policy.
func Make[V, A any, P Policy[V, A]](cmp func(V, V) int, policy P) Tree[V, A, P] {
	return Tree[V, A, P]{
		cmp:    cmp,
		policy: policy,
	}
}

// Len returns the number of values in the tree.
func (t *Tree[V, A, P]) Len() int {
	return t.length
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[V, A, P]) IsEmpty() bool {
	return t.root == nil
}

// Root returns the root node, or ErrNoSuchNode when the tree is empty.
func (t *Tree[V, A, P]) Root() (*Node[V, A], error) {
	if t.root == nil {
		return nil, ErrNoSuchNode
	}
	return t.root, nil
}

// Clear removes every value from the tree.
func (t *Tree[V, A, P]) Clear() {
	t.root = nil
	t.last = nil
	t.length = 0
}

// LastInserted returns the node created by the most recent Insert. It is
// only meaningful immediately after that Insert returns; any other
// structural operation leaves it undefined.
func (t *Tree[V, A, P]) LastInserted() *Node[V, A] {
	return t.last
}

// Search descends from the root comparing v against each visited node and
// returns the first node holding an equal value, or false when the tree
// does not contain v.
func (t *Tree[V, A, P]) Search(v V) (*Node[V, A], bool) {
	n := t.root
	for n != nil {
		c := t.cmp(v, n.value)
		if c == 0 {
			return n, true
		}
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil, false
}

// Contains reports whether the tree holds a value equal to v.
func (t *Tree[V, A, P]) Contains(v V) bool {
	_, ok := t.Search(v)
	return ok
}

// Insert adds v to the tree and returns its new node. Ties and lesser
// values descend left, strictly greater values descend right. A nil value
// is rejected with ErrNilValue before any mutation takes place.
func (t *Tree[V, A, P]) Insert(v V) (*Node[V, A], error) {
	if IsNil(v) {
		return nil, ErrNilValue
	}
	n := &Node[V, A]{value: v}
	if t.root == nil {
		t.root = n
	} else {
		cur := t.root
		for {
			if t.cmp(v, cur.value) <= 0 {
				if cur.left == nil {
					cur.left = n
					n.parent = cur
					break
				}
				cur = cur.left
			} else {
				if cur.right == nil {
					cur.right = n
					n.parent = cur
					break
				}
				cur = cur.right
			}
		}
	}
	t.length++
	t.last = n
	t.policy.OnInserted(t.lowLevel(), n)
	return n, nil
}

// Delete removes one node holding a value equal to v and reports whether
// anything was removed. A value absent from the tree is a no-op, not an
// error.
//
// A node with two children is never spliced out directly: its value is
// exchanged with the maximum of its left subtree (the in-order
// predecessor) and that node, which has at most one child, is removed
// instead. Policies therefore always repair around a node with at most
// one child.
func (t *Tree[V, A, P]) Delete(v V) bool {
	n, ok := t.Search(v)
	if !ok {
		return false
	}
	t.length--
	if n.left != nil && n.right != nil {
		n = t.exchangeWithPredecessor(n)
	}
	var phantom *Node[V, A]
	if n.left == nil && n.right == nil && t.policy.NeedsPhantom() {
		phantom = &Node[V, A]{parent: n}
		n.left = phantom
	}
	h := n.left
	if h == nil {
		h = n.right
	}
	parent := n.parent
	t.splice(n)
	t.policy.OnRemoved(t.lowLevel(), n.aug, parent, h)
	if phantom != nil {
		t.splice(phantom)
	}
	return true
}

// exchangeWithPredecessor swaps n's value with the maximum value of its
// left subtree and returns the node now holding n's old value. The
// returned node has at most one child. Exchanging values instead of
// splicing pointers keeps the node identity a policy tracks stable.
func (t *Tree[V, A, P]) exchangeWithPredecessor(n *Node[V, A]) *Node[V, A] {
	pred := n.left
	for pred.right != nil {
		pred = pred.right
	}
	n.value, pred.value = pred.value, n.value
	return pred
}

// splice detaches a node with at most one child, promoting that child (if
// any) into its position. The node's links are cleared; it owns nothing
// afterwards.
func (t *Tree[V, A, P]) splice(n *Node[V, A]) {
	child := n.left
	if child == nil {
		child = n.right
	}
	switch {
	case n.parent == nil:
		t.root = child
	case n.parent.left == n:
		n.parent.left = child
	default:
		n.parent.right = child
	}
	if child != nil {
		child.parent = n.parent
	}
	n.parent, n.left, n.right = nil, nil, nil
}

// RotateLeft rotates the subtree rooted at n to the left. Policies that
// balance the tree themselves refuse with ErrExternalRotation. A missing
// right child makes the call a no-op.
func (t *Tree[V, A, P]) RotateLeft(n *Node[V, A]) error {
	if !t.policy.ExternallyRotatable() {
		return ErrExternalRotation
	}
	t.lowLevel().RotateLeft(n)
	return nil
}

// RotateRight rotates the subtree rooted at n to the right. Policies that
// balance the tree themselves refuse with ErrExternalRotation. A missing
// left child makes the call a no-op.
func (t *Tree[V, A, P]) RotateRight(n *Node[V, A]) error {
	if !t.policy.ExternallyRotatable() {
		return ErrExternalRotation
	}
	t.lowLevel().RotateRight(n)
	return nil
}

func (t *Tree[V, A, P]) lowLevel() *LowLevel[V, A] {
	return &LowLevel[V, A]{root: &t.root}
}

// IsNil reports whether v's dynamic representation is nil. Value types can
// never be nil; the check exists so containers of pointers or interfaces
// reject an absent value instead of letting it poison comparisons. The
// sequential containers share it.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
