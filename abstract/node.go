package abstract

// Node is a vertex of a binary search tree. Exactly one owner points at a
// node: its parent, or the tree's root slot. A node owns its two children
// and keeps a non-owning reference to its parent for upward traversal; the
// back-reference is kept consistent with the owner's pointer on every
// structural change.
//
// A carries the balancing discipline's per-node augmentation (a cached
// height, a color). The substrate never interprets it.
type Node[V, A any] struct {
	value  V
	parent *Node[V, A]
	left   *Node[V, A]
	right  *Node[V, A]
	aug    A
}

// Value returns the value stored in the node.
func (n *Node[V, A]) Value() V {
	return n.value
}

// Aug returns a pointer to the node's augmentation data. It exists for
// balancing policy implementations; mutating it from outside a policy
// invalidates the discipline's invariant.
func (n *Node[V, A]) Aug() *A {
	return &n.aug
}

// HasParent reports whether the node has a parent.
func (n *Node[V, A]) HasParent() bool {
	return n.parent != nil
}

// HasLeft reports whether the node has a left child.
func (n *Node[V, A]) HasLeft() bool {
	return n.left != nil
}

// HasRight reports whether the node has a right child.
func (n *Node[V, A]) HasRight() bool {
	return n.right != nil
}

// Parent returns the node's parent, or ErrNoSuchNode if the node is the
// root.
func (n *Node[V, A]) Parent() (*Node[V, A], error) {
	if n.parent == nil {
		return nil, ErrNoSuchNode
	}
	return n.parent, nil
}

// Left returns the node's left child, or ErrNoSuchNode if it has none.
func (n *Node[V, A]) Left() (*Node[V, A], error) {
	if n.left == nil {
		return nil, ErrNoSuchNode
	}
	return n.left, nil
}

// Right returns the node's right child, or ErrNoSuchNode if it has none.
func (n *Node[V, A]) Right() (*Node[V, A], error) {
	if n.right == nil {
		return nil, ErrNoSuchNode
	}
	return n.right, nil
}

// Height returns the height of the subtree rooted at the node, computed by
// descending it. A leaf has height 0; an absent child contributes -1.
func (n *Node[V, A]) Height() int {
	return subtreeHeight(n)
}

func subtreeHeight[V, A any](n *Node[V, A]) int {
	if n == nil {
		return -1
	}
	l, r := subtreeHeight(n.left), subtreeHeight(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// Depth returns the number of edges between the node and the root.
func (n *Node[V, A]) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

func (n *Node[V, A]) isLeftChild() bool {
	return n.parent != nil && n.parent.left == n
}
