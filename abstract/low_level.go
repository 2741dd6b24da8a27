package abstract

// LowLevel is the privileged surface handed to balancing policies. It
// exposes raw link navigation, where an absent link is a plain nil, and
// the rotation primitives that public entry points may refuse. Nothing
// outside a Policy hook ever sees one.
type LowLevel[V, A any] struct {
	root **Node[V, A]
}

// Root returns the tree's root node, nil when the tree is empty.
func (lo *LowLevel[V, A]) Root() *Node[V, A] {
	return *lo.root
}

// Parent returns n's parent, nil when n is the root.
func (lo *LowLevel[V, A]) Parent(n *Node[V, A]) *Node[V, A] {
	return n.parent
}

// Left returns n's left child or nil.
func (lo *LowLevel[V, A]) Left(n *Node[V, A]) *Node[V, A] {
	return n.left
}

// Right returns n's right child or nil.
func (lo *LowLevel[V, A]) Right(n *Node[V, A]) *Node[V, A] {
	return n.right
}

// IsLeftChild reports whether n is its parent's left child.
func (lo *LowLevel[V, A]) IsLeftChild(n *Node[V, A]) bool {
	return n.isLeftChild()
}

// RotateLeft rotates the subtree rooted at n to the left, promoting n's
// right child into n's position. No-op when n has no right child.
//
// Before:          After:
//
//	  (n)              (q)
//	  / \              / \
//	 a  (q)    →     (n)  c
//	    / \          / \
//	   b   c        a   b
func (lo *LowLevel[V, A]) RotateLeft(n *Node[V, A]) {
	q := n.right
	if q == nil {
		return
	}
	n.right = q.left
	if q.left != nil {
		q.left.parent = n
	}
	q.parent = n.parent
	switch {
	case n.parent == nil:
		*lo.root = q
	case n.parent.left == n:
		n.parent.left = q
	default:
		n.parent.right = q
	}
	q.left = n
	n.parent = q
}

// RotateRight rotates the subtree rooted at n to the right, promoting n's
// left child into n's position. No-op when n has no left child.
//
// Before:          After:
//
//	   (n)            (p)
//	   / \            / \
//	 (p)  c    →     a  (n)
//	 / \                / \
//	a   b              b   c
func (lo *LowLevel[V, A]) RotateRight(n *Node[V, A]) {
	p := n.left
	if p == nil {
		return
	}
	n.left = p.right
	if p.right != nil {
		p.right.parent = n
	}
	p.parent = n.parent
	switch {
	case n.parent == nil:
		*lo.root = p
	case n.parent.left == n:
		n.parent.left = p
	default:
		n.parent.right = p
	}
	p.right = n
	n.parent = p
}
