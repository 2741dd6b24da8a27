package abstract

// Order selects the depth-first traversal order of an Iterator or Walk.
type Order uint8

const (
	// InOrder visits the left subtree, the node, then the right subtree.
	// On a tree upholding the order invariant it yields a non-decreasing
	// sequence of values.
	InOrder Order = iota
	// PreOrder visits the node before either subtree.
	PreOrder
	// PostOrder visits both subtrees before the node.
	PostOrder
)

// Iterator lazily walks a tree in a fixed depth-first order. It is
// restartable through First and must not be used across mutations of the
// tree; create a new one instead.
type Iterator[V, A any, P Policy[V, A]] struct {
	r     *Tree[V, A, P]
	order Order
	cur   *Node[V, A]
	s     iterStack[V, A]
}

// MakeIter returns a new Iterator over the tree in the given order,
// positioned before the first node.
func (t *Tree[V, A, P]) MakeIter(order Order) Iterator[V, A, P] {
	return Iterator[V, A, P]{r: t, order: order}
}

// First positions the iterator at the first node of its order.
func (i *Iterator[V, A, P]) First() {
	i.s.reset()
	i.cur = nil
	root := i.r.root
	if root == nil {
		return
	}
	switch i.order {
	case InOrder:
		i.pushLeftSpine(root)
	case PreOrder:
		i.s.push(root)
	case PostOrder:
		i.pushDescent(root)
	}
	i.Next()
}

// Next advances the iterator to the next node of its order.
func (i *Iterator[V, A, P]) Next() {
	if i.s.len() == 0 {
		i.cur = nil
		return
	}
	n := i.s.pop()
	switch i.order {
	case InOrder:
		if n.right != nil {
			i.pushLeftSpine(n.right)
		}
	case PreOrder:
		if n.right != nil {
			i.s.push(n.right)
		}
		if n.left != nil {
			i.s.push(n.left)
		}
	case PostOrder:
		if p := i.s.peek(); p != nil && n == p.left && p.right != nil {
			i.pushDescent(p.right)
		}
	}
	i.cur = n
}

// Valid reports whether the iterator is positioned at a node.
func (i *Iterator[V, A, P]) Valid() bool {
	return i.cur != nil
}

// Cur returns the value at the current position. It is illegal to call
// Cur on an invalid iterator.
func (i *Iterator[V, A, P]) Cur() V {
	return i.cur.value
}

// Node returns the node at the current position, nil when invalid.
func (i *Iterator[V, A, P]) Node() *Node[V, A] {
	return i.cur
}

// pushLeftSpine pushes n and every node on its leftmost branch.
func (i *Iterator[V, A, P]) pushLeftSpine(n *Node[V, A]) {
	for ; n != nil; n = n.left {
		i.s.push(n)
	}
}

// pushDescent pushes the chain from n down to its deepest first-visited
// descendant, preferring left children.
func (i *Iterator[V, A, P]) pushDescent(n *Node[V, A]) {
	for n != nil {
		i.s.push(n)
		if n.left != nil {
			n = n.left
		} else {
			n = n.right
		}
	}
}

// Walk visits every node of the tree in the given order, calling fn on
// each.
func (t *Tree[V, A, P]) Walk(order Order, fn func(*Node[V, A])) {
	walk(t.root, order, fn)
}

func walk[V, A any](n *Node[V, A], order Order, fn func(*Node[V, A])) {
	if n == nil {
		return
	}
	if order == PreOrder {
		fn(n)
	}
	walk(n.left, order, fn)
	if order == InOrder {
		fn(n)
	}
	walk(n.right, order, fn)
	if order == PostOrder {
		fn(n)
	}
}
