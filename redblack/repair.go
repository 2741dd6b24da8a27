package redblack

import "github.com/GaelEmiliano/edd/abstract"

// Color is the binary tag every red-black node carries. The zero value is
// Black so that the phantom leaves the substrate promotes during deletion
// are born black, as the repair algorithm requires.
type Color uint8

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// policy is the color-balancing discipline. It restores the red-black
// invariants after each mutation: the root is black, a red node never has
// a red child, and every root-to-leaf path crosses the same number of
// black nodes.
type policy[V any] struct{}

func (p policy[V]) OnInserted(lo *abstract.LowLevel[V, Color], n *abstract.Node[V, Color]) {
	*n.Aug() = Red
	p.insertRepair(lo, n)
}

func (p policy[V]) OnRemoved(lo *abstract.LowLevel[V, Color], removed Color, _, h *abstract.Node[V, Color]) {
	// h is never nil: a removed leaf leaves a phantom in its place.
	if isRed(h) {
		*h.Aug() = Black
		return
	}
	if removed == Red {
		return
	}
	p.removeRepair(lo, h)
}

// NeedsPhantom is true: deleting a leaf promotes a temporary black
// phantom into its place so the repair walk has a concrete position.
func (policy[V]) NeedsPhantom() bool { return true }

func (policy[V]) ExternallyRotatable() bool { return false }

// insertRepair walks ancestors from a freshly inserted red node, fixing
// any red-red violation by recoloring and at most two rotations.
func (p policy[V]) insertRepair(lo *abstract.LowLevel[V, Color], n *abstract.Node[V, Color]) {
	parent := lo.Parent(n)
	// Case 1: n is the root.
	if parent == nil {
		*n.Aug() = Black
		return
	}
	// Case 2: a black parent breaks nothing.
	if !isRed(parent) {
		return
	}
	// The parent is red, so it cannot be the root and a grandparent
	// exists.
	grand := lo.Parent(parent)
	uncle := sibling(lo, parent)
	// Case 3: red uncle. Push blackness down from the grandparent and
	// repair from there.
	if isRed(uncle) {
		*uncle.Aug() = Black
		*parent.Aug() = Black
		*grand.Aug() = Red
		p.insertRepair(lo, grand)
		return
	}
	// Case 4: n and its parent are cross oriented. Rotate at the parent
	// to straighten them, swapping the roles of n and parent.
	if lo.IsLeftChild(n) != lo.IsLeftChild(parent) {
		if lo.IsLeftChild(parent) {
			lo.RotateLeft(parent)
		} else {
			lo.RotateRight(parent)
		}
		n, parent = parent, n
	}
	// Case 5: straight orientation. One rotation at the grandparent
	// finishes the repair.
	*parent.Aug() = Black
	*grand.Aug() = Red
	if lo.IsLeftChild(n) {
		lo.RotateRight(grand)
	} else {
		lo.RotateLeft(grand)
	}
}

// removeRepair rebalances after a black node was removed, leaving the
// subtree rooted at h one black node short. The six classical cases are
// applied in order against h's sibling and the sibling's children.
func (p policy[V]) removeRepair(lo *abstract.LowLevel[V, Color], h *abstract.Node[V, Color]) {
	parent := lo.Parent(h)
	// Case 1: the shortfall reached the root; every path shrank equally.
	if parent == nil {
		return
	}
	s := sibling(lo, h)
	// Case 2: red sibling. Rotate it over the parent so the remaining
	// cases see a black sibling.
	if isRed(s) {
		*parent.Aug() = Red
		*s.Aug() = Black
		if lo.IsLeftChild(h) {
			lo.RotateLeft(parent)
		} else {
			lo.RotateRight(parent)
		}
		parent = lo.Parent(h)
		s = sibling(lo, h)
	}
	sl, sr := lo.Left(s), lo.Right(s)
	// Case 3: parent, sibling and both nephews black. Pull one black off
	// the sibling side and push the shortfall one level up.
	if !isRed(parent) && !isRed(s) && !isRed(sl) && !isRed(sr) {
		*s.Aug() = Red
		p.removeRepair(lo, parent)
		return
	}
	// Case 4: sibling side all black but the parent red. Trading their
	// colors settles both paths.
	if !isRed(s) && !isRed(sl) && !isRed(sr) {
		*s.Aug() = Red
		*parent.Aug() = Black
		return
	}
	// Case 5: the near nephew is red, the far one black. Rotate at the
	// sibling to expose a red far nephew for case 6.
	if (lo.IsLeftChild(h) && isRed(sl) && !isRed(sr)) ||
		(!lo.IsLeftChild(h) && !isRed(sl) && isRed(sr)) {
		*s.Aug() = Red
		if isRed(sr) {
			*sr.Aug() = Black
		} else {
			*sl.Aug() = Black
		}
		if lo.IsLeftChild(h) {
			lo.RotateRight(s)
		} else {
			lo.RotateLeft(s)
		}
		s = sibling(lo, h)
		sl, sr = lo.Left(s), lo.Right(s)
	}
	// Case 6: red far nephew. A final rotation at the parent restores
	// the black-height of h's side.
	*s.Aug() = *parent.Aug()
	*parent.Aug() = Black
	if lo.IsLeftChild(h) {
		*sr.Aug() = Black
		lo.RotateLeft(parent)
	} else {
		*sl.Aug() = Black
		lo.RotateRight(parent)
	}
}

// isRed treats an absent child as black.
func isRed[V any](n *abstract.Node[V, Color]) bool {
	return n != nil && *n.Aug() == Red
}

func sibling[V any](lo *abstract.LowLevel[V, Color], n *abstract.Node[V, Color]) *abstract.Node[V, Color] {
	p := lo.Parent(n)
	if lo.IsLeftChild(n) {
		return lo.Right(p)
	}
	return lo.Left(p)
}
