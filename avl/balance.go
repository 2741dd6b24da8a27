package avl

import "github.com/GaelEmiliano/edd/abstract"

// policy is the height-balancing discipline. Each node's augmentation is
// its cached subtree height; after every mutation the repair walk climbs
// from the mutation site to the root, recomputing cached heights and
// rotating wherever a balance factor reaches ±2.
type policy[V any] struct{}

func (p policy[V]) OnInserted(lo *abstract.LowLevel[V, int], n *abstract.Node[V, int]) {
	p.rebalance(lo, lo.Parent(n))
}

func (p policy[V]) OnRemoved(lo *abstract.LowLevel[V, int], _ int, parent, _ *abstract.Node[V, int]) {
	p.rebalance(lo, parent)
}

func (policy[V]) NeedsPhantom() bool { return false }

func (policy[V]) ExternallyRotatable() bool { return false }

// rebalance restores the height-balance invariant from n upward. A
// rotation only changes the heights of the rotated pair, so recomputing
// those two bottom-up before continuing the climb keeps every cached
// height exact.
func (p policy[V]) rebalance(lo *abstract.LowLevel[V, int], n *abstract.Node[V, int]) {
	if n == nil {
		return
	}
	updateHeight(lo, n)
	switch balanceFactor(lo, n) {
	case -2:
		right := lo.Right(n)
		if balanceFactor(lo, right) == 1 {
			// Cross orientation: straighten the right child first.
			lo.RotateRight(right)
			updateHeight(lo, right)
			updateHeight(lo, n)
		}
		lo.RotateLeft(n)
		updateHeight(lo, n)
		updateHeight(lo, lo.Parent(n))
	case 2:
		left := lo.Left(n)
		if balanceFactor(lo, left) == -1 {
			lo.RotateLeft(left)
			updateHeight(lo, left)
			updateHeight(lo, n)
		}
		lo.RotateRight(n)
		updateHeight(lo, n)
		updateHeight(lo, lo.Parent(n))
	}
	p.rebalance(lo, lo.Parent(n))
}

// cachedHeight reads a node's cached height, -1 for an absent child.
func cachedHeight[V any](n *abstract.Node[V, int]) int {
	if n == nil {
		return -1
	}
	return *n.Aug()
}

func updateHeight[V any](lo *abstract.LowLevel[V, int], n *abstract.Node[V, int]) {
	l, r := cachedHeight(lo.Left(n)), cachedHeight(lo.Right(n))
	if l > r {
		*n.Aug() = l + 1
	} else {
		*n.Aug() = r + 1
	}
}

// balanceFactor is height(left) - height(right) over cached heights.
func balanceFactor[V any](lo *abstract.LowLevel[V, int], n *abstract.Node[V, int]) int {
	return cachedHeight(lo.Left(n)) - cachedHeight(lo.Right(n))
}
