package abstract

// Policy is a balancing discipline plugged into the substrate. The tree
// performs the mechanical placement or splice and then hands control to the
// policy, which repairs its own shape invariant by walking from the
// mutation site toward the root. Dependency flows strictly policy →
// substrate: the substrate never calls back into a policy other than
// through these hooks.
type Policy[V, A any] interface {
	// OnInserted is invoked after n has been linked into the tree as a
	// leaf. The policy may recolor and rotate through lo.
	OnInserted(lo *LowLevel[V, A], n *Node[V, A])

	// OnRemoved is invoked after a node with at most one child was
	// spliced out. removed is the augmentation the spliced node carried,
	// parent its former parent (nil when the root was removed) and h the
	// child promoted into its place. h is nil when the spliced node was a
	// leaf and the policy did not request a phantom.
	OnRemoved(lo *LowLevel[V, A], removed A, parent, h *Node[V, A])

	// NeedsPhantom reports whether removal of a leaf must promote a
	// temporary phantom node into its place so that OnRemoved has a
	// concrete position to reason about. The substrate detaches the
	// phantom once OnRemoved returns.
	NeedsPhantom() bool

	// ExternallyRotatable reports whether callers may rotate the tree
	// through its public entry points. Self-balancing policies return
	// false: an uncontrolled rotation would silently break their
	// invariant.
	ExternallyRotatable() bool
}
