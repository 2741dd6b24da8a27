package abstract

import "golang.org/x/exp/constraints"

// Compare is a three-way comparison over any ordered type, usable as the
// comparison function of a Tree.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a == b:
		return 0
	default:
		return 1
	}
}
