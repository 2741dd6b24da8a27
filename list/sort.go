package list

// MergeSort returns a new list holding l's values sorted by cmp. The
// input list is left untouched. The sort is stable: values comparing
// equal keep their relative order.
func MergeSort[V comparable](l *List[V], cmp func(V, V) int) *List[V] {
	if l.length < 2 {
		return l.Copy()
	}
	left, right := split(l)
	return merge(MergeSort(left, cmp), MergeSort(right, cmp), cmp)
}

// SortedContains reports whether a list sorted by cmp holds v, scanning
// from the front and stopping as soon as a greater value is seen.
func SortedContains[V comparable](l *List[V], v V, cmp func(V, V) int) bool {
	for n := l.head; n != nil; n = n.next {
		c := cmp(n.value, v)
		if c == 0 {
			return true
		}
		if c > 0 {
			return false
		}
	}
	return false
}

func split[V comparable](l *List[V]) (*List[V], *List[V]) {
	left, right := New[V](), New[V]()
	mid := l.length / 2
	i := 0
	for n := l.head; n != nil; n = n.next {
		if i < mid {
			_ = left.Append(n.value)
		} else {
			_ = right.Append(n.value)
		}
		i++
	}
	return left, right
}

func merge[V comparable](a, b *List[V], cmp func(V, V) int) *List[V] {
	out := New[V]()
	na, nb := a.head, b.head
	for na != nil && nb != nil {
		if cmp(na.value, nb.value) <= 0 {
			_ = out.Append(na.value)
			na = na.next
		} else {
			_ = out.Append(nb.value)
			nb = nb.next
		}
	}
	for ; na != nil; na = na.next {
		_ = out.Append(na.value)
	}
	for ; nb != nil; nb = nb.next {
		_ = out.Append(nb.value)
	}
	return out
}
