package abstract

// iterStack is a stack of nodes capturing iteration state as an Iterator
// walks a tree. Stacks shallower than iterStackDepth live in a fixed
// array to avoid allocating for the common case.
type iterStack[V, A any] struct {
	a    [iterStackDepth]*Node[V, A]
	aLen int8 // -1 when spilled into s
	s    []*Node[V, A]
}

const iterStackDepth = 16

func (is *iterStack[V, A]) push(n *Node[V, A]) {
	if is.aLen == -1 {
		is.s = append(is.s, n)
	} else if int(is.aLen) == len(is.a) {
		is.s = make([]*Node[V, A], int(is.aLen)+1, 2*int(is.aLen))
		copy(is.s, is.a[:])
		is.s[int(is.aLen)] = n
		is.aLen = -1
	} else {
		is.a[is.aLen] = n
		is.aLen++
	}
}

func (is *iterStack[V, A]) pop() *Node[V, A] {
	if is.aLen == -1 {
		n := is.s[len(is.s)-1]
		is.s = is.s[:len(is.s)-1]
		return n
	}
	is.aLen--
	return is.a[is.aLen]
}

// peek returns the top of the stack without popping, nil when empty.
func (is *iterStack[V, A]) peek() *Node[V, A] {
	if is.aLen == -1 {
		if len(is.s) == 0 {
			return nil
		}
		return is.s[len(is.s)-1]
	}
	if is.aLen == 0 {
		return nil
	}
	return is.a[is.aLen-1]
}

func (is *iterStack[V, A]) len() int {
	if is.aLen == -1 {
		return len(is.s)
	}
	return int(is.aLen)
}

func (is *iterStack[V, A]) reset() {
	if is.aLen == -1 {
		is.s = is.s[:0]
	} else {
		is.aLen = 0
	}
}
