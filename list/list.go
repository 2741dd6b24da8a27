// Package list implements a generic doubly linked list with positional
// access, a bidirectional iterator and a merge sort over lists.
package list

import (
	"errors"

	"github.com/GaelEmiliano/edd/abstract"
)

// ErrEmpty is returned when a value is requested from an empty list or an
// index is out of range.
var ErrEmpty = errors.New("list: no such element")

type node[V any] struct {
	value      V
	prev, next *node[V]
}

// List is a doubly linked list. The zero value is an empty list ready to
// use. The element type must be comparable so that Delete, IndexOf and
// Contains can match by equality; ordering, where needed, is supplied per
// call.
type List[V comparable] struct {
	head, tail *node[V]
	length     int
}

// New returns an empty list.
func New[V comparable]() *List[V] {
	return &List[V]{}
}

// Of returns a list holding the given values in order. Nil values are
// skipped the same way Append rejects them.
func Of[V comparable](values ...V) *List[V] {
	l := New[V]()
	for _, v := range values {
		_ = l.Append(v)
	}
	return l
}

// Len returns the number of values in the list.
func (l *List[V]) Len() int {
	return l.length
}

// IsEmpty reports whether the list holds no values.
func (l *List[V]) IsEmpty() bool {
	return l.head == nil
}

// Append adds v at the end of the list. A nil value is rejected with
// abstract.ErrNilValue.
func (l *List[V]) Append(v V) error {
	if abstract.IsNil(v) {
		return abstract.ErrNilValue
	}
	n := &node[V]{value: v}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.length++
	return nil
}

// Prepend adds v at the front of the list. A nil value is rejected with
// abstract.ErrNilValue.
func (l *List[V]) Prepend(v V) error {
	if abstract.IsNil(v) {
		return abstract.ErrNilValue
	}
	n := &node[V]{value: v}
	if l.head == nil {
		l.head, l.tail = n, n
	} else {
		n.next = l.head
		l.head.prev = n
		l.head = n
	}
	l.length++
	return nil
}

// InsertAt adds v so that it ends up at index i. An index at or below
// zero prepends, an index at or beyond the length appends.
func (l *List[V]) InsertAt(i int, v V) error {
	switch {
	case i <= 0:
		return l.Prepend(v)
	case i >= l.length:
		return l.Append(v)
	}
	if abstract.IsNil(v) {
		return abstract.ErrNilValue
	}
	at := l.nodeAt(i)
	n := &node[V]{value: v, prev: at.prev, next: at}
	at.prev.next = n
	at.prev = n
	l.length++
	return nil
}

// Delete removes the first occurrence of v, reporting whether it was
// present.
func (l *List[V]) Delete(v V) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			l.unlink(n)
			return true
		}
	}
	return false
}

// PopFirst removes and returns the value at the front of the list.
func (l *List[V]) PopFirst() (V, error) {
	if l.head == nil {
		var zero V
		return zero, ErrEmpty
	}
	v := l.head.value
	l.unlink(l.head)
	return v, nil
}

// PopLast removes and returns the value at the back of the list.
func (l *List[V]) PopLast() (V, error) {
	if l.tail == nil {
		var zero V
		return zero, ErrEmpty
	}
	v := l.tail.value
	l.unlink(l.tail)
	return v, nil
}

// First returns the value at the front of the list without removing it.
func (l *List[V]) First() (V, error) {
	if l.head == nil {
		var zero V
		return zero, ErrEmpty
	}
	return l.head.value, nil
}

// Last returns the value at the back of the list without removing it.
func (l *List[V]) Last() (V, error) {
	if l.tail == nil {
		var zero V
		return zero, ErrEmpty
	}
	return l.tail.value, nil
}

// Get returns the value at index i.
func (l *List[V]) Get(i int) (V, error) {
	if i < 0 || i >= l.length {
		var zero V
		return zero, ErrEmpty
	}
	return l.nodeAt(i).value, nil
}

// IndexOf returns the index of the first occurrence of v, or -1 when
// absent.
func (l *List[V]) IndexOf(v V) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return i
		}
		i++
	}
	return -1
}

// Contains reports whether the list holds v.
func (l *List[V]) Contains(v V) bool {
	return l.IndexOf(v) >= 0
}

// Reverse returns a new list holding the same values in opposite order.
func (l *List[V]) Reverse() *List[V] {
	out := New[V]()
	for n := l.tail; n != nil; n = n.prev {
		_ = out.Append(n.value)
	}
	return out
}

// Copy returns a new list holding the same values in the same order.
func (l *List[V]) Copy() *List[V] {
	out := New[V]()
	for n := l.head; n != nil; n = n.next {
		_ = out.Append(n.value)
	}
	return out
}

// Slice returns the list's values as a fresh slice.
func (l *List[V]) Slice() []V {
	out := make([]V, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// Clear removes every value from the list.
func (l *List[V]) Clear() {
	l.head, l.tail = nil, nil
	l.length = 0
}

func (l *List[V]) unlink(n *node[V]) {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
	l.length--
}

func (l *List[V]) nodeAt(i int) *node[V] {
	n := l.head
	for ; i > 0; i-- {
		n = n.next
	}
	return n
}

// Iterator walks a list in either direction. It must not be used across
// mutations of the list.
type Iterator[V comparable] struct {
	l   *List[V]
	cur *node[V]
}

// MakeIter returns an iterator positioned before the front of the list.
func (l *List[V]) MakeIter() Iterator[V] {
	return Iterator[V]{l: l}
}

// First positions the iterator at the front of the list.
func (it *Iterator[V]) First() { it.cur = it.l.head }

// Last positions the iterator at the back of the list.
func (it *Iterator[V]) Last() { it.cur = it.l.tail }

// Next advances the iterator toward the back.
func (it *Iterator[V]) Next() { it.cur = it.cur.next }

// Prev moves the iterator toward the front.
func (it *Iterator[V]) Prev() { it.cur = it.cur.prev }

// Valid reports whether the iterator is positioned at a value.
func (it *Iterator[V]) Valid() bool { return it.cur != nil }

// Cur returns the value at the current position.
func (it *Iterator[V]) Cur() V { return it.cur.value }
