// Package stack implements a generic last-in-first-out container.
package stack

import (
	"errors"

	"github.com/GaelEmiliano/edd/abstract"
)

// ErrEmpty is returned by Pop and Peek on an empty stack.
var ErrEmpty = errors.New("stack: empty")

// Stack is a LIFO container. The zero value is an empty stack ready to
// use.
type Stack[V any] struct {
	items []V
}

// New returns an empty stack.
func New[V any]() *Stack[V] {
	return &Stack[V]{}
}

// Push places v on top of the stack. A nil value is rejected with
// abstract.ErrNilValue.
func (s *Stack[V]) Push(v V) error {
	if abstract.IsNil(v) {
		return abstract.ErrNilValue
	}
	s.items = append(s.items, v)
	return nil
}

// Pop removes and returns the value on top of the stack.
func (s *Stack[V]) Pop() (V, error) {
	var zero V
	if len(s.items) == 0 {
		return zero, ErrEmpty
	}
	v := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return v, nil
}

// Peek returns the value on top of the stack without removing it.
func (s *Stack[V]) Peek() (V, error) {
	if len(s.items) == 0 {
		var zero V
		return zero, ErrEmpty
	}
	return s.items[len(s.items)-1], nil
}

// Len returns the number of values on the stack.
func (s *Stack[V]) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the stack holds no values.
func (s *Stack[V]) IsEmpty() bool {
	return len(s.items) == 0
}

// Clear removes every value from the stack.
func (s *Stack[V]) Clear() {
	s.items = nil
}
