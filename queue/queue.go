// Package queue implements a generic first-in-first-out container.
package queue

import (
	"errors"

	"github.com/GaelEmiliano/edd/abstract"
)

// ErrEmpty is returned by Dequeue and Peek on an empty queue.
var ErrEmpty = errors.New("queue: empty")

type node[V any] struct {
	value V
	next  *node[V]
}

// Queue is a FIFO container backed by a singly linked chain, so both ends
// are O(1). The zero value is an empty queue ready to use.
type Queue[V any] struct {
	head, tail *node[V]
	length     int
}

// New returns an empty queue.
func New[V any]() *Queue[V] {
	return &Queue[V]{}
}

// Enqueue places v at the back of the queue. A nil value is rejected with
// abstract.ErrNilValue.
func (q *Queue[V]) Enqueue(v V) error {
	if abstract.IsNil(v) {
		return abstract.ErrNilValue
	}
	n := &node[V]{value: v}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.length++
	return nil
}

// Dequeue removes and returns the value at the front of the queue.
func (q *Queue[V]) Dequeue() (V, error) {
	if q.head == nil {
		var zero V
		return zero, ErrEmpty
	}
	v := q.head.value
	q.head = q.head.next
	if q.head == nil {
		q.tail = nil
	}
	q.length--
	return v, nil
}

// Peek returns the value at the front of the queue without removing it.
func (q *Queue[V]) Peek() (V, error) {
	if q.head == nil {
		var zero V
		return zero, ErrEmpty
	}
	return q.head.value, nil
}

// Len returns the number of values in the queue.
func (q *Queue[V]) Len() int {
	return q.length
}

// IsEmpty reports whether the queue holds no values.
func (q *Queue[V]) IsEmpty() bool {
	return q.head == nil
}

// Clear removes every value from the queue.
func (q *Queue[V]) Clear() {
	q.head, q.tail = nil, nil
	q.length = 0
}
