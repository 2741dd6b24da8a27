// Package heap implements an array-backed min-heap whose entries carry
// their own position, so a caller holding an entry can remove it or
// restore heap order after changing its value in place.
package heap

import "errors"

// ErrEmpty is returned by Pop and Peek on an empty heap.
var ErrEmpty = errors.New("heap: empty")

// Item is a heap entry. It stays valid until removed; its position in
// the backing array is maintained by the heap.
type Item[V any] struct {
	value V
	index int
}

// Value returns the value the item carries.
func (it *Item[V]) Value() V { return it.value }

// Heap is a min-heap ordered by the comparison function given to New.
type Heap[V any] struct {
	items []*Item[V]
	cmp   func(V, V) int
}

// New returns an empty min-heap ordered by cmp.
func New[V any](cmp func(V, V) int) *Heap[V] {
	return &Heap[V]{cmp: cmp}
}

// Len returns the number of values on the heap.
func (h *Heap[V]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap holds no values.
func (h *Heap[V]) IsEmpty() bool { return len(h.items) == 0 }

// Push adds v to the heap and returns its item handle.
func (h *Heap[V]) Push(v V) *Item[V] {
	it := &Item[V]{value: v, index: len(h.items)}
	h.items = append(h.items, it)
	h.siftUp(it.index)
	return it
}

// Peek returns the minimum value without removing it.
func (h *Heap[V]) Peek() (V, error) {
	if len(h.items) == 0 {
		var zero V
		return zero, ErrEmpty
	}
	return h.items[0].value, nil
}

// Pop removes and returns the minimum value.
func (h *Heap[V]) Pop() (V, error) {
	if len(h.items) == 0 {
		var zero V
		return zero, ErrEmpty
	}
	min := h.items[0]
	h.removeAt(0)
	return min.value, nil
}

// Remove takes an item off the heap. Removing an item twice is a no-op.
func (h *Heap[V]) Remove(it *Item[V]) {
	if it.index < 0 || it.index >= len(h.items) || h.items[it.index] != it {
		return
	}
	h.removeAt(it.index)
}

// Fix restores heap order around an item whose value was changed in
// place, sifting it in whichever direction the change requires.
func (h *Heap[V]) Fix(it *Item[V]) {
	if it.index < 0 || it.index >= len(h.items) || h.items[it.index] != it {
		return
	}
	i := it.index
	h.siftUp(i)
	if it.index == i {
		h.siftDown(i)
	}
}

// Update changes an item's value and restores heap order.
func (h *Heap[V]) Update(it *Item[V], v V) {
	it.value = v
	h.Fix(it)
}

// Clear removes every value from the heap.
func (h *Heap[V]) Clear() {
	for _, it := range h.items {
		it.index = -1
	}
	h.items = nil
}

func (h *Heap[V]) removeAt(i int) {
	last := len(h.items) - 1
	removed := h.items[i]
	h.swap(i, last)
	h.items[last] = nil
	h.items = h.items[:last]
	removed.index = -1
	if i < last {
		h.siftUp(i)
		h.siftDown(i)
	}
}

func (h *Heap[V]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.cmp(h.items[i].value, h.items[parent].value) >= 0 {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *Heap[V]) siftDown(i int) {
	for {
		min := i
		if l := 2*i + 1; l < len(h.items) && h.cmp(h.items[l].value, h.items[min].value) < 0 {
			min = l
		}
		if r := 2*i + 2; r < len(h.items) && h.cmp(h.items[r].value, h.items[min].value) < 0 {
			min = r
		}
		if min == i {
			return
		}
		h.swap(i, min)
		i = min
	}
}

func (h *Heap[V]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].index = i
	h.items[j].index = j
}
