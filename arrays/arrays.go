// Package arrays provides in-place sorting and binary search over slices,
// in comparator form and in convenience form for naturally ordered types.
package arrays

import (
	"golang.org/x/exp/constraints"

	"github.com/GaelEmiliano/edd/abstract"
)

// QuickSort sorts s in place by cmp.
func QuickSort[V any](s []V, cmp func(V, V) int) {
	quickSort(s, cmp, 0, len(s)-1)
}

// QuickSortOrdered sorts a slice of a naturally ordered type in place.
func QuickSortOrdered[V constraints.Ordered](s []V) {
	QuickSort(s, abstract.Compare[V])
}

func quickSort[V any](s []V, cmp func(V, V) int, lo, hi int) {
	if lo >= hi {
		return
	}
	// Hoare-style partition around the first element.
	i, j := lo+1, hi
	for i < j {
		switch {
		case cmp(s[i], s[lo]) > 0 && cmp(s[j], s[lo]) <= 0:
			s[i], s[j] = s[j], s[i]
			i++
			j--
		case cmp(s[i], s[lo]) <= 0:
			i++
		default:
			j--
		}
	}
	if cmp(s[i], s[lo]) > 0 {
		i--
	}
	s[lo], s[i] = s[i], s[lo]
	quickSort(s, cmp, lo, i-1)
	quickSort(s, cmp, i+1, hi)
}

// SelectionSort sorts s in place by cmp by repeatedly moving the minimum
// of the unsorted tail to its front.
func SelectionSort[V any](s []V, cmp func(V, V) int) {
	for i := range s {
		min := i
		for j := i + 1; j < len(s); j++ {
			if cmp(s[j], s[min]) < 0 {
				min = j
			}
		}
		s[i], s[min] = s[min], s[i]
	}
}

// SelectionSortOrdered sorts a slice of a naturally ordered type in
// place.
func SelectionSortOrdered[V constraints.Ordered](s []V) {
	SelectionSort(s, abstract.Compare[V])
}

// BinarySearch returns the index of some occurrence of v in a slice
// sorted by cmp, or -1 when absent.
func BinarySearch[V any](s []V, v V, cmp func(V, V) int) int {
	return binarySearch(s, v, cmp, 0, len(s)-1)
}

// BinarySearchOrdered searches a sorted slice of a naturally ordered
// type.
func BinarySearchOrdered[V constraints.Ordered](s []V, v V) int {
	return BinarySearch(s, v, abstract.Compare[V])
}

func binarySearch[V any](s []V, v V, cmp func(V, V) int, lo, hi int) int {
	if lo > hi {
		return -1
	}
	mid := lo + (hi-lo)/2
	switch c := cmp(v, s[mid]); {
	case c == 0:
		return mid
	case c < 0:
		return binarySearch(s, v, cmp, lo, mid-1)
	default:
		return binarySearch(s, v, cmp, mid+1, hi)
	}
}
