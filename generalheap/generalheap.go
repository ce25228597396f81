package generalheap

import (
	"github.com/typecomb/comb.go/constraints"
)

// Heap is a binary min-heap over elements keyed by a Comparable priority. It implements
// heap.Interface and is meant to be driven through the container/heap package.
type Heap[Key constraints.Comparable[Key], Value any] []*HeapElement[Key, Value]

// Len is the number of elements in the collection.
func (h Heap[K, V]) Len() int {
	return len(h)
}

// Less reports whether the element with index i should sort before the element with index j.
func (h Heap[K, V]) Less(i, j int) bool {
	return h[i].Key.Compare(h[j].Key) < 0
}

// Swap swaps the elements with indexes i and j.
func (h Heap[K, V]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index, h[j].index = i, j
}

// Push adds x as the last element to the heap.
func (h *Heap[K, V]) Push(x interface{}) {
	//nolint:forcetypeassert // only elements of type *HeapElement[K, V] are pushed
	element := x.(*HeapElement[K, V])
	*h = append(*h, element)
	element.index = len(*h) - 1
}

// Pop removes and returns the last element of the heap.
func (h *Heap[K, V]) Pop() interface{} {
	n := len(*h)
	element := (*h)[n-1]
	(*h)[n-1] = nil // avoid memory leak
	*h = (*h)[:n-1]
	element.index = -1

	return element
}

// HeapElement is an element of the Heap together with its priority key and its current position.
type HeapElement[K constraints.Comparable[K], V any] struct {
	// Value represents the value of the queued element.
	Value V
	// Key represents the priority of the element.
	Key K

	index int
}

// Index returns the current position of the element inside the heap, or -1 after removal.
func (h HeapElement[K, V]) Index() int {
	return h.index
}
