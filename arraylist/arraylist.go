package arraylist

import (
	"fmt"
	"sort"
	"strings"

	"github.com/typecomb/comb.go/lo"
)

// DefaultCapacity is the backing array capacity used when no initial capacity is given.
const DefaultCapacity = 10

// ArrayList is a non concurrent-safe dynamic list backed by a single array. The backing array
// grows by a factor of 1.5 whenever it runs out of room, which keeps the amortized cost of Add
// constant without doubling the footprint of large lists.
type ArrayList[T any] struct {
	elements []T
	size     int
}

// New creates a new ArrayList with an optional initial capacity.
func New[T any](initialCapacity ...int) *ArrayList[T] {
	capacity := DefaultCapacity
	if len(initialCapacity) > 0 && initialCapacity[0] > 0 {
		capacity = initialCapacity[0]
	}

	return &ArrayList[T]{
		elements: make([]T, capacity),
	}
}

// FromSlice creates a new ArrayList holding a copy of the given slice.
func FromSlice[T any](elements []T) *ArrayList[T] {
	l := New[T](len(elements))
	copy(l.elements, elements)
	l.size = len(elements)

	return l
}

// Add appends the given element to the end of the list.
func (l *ArrayList[T]) Add(element T) {
	l.ensureCapacity(l.size + 1)
	l.elements[l.size] = element
	l.size++
}

// AddAll appends all given elements to the end of the list.
func (l *ArrayList[T]) AddAll(elements ...T) {
	l.ensureCapacity(l.size + len(elements))
	copy(l.elements[l.size:], elements)
	l.size += len(elements)
}

// Get returns the element at the given index. It panics if the index is out of range.
func (l *ArrayList[T]) Get(index int) T {
	l.checkIndex(index)

	return l.elements[index]
}

// At returns the element at the given index and whether the index is in range.
func (l *ArrayList[T]) At(index int) (element T, exists bool) {
	if index < 0 || index >= l.size {
		return element, false
	}

	return l.elements[index], true
}

// Set replaces the element at the given index and returns the previous element. It panics if the
// index is out of range.
func (l *ArrayList[T]) Set(index int, element T) (previous T) {
	l.checkIndex(index)

	previous = l.elements[index]
	l.elements[index] = element

	return previous
}

// Insert inserts the given element at the given index, shifting the following elements to the
// right. Inserting at index Size appends. It panics if the index is out of range.
func (l *ArrayList[T]) Insert(index int, element T) {
	if index == l.size {
		l.Add(element)

		return
	}

	l.checkIndex(index)
	l.ensureCapacity(l.size + 1)
	copy(l.elements[index+1:l.size+1], l.elements[index:l.size])
	l.elements[index] = element
	l.size++
}

// RemoveAt removes and returns the element at the given index, shifting the following elements to
// the left. It panics if the index is out of range.
func (l *ArrayList[T]) RemoveAt(index int) (removed T) {
	l.checkIndex(index)

	removed = l.elements[index]
	copy(l.elements[index:l.size-1], l.elements[index+1:l.size])
	l.size--

	var zero T
	l.elements[l.size] = zero

	return removed
}

// RemoveIf removes all elements that satisfy the given predicate and returns the number of
// removed elements.
func (l *ArrayList[T]) RemoveIf(predicate func(element T) bool) (removed int) {
	var zero T

	kept := 0
	for i := 0; i < l.size; i++ {
		if predicate(l.elements[i]) {
			removed++

			continue
		}

		l.elements[kept] = l.elements[i]
		kept++
	}

	for i := kept; i < l.size; i++ {
		l.elements[i] = zero
	}
	l.size = kept

	return removed
}

// IndexWhere returns the index of the first element that satisfies the given predicate, or -1.
func (l *ArrayList[T]) IndexWhere(predicate func(element T) bool) int {
	for i := 0; i < l.size; i++ {
		if predicate(l.elements[i]) {
			return i
		}
	}

	return -1
}

// Find returns the first element that satisfies the given predicate and whether one exists.
func (l *ArrayList[T]) Find(predicate func(element T) bool) (element T, exists bool) {
	if index := l.IndexWhere(predicate); index != -1 {
		return l.elements[index], true
	}

	return element, false
}

// ForEach iterates through the list in index order and calls the consumer for every element.
// Returning false from the consumer aborts the iteration.
func (l *ArrayList[T]) ForEach(callback func(element T) bool) {
	for i := 0; i < l.size; i++ {
		if !callback(l.elements[i]) {
			return
		}
	}
}

// Sort sorts the list in place using the given comparator.
func (l *ArrayList[T]) Sort(comparator func(a, b T) int) {
	sort.SliceStable(l.elements[:l.size], func(i, j int) bool {
		return comparator(l.elements[i], l.elements[j]) < 0
	})
}

// Split partitions the list into at most count contiguous chunks of near-equal size. The chunks
// alias the backing array and support parallel read-only traversal of the list.
func (l *ArrayList[T]) Split(count int) [][]T {
	return lo.Partition(l.elements[:l.size], count)
}

// Equals returns true if both lists contain the same elements in the same order under the given
// equality relation.
func (l *ArrayList[T]) Equals(other *ArrayList[T], equals func(a, b T) bool) bool {
	if l == other {
		return true
	}

	if other == nil || l.size != other.size {
		return false
	}

	for i := 0; i < l.size; i++ {
		if !equals(l.elements[i], other.elements[i]) {
			return false
		}
	}

	return true
}

// Clone returns a shallow copy of the list.
func (l *ArrayList[T]) Clone() *ArrayList[T] {
	return FromSlice(l.elements[:l.size])
}

// ToSlice returns a copy of the list contents.
func (l *ArrayList[T]) ToSlice() []T {
	slice := make([]T, l.size)
	copy(slice, l.elements)

	return slice
}

// Size returns the number of elements in the list.
func (l *ArrayList[T]) Size() int {
	return l.size
}

// IsEmpty returns true if the list is empty.
func (l *ArrayList[T]) IsEmpty() bool {
	return l.size == 0
}

// Capacity returns the current capacity of the backing array.
func (l *ArrayList[T]) Capacity() int {
	return len(l.elements)
}

// Clear removes all elements from the list, keeping the backing array.
func (l *ArrayList[T]) Clear() {
	var zero T
	for i := 0; i < l.size; i++ {
		l.elements[i] = zero
	}
	l.size = 0
}

// Trim shrinks the backing array to the current size.
func (l *ArrayList[T]) Trim() {
	if l.size == len(l.elements) {
		return
	}

	trimmed := make([]T, l.size)
	copy(trimmed, l.elements)
	l.elements = trimmed
}

func (l *ArrayList[T]) String() string {
	elementStrings := make([]string, 0, l.size)
	l.ForEach(func(element T) bool {
		elementStrings = append(elementStrings, fmt.Sprintf("%+v", element))

		return true
	})

	return fmt.Sprintf("ArrayList(%s)", strings.Join(elementStrings, ", "))
}

// ensureCapacity grows the backing array by a factor of 1.5 until it holds at least the given
// number of elements.
func (l *ArrayList[T]) ensureCapacity(capacity int) {
	if capacity <= len(l.elements) {
		return
	}

	newCapacity := len(l.elements)
	if newCapacity == 0 {
		newCapacity = DefaultCapacity
	}
	for newCapacity < capacity {
		newCapacity += max(newCapacity>>1, 1)
	}

	grown := make([]T, newCapacity)
	copy(grown, l.elements[:l.size])
	l.elements = grown
}

func (l *ArrayList[T]) checkIndex(index int) {
	if index < 0 || index >= l.size {
		panic(fmt.Sprintf("arraylist: index %d out of range [0, %d)", index, l.size))
	}
}
