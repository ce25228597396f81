package immutablelist

import (
	"fmt"
	"strings"

	"github.com/typecomb/comb.go/lo"
)

// ImmutableList is a list that can never change after construction. Mutation is prevented
// structurally: the type carries no mutating methods and both construction and ToSlice copy, so
// no caller can alias the backing array.
type ImmutableList[T any] struct {
	elements []T
}

// New creates a new ImmutableList holding a copy of the given elements.
func New[T any](elements ...T) *ImmutableList[T] {
	backing := make([]T, len(elements))
	copy(backing, elements)

	return &ImmutableList[T]{
		elements: backing,
	}
}

// Empty returns an empty ImmutableList.
func Empty[T any]() *ImmutableList[T] {
	return &ImmutableList[T]{}
}

// Get returns the element at the given index. It panics if the index is out of range.
func (l *ImmutableList[T]) Get(index int) T {
	if index < 0 || index >= len(l.elements) {
		panic(fmt.Sprintf("immutablelist: index %d out of range [0, %d)", index, len(l.elements)))
	}

	return l.elements[index]
}

// At returns the element at the given index and whether the index is in range.
func (l *ImmutableList[T]) At(index int) (element T, exists bool) {
	if index < 0 || index >= len(l.elements) {
		return element, false
	}

	return l.elements[index], true
}

// ForEach iterates through the list in index order and calls the consumer for every element.
// Returning false from the consumer aborts the iteration.
func (l *ImmutableList[T]) ForEach(callback func(element T) bool) {
	for _, element := range l.elements {
		if !callback(element) {
			return
		}
	}
}

// IndexWhere returns the index of the first element that satisfies the given predicate, or -1.
func (l *ImmutableList[T]) IndexWhere(predicate func(element T) bool) int {
	for i, element := range l.elements {
		if predicate(element) {
			return i
		}
	}

	return -1
}

// Sub returns a view of the list between the given start (inclusive) and end (exclusive)
// indices. The view shares the backing array, which is safe because neither list can mutate it.
func (l *ImmutableList[T]) Sub(start, end int) *ImmutableList[T] {
	if start < 0 || end > len(l.elements) || start > end {
		panic(fmt.Sprintf("immutablelist: sub range [%d, %d) outside [0, %d)", start, end, len(l.elements)))
	}

	return &ImmutableList[T]{
		elements: l.elements[start:end],
	}
}

// Append returns a new ImmutableList with the given elements appended, leaving the receiver
// untouched.
func (l *ImmutableList[T]) Append(elements ...T) *ImmutableList[T] {
	backing := make([]T, 0, len(l.elements)+len(elements))
	backing = append(backing, l.elements...)
	backing = append(backing, elements...)

	return &ImmutableList[T]{
		elements: backing,
	}
}

// Split partitions the list into at most count contiguous chunks of near-equal size for parallel
// traversal.
func (l *ImmutableList[T]) Split(count int) [][]T {
	return lo.Partition(l.elements, count)
}

// ToSlice returns a copy of the list contents.
func (l *ImmutableList[T]) ToSlice() []T {
	slice := make([]T, len(l.elements))
	copy(slice, l.elements)

	return slice
}

// Size returns the number of elements in the list.
func (l *ImmutableList[T]) Size() int {
	return len(l.elements)
}

// IsEmpty returns true if the list is empty.
func (l *ImmutableList[T]) IsEmpty() bool {
	return len(l.elements) == 0
}

func (l *ImmutableList[T]) String() string {
	elementStrings := make([]string, 0, len(l.elements))
	for _, element := range l.elements {
		elementStrings = append(elementStrings, fmt.Sprintf("%+v", element))
	}

	return fmt.Sprintf("ImmutableList(%s)", strings.Join(elementStrings, ", "))
}
