package arrayset

import (
	"fmt"
	"strings"
)

// ArraySet is a non concurrent-safe set backed by a plain array that is scanned linearly. Every
// operation is O(n), which beats hashing for the small cardinalities this set is meant for (a
// handful of elements), and iteration preserves insertion order.
type ArraySet[T any] struct {
	elements []T
	equals   func(a, b T) bool
}

// New creates a new ArraySet of comparable elements.
func New[T comparable](elements ...T) *ArraySet[T] {
	return NewWithEquality(func(a, b T) bool { return a == b }, elements...)
}

// NewWithEquality creates a new ArraySet using the given equality relation, admitting element
// types that are not comparable in the language sense.
func NewWithEquality[T any](equals func(a, b T) bool, elements ...T) *ArraySet[T] {
	s := &ArraySet[T]{
		equals: equals,
	}

	for _, element := range elements {
		s.Add(element)
	}

	return s
}

// Add adds a new element to the set and returns true if the element was not present before.
func (s *ArraySet[T]) Add(element T) bool {
	if s.indexOf(element) != -1 {
		return false
	}

	s.elements = append(s.elements, element)

	return true
}

// Has returns true if the set contains the given element.
func (s *ArraySet[T]) Has(element T) bool {
	return s.indexOf(element) != -1
}

// Delete removes the given element from the set and returns true if it was present. The elements
// behind it keep their relative order.
func (s *ArraySet[T]) Delete(element T) bool {
	index := s.indexOf(element)
	if index == -1 {
		return false
	}

	var zero T
	copy(s.elements[index:], s.elements[index+1:])
	s.elements[len(s.elements)-1] = zero
	s.elements = s.elements[:len(s.elements)-1]

	return true
}

// ForEach iterates through the set in insertion order and calls the consumer for every element.
// Returning false from the consumer aborts the iteration.
func (s *ArraySet[T]) ForEach(callback func(element T) bool) {
	for _, element := range s.elements {
		if !callback(element) {
			return
		}
	}
}

// Equals returns true if the set contains the same elements as the given set, regardless of
// order.
func (s *ArraySet[T]) Equals(other *ArraySet[T]) bool {
	if s == other {
		return true
	}

	if other == nil || len(s.elements) != len(other.elements) {
		return false
	}

	for _, element := range s.elements {
		if !other.Has(element) {
			return false
		}
	}

	return true
}

// Clone returns a shallow copy of the set.
func (s *ArraySet[T]) Clone() *ArraySet[T] {
	return NewWithEquality(s.equals, s.elements...)
}

// ToSlice returns a copy of the set contents in insertion order.
func (s *ArraySet[T]) ToSlice() []T {
	slice := make([]T, len(s.elements))
	copy(slice, s.elements)

	return slice
}

// Size returns the number of elements in the set.
func (s *ArraySet[T]) Size() int {
	return len(s.elements)
}

// IsEmpty returns true if the set is empty.
func (s *ArraySet[T]) IsEmpty() bool {
	return len(s.elements) == 0
}

// Clear removes all elements from the set.
func (s *ArraySet[T]) Clear() {
	s.elements = nil
}

func (s *ArraySet[T]) String() string {
	elementStrings := make([]string, 0, len(s.elements))
	for _, element := range s.elements {
		elementStrings = append(elementStrings, fmt.Sprintf("%+v", element))
	}

	return fmt.Sprintf("ArraySet(%s)", strings.Join(elementStrings, ", "))
}

func (s *ArraySet[T]) indexOf(element T) int {
	for i, existing := range s.elements {
		if s.equals(existing, element) {
			return i
		}
	}

	return -1
}
