package sortedset

import (
	"fmt"
	"strings"

	"github.com/google/btree"

	"github.com/typecomb/comb.go/constraints"
	"github.com/typecomb/comb.go/lo"
	"github.com/typecomb/comb.go/walker"
)

// defaultDegree is the branching factor of the backing B-tree.
const defaultDegree = 32

// SortedSet is a non concurrent-safe set that keeps its elements ordered, backed by a B-tree.
// Compared to the red-black tree of SortedMap, the B-tree keeps elements in small contiguous
// runs, which makes ordered range scans over large sets considerably cheaper.
type SortedSet[T constraints.Ordered] struct {
	tree *btree.BTreeG[T]
}

// New creates a new SortedSet with the given elements.
func New[T constraints.Ordered](elements ...T) *SortedSet[T] {
	s := &SortedSet[T]{
		tree: btree.NewG(defaultDegree, func(a, b T) bool {
			return lo.Comparator(a, b) < 0
		}),
	}

	for _, element := range elements {
		s.Add(element)
	}

	return s
}

// Add adds a new element to the set and returns true if the element was not present before.
func (s *SortedSet[T]) Add(element T) bool {
	_, present := s.tree.ReplaceOrInsert(element)

	return !present
}

// AddAll adds all given elements to the set and returns true if any element has been added.
func (s *SortedSet[T]) AddAll(elements ...T) (added bool) {
	for _, element := range elements {
		added = s.Add(element) || added
	}

	return added
}

// Has returns true if the set contains the given element.
func (s *SortedSet[T]) Has(element T) bool {
	return s.tree.Has(element)
}

// Delete removes the given element from the set and returns true if it was present.
func (s *SortedSet[T]) Delete(element T) bool {
	_, present := s.tree.Delete(element)

	return present
}

// Min returns the smallest element of the set.
func (s *SortedSet[T]) Min() (element T, exists bool) {
	return s.tree.Min()
}

// Max returns the largest element of the set.
func (s *SortedSet[T]) Max() (element T, exists bool) {
	return s.tree.Max()
}

// ForEach iterates through the set in ascending order and calls the consumer for every element.
// Returning false from the consumer aborts the iteration.
func (s *SortedSet[T]) ForEach(callback func(element T) bool) {
	s.tree.Ascend(btree.ItemIteratorG[T](callback))
}

// ForEachDescending iterates through the set in descending order and calls the consumer for
// every element. Returning false from the consumer aborts the iteration.
func (s *SortedSet[T]) ForEachDescending(callback func(element T) bool) {
	s.tree.Descend(btree.ItemIteratorG[T](callback))
}

// ForEachIn iterates in ascending order through the elements in [start, end) and calls the
// consumer for every element. Returning false from the consumer aborts the iteration.
func (s *SortedSet[T]) ForEachIn(start, end T, callback func(element T) bool) {
	s.tree.AscendRange(start, end, btree.ItemIteratorG[T](callback))
}

// ForEachFrom iterates in ascending order through the elements >= start and calls the consumer
// for every element. Returning false from the consumer aborts the iteration.
func (s *SortedSet[T]) ForEachFrom(start T, callback func(element T) bool) {
	s.tree.AscendGreaterOrEqual(start, btree.ItemIteratorG[T](callback))
}

// ForEachUntil iterates in ascending order through the elements < end and calls the consumer for
// every element. Returning false from the consumer aborts the iteration.
func (s *SortedSet[T]) ForEachUntil(end T, callback func(element T) bool) {
	s.tree.AscendLessThan(end, btree.ItemIteratorG[T](callback))
}

// Iterator returns a walker over a snapshot of the set in ascending order.
func (s *SortedSet[T]) Iterator() *walker.Walker[T] {
	return walker.New[T]().PushAll(s.ToSlice()...)
}

// ToSlice returns the elements of the set in ascending order.
func (s *SortedSet[T]) ToSlice() []T {
	slice := make([]T, 0, s.Size())
	s.ForEach(func(element T) bool {
		slice = append(slice, element)

		return true
	})

	return slice
}

// Clone returns a copy of the set. The backing tree nodes are shared copy-on-write, so cloning
// is cheap.
func (s *SortedSet[T]) Clone() *SortedSet[T] {
	return &SortedSet[T]{
		tree: s.tree.Clone(),
	}
}

// Size returns the number of elements in the set.
func (s *SortedSet[T]) Size() int {
	return s.tree.Len()
}

// IsEmpty returns true if the set is empty.
func (s *SortedSet[T]) IsEmpty() bool {
	return s.tree.Len() == 0
}

// Clear removes all elements from the set.
func (s *SortedSet[T]) Clear() {
	s.tree.Clear(false)
}

func (s *SortedSet[T]) String() string {
	elementStrings := make([]string, 0, s.Size())
	s.ForEach(func(element T) bool {
		elementStrings = append(elementStrings, fmt.Sprintf("%+v", element))

		return true
	})

	return fmt.Sprintf("SortedSet(%s)", strings.Join(elementStrings, ", "))
}
