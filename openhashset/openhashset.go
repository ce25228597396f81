package openhashset

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/typecomb/comb.go/hasher"
	"github.com/typecomb/comb.go/openhashmap"
	"github.com/typecomb/comb.go/types"
)

// errElementMissing aborts the HasAll iteration as soon as one element is absent.
var errElementMissing = errors.New("element not found")

// OpenHashSet is a non concurrent-safe set backed by an open-addressing hash table. Hashing and
// equality of the elements are supplied by a hasher.Strategy, so the element type does not have
// to be comparable in the language sense.
type OpenHashSet[T any] struct {
	elements *openhashmap.OpenHashMap[T, types.Empty]

	strategy hasher.Strategy[T]
	opts     []openhashmap.Option
}

// New creates a new OpenHashSet with the given element Strategy and the given elements.
func New[T any](strategy hasher.Strategy[T], elements ...T) *OpenHashSet[T] {
	return NewWithOptions(strategy, nil, elements...)
}

// NewWithOptions creates a new OpenHashSet passing the given options to the backing table.
func NewWithOptions[T any](strategy hasher.Strategy[T], opts []openhashmap.Option, elements ...T) *OpenHashSet[T] {
	s := &OpenHashSet[T]{
		elements: openhashmap.New[T, types.Empty](strategy, opts...),
		strategy: strategy,
		opts:     opts,
	}

	for _, element := range elements {
		s.Add(element)
	}

	return s
}

// Add adds a new element to the set and returns true if the element was not present before.
func (s *OpenHashSet[T]) Add(element T) bool {
	_, existed := s.elements.Set(element, types.Void)

	return !existed
}

// AddAll adds all given elements to the set and returns true if any element has been added.
func (s *OpenHashSet[T]) AddAll(elements ...T) (added bool) {
	for _, element := range elements {
		added = s.Add(element) || added
	}

	return added
}

// Has returns true if the set contains the given element.
func (s *OpenHashSet[T]) Has(element T) bool {
	return s.elements.Has(element)
}

// HasAll returns true if the set contains all elements of the given set.
func (s *OpenHashSet[T]) HasAll(other *OpenHashSet[T]) bool {
	return other.ForEach(func(element T) error {
		if !s.Has(element) {
			return errElementMissing
		}

		return nil
	}) == nil
}

// Delete removes the given element from the set and returns true if it was present.
func (s *OpenHashSet[T]) Delete(element T) bool {
	return s.elements.Delete(element)
}

// DeleteAll removes the given elements from the set and returns true if any element was removed.
func (s *OpenHashSet[T]) DeleteAll(elements ...T) (deleted bool) {
	for _, element := range elements {
		deleted = s.Delete(element) || deleted
	}

	return deleted
}

// ForEach iterates through all elements of the set (returning an error aborts the iteration and
// is passed through to the caller).
func (s *OpenHashSet[T]) ForEach(callback func(element T) error) (err error) {
	s.elements.ForEachKey(func(element T) bool {
		err = callback(element)

		return err == nil
	})

	return err
}

// Range iterates through all elements of the set.
func (s *OpenHashSet[T]) Range(callback func(element T)) {
	s.elements.ForEachKey(func(element T) bool {
		callback(element)

		return true
	})
}

// Filter returns a new set with all elements that satisfy the given predicate.
func (s *OpenHashSet[T]) Filter(predicate func(element T) bool) *OpenHashSet[T] {
	filtered := s.empty()
	s.Range(func(element T) {
		if predicate(element) {
			filtered.Add(element)
		}
	})

	return filtered
}

// Intersect returns the intersection of the set and the given set.
func (s *OpenHashSet[T]) Intersect(other *OpenHashSet[T]) *OpenHashSet[T] {
	return s.Filter(other.Has)
}

// Union returns the union of the set and the given set.
func (s *OpenHashSet[T]) Union(other *OpenHashSet[T]) *OpenHashSet[T] {
	union := s.Clone()
	other.Range(func(element T) {
		union.Add(element)
	})

	return union
}

// Difference returns a new set with all elements of the set that are not in the given set.
func (s *OpenHashSet[T]) Difference(other *OpenHashSet[T]) *OpenHashSet[T] {
	return s.Filter(func(element T) bool {
		return !other.Has(element)
	})
}

// Equals returns true if the set contains the same elements as the given set.
func (s *OpenHashSet[T]) Equals(other *OpenHashSet[T]) bool {
	return s == other || (other != nil && s.Size() == other.Size() && s.HasAll(other))
}

// Is returns true if the given element is the only element in the set.
func (s *OpenHashSet[T]) Is(element T) bool {
	return s.Size() == 1 && s.Has(element)
}

// Clone returns a shallow copy of the set.
func (s *OpenHashSet[T]) Clone() *OpenHashSet[T] {
	cloned := s.empty()
	s.Range(func(element T) {
		cloned.Add(element)
	})

	return cloned
}

// Size returns the number of elements in the set.
func (s *OpenHashSet[T]) Size() int {
	return s.elements.Size()
}

// IsEmpty returns true if the set is empty.
func (s *OpenHashSet[T]) IsEmpty() bool {
	return s.elements.IsEmpty()
}

// Clear removes all elements from the set.
func (s *OpenHashSet[T]) Clear() {
	s.elements.Clear()
}

// ToSlice returns a slice representation of the set.
func (s *OpenHashSet[T]) ToSlice() []T {
	return s.elements.Keys()
}

func (s *OpenHashSet[T]) String() string {
	elementStrings := make([]string, 0, s.Size())
	s.Range(func(element T) {
		elementStrings = append(elementStrings, fmt.Sprintf("%+v", element))
	})

	return fmt.Sprintf("OpenHashSet(%s)", strings.Join(elementStrings, ", "))
}

// empty returns a new set with the same strategy and options as the receiver.
func (s *OpenHashSet[T]) empty() *OpenHashSet[T] {
	return NewWithOptions(s.strategy, s.opts)
}
