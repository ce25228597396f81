package synced

import (
	"github.com/typecomb/comb.go/hasher"
	"github.com/typecomb/comb.go/openhashset"
	"github.com/typecomb/comb.go/syncutils"
)

// Set is a thread-safe wrapper around an OpenHashSet.
type Set[T any] struct {
	delegate *openhashset.OpenHashSet[T]
	mutex    syncutils.RWMutex
}

// NewSet creates a new synchronized Set using the given element Strategy.
func NewSet[T any](strategy hasher.Strategy[T], elements ...T) *Set[T] {
	return &Set[T]{
		delegate: openhashset.New(strategy, elements...),
	}
}

// Add adds a new element to the set and returns true if the element was not present before.
func (s *Set[T]) Add(element T) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.delegate.Add(element)
}

// AddAll adds all given elements to the set and returns true if any element has been added.
func (s *Set[T]) AddAll(elements ...T) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.delegate.AddAll(elements...)
}

// Has returns true if the set contains the given element.
func (s *Set[T]) Has(element T) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.delegate.Has(element)
}

// Delete removes the given element from the set and returns true if it was present.
func (s *Set[T]) Delete(element T) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.delegate.Delete(element)
}

// Range iterates through a snapshot of the set.
func (s *Set[T]) Range(callback func(element T)) {
	for _, element := range s.ToSlice() {
		callback(element)
	}
}

// ToSlice returns a snapshot of the set contents.
func (s *Set[T]) ToSlice() []T {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.delegate.ToSlice()
}

// Size returns the number of elements in the set.
func (s *Set[T]) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.delegate.Size()
}

// IsEmpty returns true if the set is empty.
func (s *Set[T]) IsEmpty() bool {
	return s.Size() == 0
}

// Clear removes all elements from the set.
func (s *Set[T]) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.delegate.Clear()
}
