package stack

import (
	"github.com/typecomb/comb.go/syncutils"
)

// threadSafeStack implements a thread safe Stack by guarding a simpleStack with a mutex.
type threadSafeStack[T any] struct {
	elements *simpleStack[T]
	mutex    syncutils.RWMutex
}

// newThreadSafeStack returns a new thread safe Stack.
func newThreadSafeStack[T any]() *threadSafeStack[T] {
	return &threadSafeStack[T]{
		elements: newSimpleStack[T](),
	}
}

// Push pushes an element onto the top of this Stack.
func (s *threadSafeStack[T]) Push(element T) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.elements.Push(element)
}

// Pop removes and returns the top element of this Stack and whether the element exists.
func (s *threadSafeStack[T]) Pop() (T, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.elements.Pop()
}

// Peek returns the top element of this Stack without removing it.
func (s *threadSafeStack[T]) Peek() (T, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.elements.Peek()
}

// Clear removes all elements from this Stack.
func (s *threadSafeStack[T]) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.elements.Clear()
}

// Size returns the amount of elements in this Stack.
func (s *threadSafeStack[T]) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.elements.Size()
}

// IsEmpty checks if this Stack is empty.
func (s *threadSafeStack[T]) IsEmpty() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.elements.IsEmpty()
}
