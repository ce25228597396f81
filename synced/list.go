package synced

import (
	"github.com/typecomb/comb.go/arraylist"
	"github.com/typecomb/comb.go/syncutils"
)

// List is a thread-safe wrapper around an ArrayList.
type List[T any] struct {
	delegate *arraylist.ArrayList[T]
	mutex    syncutils.RWMutex
}

// NewList creates a new synchronized List.
func NewList[T any](initialCapacity ...int) *List[T] {
	return &List[T]{
		delegate: arraylist.New[T](initialCapacity...),
	}
}

// Add appends the given element to the end of the list.
func (l *List[T]) Add(element T) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.delegate.Add(element)
}

// AddAll appends all given elements to the end of the list.
func (l *List[T]) AddAll(elements ...T) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.delegate.AddAll(elements...)
}

// Get returns the element at the given index. It panics if the index is out of range.
func (l *List[T]) Get(index int) T {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.delegate.Get(index)
}

// At returns the element at the given index and whether the index is in range.
func (l *List[T]) At(index int) (T, bool) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.delegate.At(index)
}

// Set replaces the element at the given index and returns the previous element. It panics if the
// index is out of range.
func (l *List[T]) Set(index int, element T) T {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.delegate.Set(index, element)
}

// Insert inserts the given element at the given index, shifting the following elements to the
// right.
func (l *List[T]) Insert(index int, element T) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.delegate.Insert(index, element)
}

// RemoveAt removes and returns the element at the given index.
func (l *List[T]) RemoveAt(index int) T {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.delegate.RemoveAt(index)
}

// RemoveIf removes all elements that satisfy the given predicate and returns the number of
// removed elements.
func (l *List[T]) RemoveIf(predicate func(element T) bool) int {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.delegate.RemoveIf(predicate)
}

// ForEach iterates through a snapshot of the list in index order.
// Returning false from the consumer aborts the iteration.
func (l *List[T]) ForEach(callback func(element T) bool) {
	for _, element := range l.ToSlice() {
		if !callback(element) {
			return
		}
	}
}

// Sort sorts the list in place using the given comparator.
func (l *List[T]) Sort(comparator func(a, b T) int) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.delegate.Sort(comparator)
}

// ToSlice returns a snapshot of the list contents.
func (l *List[T]) ToSlice() []T {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.delegate.ToSlice()
}

// Size returns the number of elements in the list.
func (l *List[T]) Size() int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.delegate.Size()
}

// IsEmpty returns true if the list is empty.
func (l *List[T]) IsEmpty() bool {
	return l.Size() == 0
}

// Clear removes all elements from the list.
func (l *List[T]) Clear() {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.delegate.Clear()
}
