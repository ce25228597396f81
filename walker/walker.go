package walker

import (
	"container/list"

	"github.com/typecomb/comb.go/types"
)

// Walker implements a generic data structure that simplifies walks over collections or data
// structures, deduplicating elements that were already pushed.
type Walker[T comparable] struct {
	stack           *list.List
	pushedElements  map[T]types.Empty
	walkStopped     bool
	revisitElements bool
}

// New is the constructor of the Walker. It accepts an optional boolean flag that controls whether
// the Walker will visit the same element multiple times.
func New[T comparable](revisitElements ...bool) *Walker[T] {
	return &Walker[T]{
		stack:           list.New(),
		pushedElements:  make(map[T]types.Empty),
		revisitElements: len(revisitElements) > 0 && revisitElements[0],
	}
}

// HasNext returns true if the Walker has another element that shall be visited.
func (w *Walker[T]) HasNext() bool {
	return w.stack.Len() > 0 && !w.walkStopped
}

// Pushed returns true if the passed element was pushed to the Walker.
func (w *Walker[T]) Pushed(element T) bool {
	_, pushed := w.pushedElements[element]

	return pushed
}

// Next returns the next element of the walk.
func (w *Walker[T]) Next() (nextElement T) {
	currentEntry := w.stack.Front()
	w.stack.Remove(currentEntry)

	//nolint:forcetypeassert // only elements of type T are pushed
	return currentEntry.Value.(T)
}

// Push adds a new element to the walk, which can consequently be retrieved by calling the Next
// method.
func (w *Walker[T]) Push(nextElement T) (walker *Walker[T]) {
	if !w.markPushed(nextElement) && !w.revisitElements {
		return w
	}

	w.stack.PushBack(nextElement)

	return w
}

// PushAll adds new elements to the walk, which can consequently be retrieved by calling the Next
// method.
func (w *Walker[T]) PushAll(nextElements ...T) (walker *Walker[T]) {
	for _, nextElement := range nextElements {
		w.Push(nextElement)
	}

	return w
}

// PushFront adds new elements to the front of the queue, which can consequently be retrieved by
// calling the Next method.
func (w *Walker[T]) PushFront(nextElements ...T) (walker *Walker[T]) {
	for _, nextElement := range nextElements {
		if !w.markPushed(nextElement) && !w.revisitElements {
			continue
		}

		w.stack.PushFront(nextElement)
	}

	return w
}

// StopWalk aborts the walk and forces HasNext to always return false.
func (w *Walker[T]) StopWalk() {
	w.walkStopped = true
}

// WalkStopped returns true if the walk has been stopped.
func (w *Walker[T]) WalkStopped() bool {
	return w.walkStopped
}

// Reset removes all queued elements and clears the stopped flag.
func (w *Walker[T]) Reset() {
	w.stack.Init()
	w.pushedElements = make(map[T]types.Empty)
	w.walkStopped = false
}

// markPushed marks the given element as pushed and returns true if it was not pushed before.
func (w *Walker[T]) markPushed(element T) (firstPush bool) {
	if _, pushed := w.pushedElements[element]; pushed {
		return false
	}

	w.pushedElements[element] = types.Void

	return true
}
