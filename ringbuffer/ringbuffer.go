package ringbuffer

import (
	"sync"
)

// RingBuffer is a thread-safe fixed buffer of elements with FIFO semantics.
// When the buffer is full, adding a new element overwrites the oldest element.
type RingBuffer[T any] struct {
	buffer   []T
	pos      int
	capacity int
	size     int
	mutex    sync.RWMutex
}

// NewRingBuffer creates a new RingBuffer with a maximum size of capacity.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	return &RingBuffer[T]{
		buffer:   make([]T, capacity),
		capacity: capacity,
	}
}

// Add adds an element to the buffer, overwriting the oldest element if the buffer is full.
func (r *RingBuffer[T]) Add(element T) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.buffer[r.pos] = element
	r.pos = (r.pos + 1) % r.capacity

	if r.size < r.capacity {
		r.size++
	}
}

// Size returns the number of elements currently in the buffer.
func (r *RingBuffer[T]) Size() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.size
}

// Capacity returns the maximum number of elements the buffer can hold.
func (r *RingBuffer[T]) Capacity() int {
	return r.capacity
}

// Newest returns the most recently added element.
func (r *RingBuffer[T]) Newest() (element T, exists bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if r.size == 0 {
		return element, false
	}

	pos := r.pos - 1
	if pos < 0 {
		pos = r.capacity - 1
	}

	return r.buffer[pos], true
}

// ToSlice returns all the elements currently in the buffer, from newest to oldest.
func (r *RingBuffer[T]) ToSlice() []T {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]T, r.size)
	i := r.pos - 1
	if i < 0 {
		i = r.capacity - 1
	}
	for j := 0; j < r.size; j++ {
		result[j] = r.buffer[i]
		i--
		if i < 0 {
			i = r.capacity - 1
		}
	}

	return result
}

// Clear removes all elements from the buffer.
func (r *RingBuffer[T]) Clear() {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var zero T
	for i := range r.buffer {
		r.buffer[i] = zero
	}
	r.pos = 0
	r.size = 0
}
