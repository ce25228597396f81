package queue

import (
	"fmt"
	"sync"
)

// Queue is a thread-safe FIFO queue with a fixed capacity, backed by a ring buffer.
type Queue[T any] struct {
	ringBuffer []T
	read       int
	write      int
	capacity   int
	size       int
	mutex      sync.Mutex
}

// New creates a new queue with the specified capacity. It panics if the capacity is smaller
// than one, since a queue without room can neither hold nor evict an element.
func New[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		panic(fmt.Sprintf("queue: capacity %d out of range", capacity))
	}

	return &Queue[T]{
		ringBuffer: make([]T, capacity),
		capacity:   capacity,
	}
}

// Size returns the size of the queue.
func (queue *Queue[T]) Size() int {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()

	return queue.size
}

// IsEmpty returns true if the queue is empty.
func (queue *Queue[T]) IsEmpty() bool {
	return queue.Size() == 0
}

// Capacity returns the capacity of the queue.
func (queue *Queue[T]) Capacity() int {
	return queue.capacity
}

// Offer adds an element to the queue and returns true.
// If the queue is full, it drops the element and returns false.
func (queue *Queue[T]) Offer(element T) bool {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()

	if queue.size == queue.capacity {
		return false
	}

	queue.ringBuffer[queue.write] = element
	queue.write = (queue.write + 1) % queue.capacity
	queue.size++

	return true
}

// ForceOffer adds an element to the queue, removing the oldest element first if the queue is
// full. It returns the removed element and whether one was removed.
func (queue *Queue[T]) ForceOffer(element T) (removedElement T, wasRemoved bool) {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()

	if queue.size == queue.capacity {
		removedElement, wasRemoved = queue.poll()
	}

	queue.ringBuffer[queue.write] = element
	queue.write = (queue.write + 1) % queue.capacity
	queue.size++

	return removedElement, wasRemoved
}

// Poll returns and removes the oldest element in the queue and true if successful.
// It returns false if the queue is empty.
func (queue *Queue[T]) Poll() (element T, success bool) {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()

	return queue.poll()
}

// Peek returns the oldest element in the queue without removing it and true if successful.
// It returns false if the queue is empty.
func (queue *Queue[T]) Peek() (element T, success bool) {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()

	if success = queue.size != 0; !success {
		return
	}

	return queue.ringBuffer[queue.read], true
}

// ToSlice returns the elements of the queue in FIFO order.
func (queue *Queue[T]) ToSlice() []T {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()

	result := make([]T, queue.size)
	for i := 0; i < queue.size; i++ {
		result[i] = queue.ringBuffer[(queue.read+i)%queue.capacity]
	}

	return result
}

// poll returns and removes the oldest element in the queue without locking the mutex.
func (queue *Queue[T]) poll() (element T, success bool) {
	if success = queue.size != 0; !success {
		return
	}

	element = queue.ringBuffer[queue.read]
	var emptyElement T
	queue.ringBuffer[queue.read] = emptyElement
	queue.read = (queue.read + 1) % queue.capacity
	queue.size--

	return element, true
}
