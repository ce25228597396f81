package priorityqueue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typecomb/comb.go/priorityqueue"
)

type priority int

func (p priority) Compare(other priority) int {
	switch {
	case p < other:
		return -1
	case p > other:
		return 1
	default:
		return 0
	}
}

func TestPriorityQueue(t *testing.T) {
	queue := priorityqueue.New[string, priority]()

	queue.Push("second", 2)
	queue.Push("third", 3)
	queue.Push("first", 1)

	assert.Equal(t, 3, queue.Size())

	peekedElement, exists := queue.Peek()
	require.True(t, exists)
	assert.Equal(t, "first", peekedElement)

	poppedElement, exists := queue.Pop()
	require.True(t, exists)
	assert.Equal(t, "first", poppedElement)

	poppedElement, exists = queue.Pop()
	require.True(t, exists)
	assert.Equal(t, "second", poppedElement)

	poppedElement, exists = queue.Pop()
	require.True(t, exists)
	assert.Equal(t, "third", poppedElement)

	_, exists = queue.Pop()
	assert.False(t, exists)
	assert.True(t, queue.IsEmpty())
}

func TestPriorityQueue_Remove(t *testing.T) {
	queue := priorityqueue.New[string, priority]()

	queue.Push("a", 1)
	removeB := queue.Push("b", 2)
	queue.Push("c", 3)

	removeB()
	// removing again is a no-op
	removeB()

	assert.Equal(t, 2, queue.Size())

	popped := queue.PopAll()
	assert.Equal(t, []string{"a", "c"}, popped)
}

func TestPriorityQueue_PopUntil(t *testing.T) {
	queue := priorityqueue.New[int, priority]()
	for i := 1; i <= 5; i++ {
		queue.Push(i, priority(i))
	}

	popped := queue.PopUntil(3)
	assert.Equal(t, []int{1, 2, 3}, popped)
	assert.Equal(t, 2, queue.Size())

	peeked, exists := queue.Peek()
	require.True(t, exists)
	assert.Equal(t, 4, peeked)
}

func TestPriorityQueue_PopAllEmpty(t *testing.T) {
	queue := priorityqueue.New[int, priority]()

	assert.Empty(t, queue.PopAll())
	_, exists := queue.Peek()
	assert.False(t, exists)
}
