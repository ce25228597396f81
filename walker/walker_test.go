package walker_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typecomb/comb.go/walker"
)

func TestWalker(t *testing.T) {
	w := walker.New[int]()

	w.Push(1)
	w.Push(2)
	w.Push(3)

	require.True(t, w.HasNext())
	require.Equal(t, 1, w.Next())
	require.Equal(t, 2, w.Next())
	require.Equal(t, 3, w.Next())
	require.False(t, w.HasNext())

	w.PushAll(4, 5, 6)

	require.True(t, w.HasNext())
	require.Equal(t, 4, w.Next())
	require.Equal(t, 5, w.Next())
	require.Equal(t, 6, w.Next())
	require.False(t, w.HasNext())

	w.PushFront(7, 8)

	require.True(t, w.HasNext())
	require.Equal(t, 8, w.Next())
	require.Equal(t, 7, w.Next())
	require.False(t, w.HasNext())

	require.True(t, w.Pushed(4))
	require.True(t, w.Pushed(8))
	require.False(t, w.Pushed(9))

	w.StopWalk()
	require.True(t, w.WalkStopped())
	require.False(t, w.HasNext())

	w.Reset()
	require.False(t, w.WalkStopped())
	require.False(t, w.HasNext())
	require.False(t, w.Pushed(4))
}

func TestWalker_Deduplication(t *testing.T) {
	w := walker.New[int]()

	w.Push(1)
	w.Push(1)
	w.Push(1)

	require.Equal(t, 1, w.Next())
	require.False(t, w.HasNext())
}

func TestWalker_RevisitElements(t *testing.T) {
	w := walker.New[int](true)

	w.Push(1)
	w.Push(1)

	require.Equal(t, 1, w.Next())
	require.True(t, w.HasNext())
	require.Equal(t, 1, w.Next())
	require.False(t, w.HasNext())
}

func TestWalker_GraphWalk(t *testing.T) {
	edges := map[int][]int{
		1: {2, 3},
		2: {4},
		3: {4},
		4: {1},
	}

	var visited []int
	for w := walker.New[int]().Push(1); w.HasNext(); {
		node := w.Next()
		visited = append(visited, node)
		w.PushAll(edges[node]...)
	}

	// every node is visited exactly once despite the cycle
	require.Equal(t, []int{1, 2, 3, 4}, visited)
}
