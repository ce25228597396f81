package orderedmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typecomb/comb.go/lo"
	"github.com/typecomb/comb.go/orderedmap"
)

func TestOrderedMap_SetGet(t *testing.T) {
	m := orderedmap.New[string, int]()

	_, existed := m.Set("a", 1)
	assert.False(t, existed)

	previous, existed := m.Set("a", 2)
	assert.True(t, existed)
	assert.Equal(t, 1, previous)

	value, exists := m.Get("a")
	assert.True(t, exists)
	assert.Equal(t, 2, value)

	_, exists = m.Get("b")
	assert.False(t, exists)
	assert.True(t, m.Has("a"))
	assert.Equal(t, 1, m.Size())
}

func TestOrderedMap_InsertionOrder(t *testing.T) {
	m := orderedmap.New[int, string]()
	m.Set(3, "c")
	m.Set(1, "a")
	m.Set(2, "b")

	var keys []int
	m.ForEach(func(key int, _ string) bool {
		keys = append(keys, key)

		return true
	})
	assert.True(t, lo.Equal([]int{3, 1, 2}, keys))

	// updating a key keeps its position
	m.Set(3, "C")
	keys = keys[:0]
	m.ForEach(func(key int, _ string) bool {
		keys = append(keys, key)

		return true
	})
	assert.True(t, lo.Equal([]int{3, 1, 2}, keys))

	var reverseKeys []int
	m.ForEachReverse(func(key int, _ string) bool {
		reverseKeys = append(reverseKeys, key)

		return true
	})
	assert.True(t, lo.Equal([]int{2, 1, 3}, reverseKeys))
}

func TestOrderedMap_HeadTail(t *testing.T) {
	m := orderedmap.New[int, string]()

	_, _, exists := m.Head()
	assert.False(t, exists)
	_, _, exists = m.Tail()
	assert.False(t, exists)

	m.Set(1, "a")
	m.Set(2, "b")

	key, value, exists := m.Head()
	require.True(t, exists)
	assert.Equal(t, 1, key)
	assert.Equal(t, "a", value)

	key, value, exists = m.Tail()
	require.True(t, exists)
	assert.Equal(t, 2, key)
	assert.Equal(t, "b", value)
}

func TestOrderedMap_Delete(t *testing.T) {
	m := orderedmap.New[int, int]()
	for i := 1; i <= 5; i++ {
		m.Set(i, i)
	}

	assert.True(t, m.Delete(3))
	assert.False(t, m.Delete(3))
	assert.Equal(t, 4, m.Size())

	var keys []int
	m.ForEach(func(key, _ int) bool {
		keys = append(keys, key)

		return true
	})
	assert.True(t, lo.Equal([]int{1, 2, 4, 5}, keys))

	// deleting head and tail relinks the list
	m.Delete(1)
	m.Delete(5)

	key, _, exists := m.Head()
	require.True(t, exists)
	assert.Equal(t, 2, key)

	key, _, exists = m.Tail()
	require.True(t, exists)
	assert.Equal(t, 4, key)
}

func TestOrderedMap_Pairs(t *testing.T) {
	m := orderedmap.New[string, int]()
	m.Set("b", 2)
	m.Set("a", 1)

	pairs := m.Pairs()
	require.Len(t, pairs, 2)
	assert.Equal(t, "b", pairs[0].Key)
	assert.Equal(t, 2, pairs[0].Value)
	assert.Equal(t, "a", pairs[1].Key)
}

func TestOrderedMap_CloneClear(t *testing.T) {
	m := orderedmap.New[int, int]()
	m.Set(1, 1)
	m.Set(2, 2)

	cloned := m.Clone()
	m.Clear()

	assert.True(t, m.IsEmpty())
	assert.Equal(t, 2, cloned.Size())

	value, exists := cloned.Get(1)
	assert.True(t, exists)
	assert.Equal(t, 1, value)
}

func TestOrderedMap_AbortIteration(t *testing.T) {
	m := orderedmap.New[int, int]()
	for i := 0; i < 10; i++ {
		m.Set(i, i)
	}

	visited := 0
	completed := m.ForEach(func(int, int) bool {
		visited++

		return false
	})
	assert.False(t, completed)
	assert.Equal(t, 1, visited)
}
