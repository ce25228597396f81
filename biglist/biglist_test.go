package biglist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBigList_AddGet(t *testing.T) {
	l := New[int]()

	for i := 0; i < 3*SegmentSize; i++ {
		index := l.Add(i)
		require.Equal(t, int64(i), index)
	}

	assert.Equal(t, int64(3*SegmentSize), l.Size())

	for i := 0; i < 3*SegmentSize; i++ {
		require.Equal(t, i, l.Get(int64(i)))
	}

	// segment boundaries
	assert.Equal(t, SegmentSize-1, l.Get(SegmentSize-1))
	assert.Equal(t, SegmentSize, l.Get(SegmentSize))

	_, exists := l.At(int64(3 * SegmentSize))
	assert.False(t, exists)
	assert.Panics(t, func() { l.Get(int64(3 * SegmentSize)) })
	assert.Panics(t, func() { l.Get(-1) })
}

func TestBigList_Set(t *testing.T) {
	l := New[string]()
	l.AddAll("a", "b", "c")

	previous := l.Set(1, "B")
	assert.Equal(t, "b", previous)
	assert.Equal(t, "B", l.Get(1))
}

func TestBigList_RemoveLast(t *testing.T) {
	l := New[int]()
	for i := 0; i < SegmentSize+1; i++ {
		l.Add(i)
	}

	removed, exists := l.RemoveLast()
	assert.True(t, exists)
	assert.Equal(t, SegmentSize, removed)
	assert.Equal(t, int64(SegmentSize), l.Size())

	for l.Size() > 0 {
		_, exists = l.RemoveLast()
		require.True(t, exists)
	}

	_, exists = l.RemoveLast()
	assert.False(t, exists)
	assert.True(t, l.IsEmpty())
}

func TestBigList_Truncate(t *testing.T) {
	l := New[int]()
	for i := 0; i < 2*SegmentSize; i++ {
		l.Add(i)
	}

	l.Truncate(10)
	assert.Equal(t, int64(10), l.Size())
	assert.Equal(t, 9, l.Get(9))

	// the list keeps working after truncation
	index := l.Add(42)
	assert.Equal(t, int64(10), index)
	assert.Equal(t, 42, l.Get(10))

	assert.Panics(t, func() { l.Truncate(100) })
	assert.Panics(t, func() { l.Truncate(-1) })
}

func TestBigList_ForEach(t *testing.T) {
	l := New[int]()
	for i := 0; i < SegmentSize+10; i++ {
		l.Add(i)
	}

	sum := 0
	count := 0
	l.ForEach(func(element int) bool {
		sum += element
		count++

		return true
	})

	expected := (SegmentSize + 10) * (SegmentSize + 9) / 2
	assert.Equal(t, expected, sum)
	assert.Equal(t, SegmentSize+10, count)

	visited := 0
	l.ForEach(func(int) bool {
		visited++

		return false
	})
	assert.Equal(t, 1, visited)
}

func TestBigList_ForEachSegment(t *testing.T) {
	l := New[int]()
	for i := 0; i < 2*SegmentSize+10; i++ {
		l.Add(i)
	}

	var lengths []int
	l.ForEachSegment(func(segment []int) bool {
		lengths = append(lengths, len(segment))

		return true
	})

	assert.Equal(t, []int{SegmentSize, SegmentSize, 10}, lengths)
}

func TestBigList_Clear(t *testing.T) {
	l := New[int]()
	l.AddAll(1, 2, 3)

	l.Clear()
	assert.True(t, l.IsEmpty())
	assert.Equal(t, int64(0), l.Add(99))
}
