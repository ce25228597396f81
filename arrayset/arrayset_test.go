package arrayset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/typecomb/comb.go/arrayset"
	"github.com/typecomb/comb.go/lo"
)

func TestArraySet_AddHasDelete(t *testing.T) {
	s := arrayset.New(1, 2, 3)

	assert.Equal(t, 3, s.Size())
	assert.False(t, s.Add(2))
	assert.True(t, s.Add(4))
	assert.True(t, s.Has(4))

	assert.True(t, s.Delete(2))
	assert.False(t, s.Delete(2))
	assert.False(t, s.Has(2))
	assert.Equal(t, 3, s.Size())
}

func TestArraySet_InsertionOrder(t *testing.T) {
	s := arrayset.New[int]()
	s.Add(3)
	s.Add(1)
	s.Add(2)

	assert.True(t, lo.Equal([]int{3, 1, 2}, s.ToSlice()))

	// deletion keeps the relative order of the remaining elements
	s.Delete(1)
	assert.True(t, lo.Equal([]int{3, 2}, s.ToSlice()))
}

func TestArraySet_CustomEquality(t *testing.T) {
	s := arrayset.NewWithEquality(strings.EqualFold, "Hello")

	assert.False(t, s.Add("HELLO"))
	assert.True(t, s.Has("hello"))
	assert.Equal(t, 1, s.Size())
}

func TestArraySet_Equals(t *testing.T) {
	a := arrayset.New(1, 2, 3)
	b := arrayset.New(3, 2, 1)
	c := arrayset.New(1, 2)

	assert.True(t, a.Equals(b))
	assert.True(t, a.Equals(a))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))
}

func TestArraySet_ForEach(t *testing.T) {
	s := arrayset.New(1, 2, 3)

	visited := 0
	s.ForEach(func(int) bool {
		visited++

		return visited < 2
	})
	assert.Equal(t, 2, visited)
}

func TestArraySet_CloneClear(t *testing.T) {
	s := arrayset.New(1, 2, 3)
	cloned := s.Clone()

	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 3, cloned.Size())
}
