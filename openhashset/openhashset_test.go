package openhashset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typecomb/comb.go/hasher"
	"github.com/typecomb/comb.go/openhashset"
)

func TestOpenHashSet_AddDelete(t *testing.T) {
	s := openhashset.New(hasher.Integer[int](), 1, 2, 3)

	assert.Equal(t, 3, s.Size())
	assert.False(t, s.Add(2))
	assert.True(t, s.Add(4))
	assert.True(t, s.Delete(1))
	assert.False(t, s.Delete(1))
	assert.Equal(t, 3, s.Size())
	assert.True(t, s.Has(4))
	assert.False(t, s.Has(1))
}

func TestOpenHashSet_Algebra(t *testing.T) {
	a := openhashset.New(hasher.Integer[int](), 1, 2, 3, 4)
	b := openhashset.New(hasher.Integer[int](), 3, 4, 5)

	intersection := a.Intersect(b)
	assert.Equal(t, 2, intersection.Size())
	assert.True(t, intersection.Has(3))
	assert.True(t, intersection.Has(4))

	union := a.Union(b)
	assert.Equal(t, 5, union.Size())

	difference := a.Difference(b)
	assert.Equal(t, 2, difference.Size())
	assert.True(t, difference.Has(1))
	assert.True(t, difference.Has(2))
	assert.False(t, difference.Has(3))
}

func TestOpenHashSet_Equals(t *testing.T) {
	a := openhashset.New(hasher.Integer[int](), 1, 2, 3)
	b := openhashset.New(hasher.Integer[int](), 3, 2, 1)
	c := openhashset.New(hasher.Integer[int](), 1, 2)

	assert.True(t, a.Equals(b))
	assert.True(t, a.Equals(a))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))

	assert.True(t, a.HasAll(c))
	assert.False(t, c.HasAll(a))
}

func TestOpenHashSet_FilterClone(t *testing.T) {
	s := openhashset.New(hasher.Integer[int]())
	for i := 0; i < 20; i++ {
		s.Add(i)
	}

	even := s.Filter(func(element int) bool { return element%2 == 0 })
	assert.Equal(t, 10, even.Size())

	cloned := s.Clone()
	cloned.Clear()
	assert.Equal(t, 20, s.Size())
	assert.True(t, cloned.IsEmpty())
}

func TestOpenHashSet_Is(t *testing.T) {
	s := openhashset.New(hasher.String[string](), "only")

	assert.True(t, s.Is("only"))
	s.Add("another")
	assert.False(t, s.Is("only"))
}

func TestOpenHashSet_CustomStrategy(t *testing.T) {
	// case-insensitive strings
	caseFolded := hasher.New(
		func(value string) uint64 { return hasher.Mix64(uint64(len(strings.ToLower(value)))) },
		func(a, b string) bool { return strings.EqualFold(a, b) },
	)

	s := openhashset.New(caseFolded)
	assert.True(t, s.Add("Hello"))
	assert.False(t, s.Add("HELLO"))
	assert.True(t, s.Has("hello"))
	assert.Equal(t, 1, s.Size())
}

func TestOpenHashSet_ForEachError(t *testing.T) {
	s := openhashset.New(hasher.Integer[int](), 1, 2, 3)

	visited := 0
	err := s.ForEach(func(int) error {
		visited++

		return assert.AnError
	})

	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, visited)
}

func TestOpenHashSet_ToSlice(t *testing.T) {
	s := openhashset.New(hasher.Integer[int](), 3, 1, 2)

	slice := s.ToSlice()
	require.Len(t, slice, 3)
	assert.ElementsMatch(t, []int{1, 2, 3}, slice)
}
