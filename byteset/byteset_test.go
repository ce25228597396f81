package byteset_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typecomb/comb.go/byteset"
	"github.com/typecomb/comb.go/types"
)

func TestByteSet_AddHas(t *testing.T) {
	s := byteset.New(10)

	identifier, added := s.Add([]byte("hello"))
	assert.True(t, added)
	assert.Equal(t, types.NewIdentifier([]byte("hello")), identifier)

	_, added = s.Add([]byte("hello"))
	assert.False(t, added)

	assert.True(t, s.Has([]byte("hello")))
	assert.True(t, s.HasIdentifier(identifier))
	assert.False(t, s.Has([]byte("world")))
	assert.Equal(t, 1, s.Size())
}

func TestByteSet_Eviction(t *testing.T) {
	s := byteset.New(3)
	require.Equal(t, 3, s.Capacity())

	for i := 0; i < 3; i++ {
		_, added := s.Add([]byte(fmt.Sprintf("element-%d", i)))
		require.True(t, added)
	}
	assert.Equal(t, 3, s.Size())

	// adding a fourth element evicts the oldest one
	_, added := s.Add([]byte("element-3"))
	assert.True(t, added)
	assert.Equal(t, 3, s.Size())
	assert.False(t, s.Has([]byte("element-0")))
	assert.True(t, s.Has([]byte("element-1")))
	assert.True(t, s.Has([]byte("element-3")))

	// the evicted element can be added again
	_, added = s.Add([]byte("element-0"))
	assert.True(t, added)
}

func TestByteSet_AddIdentifier(t *testing.T) {
	s := byteset.New(2)

	identifier := types.RandomIdentifier()
	assert.True(t, s.AddIdentifier(identifier))
	assert.False(t, s.AddIdentifier(identifier))
	assert.True(t, s.HasIdentifier(identifier))
}

func TestByteSet_InvalidCapacity(t *testing.T) {
	assert.Panics(t, func() { byteset.New(0) })
	assert.Panics(t, func() { byteset.New(-1) })
}

func TestByteSet_Clear(t *testing.T) {
	s := byteset.New(2)
	s.Add([]byte("a"))
	s.Add([]byte("b"))

	s.Clear()
	assert.Equal(t, 0, s.Size())
	assert.False(t, s.Has([]byte("a")))

	_, added := s.Add([]byte("a"))
	assert.True(t, added)
}
