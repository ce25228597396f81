package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/typecomb/comb.go/types"
)

func TestIdentifier(t *testing.T) {
	a := types.NewIdentifier([]byte("some data"))
	b := types.NewIdentifier([]byte("some data"))
	c := types.NewIdentifier([]byte("other data"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	assert.Len(t, a.Bytes(), types.IdentifierLength)
	assert.Len(t, a.String(), 2*types.IdentifierLength)
}

func TestRandomIdentifier(t *testing.T) {
	assert.NotEqual(t, types.RandomIdentifier(), types.RandomIdentifier())
}
