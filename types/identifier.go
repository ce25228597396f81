package types

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// IdentifierLength is the byte length of an Identifier.
const IdentifierLength = 32

// Identifier is a 32 byte hash value that uniquely identifies some blob of data.
type Identifier [IdentifierLength]byte

// NewIdentifier returns the Identifier of the given data.
func NewIdentifier(data []byte) Identifier {
	return blake2b.Sum256(data)
}

// RandomIdentifier generates a random Identifier.
func RandomIdentifier() (id Identifier) {
	// rand.Read never returns an error on supported platforms
	_, _ = rand.Read(id[:])

	return id
}

// Bytes returns the raw bytes of the Identifier.
func (i Identifier) Bytes() []byte {
	return i[:]
}

func (i Identifier) String() string {
	return hex.EncodeToString(i[:])
}
