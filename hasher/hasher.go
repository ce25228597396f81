package hasher

import (
	"bytes"

	"github.com/cespare/xxhash/v2"

	"github.com/typecomb/comb.go/constraints"
)

// Strategy bundles the hash function and the equality relation used by the open-addressing
// containers. Two values for which Equals returns true must hash to the same value.
type Strategy[T any] struct {
	// Hash maps a value to a 64 bit hash.
	Hash func(value T) uint64

	// Equals reports whether two values are considered the same key.
	Equals func(a, b T) bool
}

// New creates a fully custom Strategy from the given hash function and equality relation.
func New[T any](hash func(T) uint64, equals func(a, b T) bool) Strategy[T] {
	return Strategy[T]{
		Hash:   hash,
		Equals: equals,
	}
}

// Func creates a Strategy for a comparable type from the given hash function, using == as the
// equality relation.
func Func[T comparable](hash func(T) uint64) Strategy[T] {
	return Strategy[T]{
		Hash: hash,
		Equals: func(a, b T) bool {
			return a == b
		},
	}
}

// Integer returns the default Strategy for integer keys. The raw value is passed through a
// splitmix64 style finalizer so that dense key ranges spread over the whole table.
func Integer[T constraints.Integer]() Strategy[T] {
	return Func(func(value T) uint64 {
		return Mix64(uint64(value))
	})
}

// String returns the default Strategy for string keys, backed by xxhash.
func String[T ~string]() Strategy[T] {
	return Func(func(value T) uint64 {
		return xxhash.Sum64String(string(value))
	})
}

// Bytes returns a Strategy for byte slice keys, backed by xxhash and bytes.Equal. It is the
// custom-strategy escape hatch for keys that are not comparable in the language sense.
func Bytes() Strategy[[]byte] {
	return Strategy[[]byte]{
		Hash:   xxhash.Sum64,
		Equals: bytes.Equal,
	}
}

// Mix64 is the splitmix64 finalizer. It is used to turn weak integer hashes into well-distributed
// ones before they are masked down to a table index.
func Mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
