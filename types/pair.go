package types

import "fmt"

// Pair is an immutable tuple of a key and a value.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// NewPair creates a new Pair from the given key and value.
func NewPair[K, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{
		Key:   key,
		Value: value,
	}
}

// Swap returns a new Pair with the key and value swapped.
func (p Pair[K, V]) Swap() Pair[V, K] {
	return NewPair(p.Value, p.Key)
}

// Split returns the key and the value as separate return values.
func (p Pair[K, V]) Split() (K, V) {
	return p.Key, p.Value
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}

// ComparePairs orders two pairs by key first and by value second, using the given comparators.
func ComparePairs[K, V any](keyComparator func(K, K) int, valueComparator func(V, V) int) func(Pair[K, V], Pair[K, V]) int {
	return func(a, b Pair[K, V]) int {
		if result := keyComparator(a.Key, b.Key); result != 0 {
			return result
		}

		return valueComparator(a.Value, b.Value)
	}
}
