package sortedmap

import (
	"github.com/typecomb/comb.go/constraints"
	"github.com/typecomb/comb.go/types"
)

// View is a read-only range view of a SortedMap, bounded by an optional inclusive start key and
// an optional exclusive end key. A View is evaluated lazily against its source map, so entries
// added or removed after its creation are observed by later calls.
type View[K constraints.Ordered, V any] struct {
	source *SortedMap[K, V]

	hasStart bool
	start    K
	hasEnd   bool
	end      K
}

// ForEach iterates through the entries of the view in ascending key order and calls the consumer
// for every entry. Returning false from the consumer aborts the iteration.
func (v *View[K, V]) ForEach(callback func(key K, value V) bool) {
	v.source.ForEach(func(key K, value V) bool {
		if v.hasStart && key < v.start {
			return true
		}

		if v.hasEnd && key >= v.end {
			return false
		}

		return callback(key, value)
	})
}

// Get returns the value mapped to the given key if the key lies inside the view's bounds.
func (v *View[K, V]) Get(key K) (value V, exists bool) {
	if !v.contains(key) {
		return value, false
	}

	return v.source.Get(key)
}

// Has returns whether the view contains the given key.
func (v *View[K, V]) Has(key K) (has bool) {
	_, has = v.Get(key)

	return has
}

// Min returns the entry with the smallest key inside the view.
func (v *View[K, V]) Min() (key K, value V, exists bool) {
	v.ForEach(func(k K, val V) bool {
		key, value, exists = k, val, true

		return false
	})

	return key, value, exists
}

// Max returns the entry with the largest key inside the view.
func (v *View[K, V]) Max() (key K, value V, exists bool) {
	v.source.ForEachReverse(func(k K, val V) bool {
		if v.hasEnd && k >= v.end {
			return true
		}

		if v.hasStart && k < v.start {
			return false
		}

		key, value, exists = k, val, true

		return false
	})

	return key, value, exists
}

// Keys returns all keys of the view in ascending order.
func (v *View[K, V]) Keys() []K {
	var keys []K
	v.ForEach(func(key K, _ V) bool {
		keys = append(keys, key)

		return true
	})

	return keys
}

// Pairs returns all entries of the view in ascending key order.
func (v *View[K, V]) Pairs() []types.Pair[K, V] {
	var pairs []types.Pair[K, V]
	v.ForEach(func(key K, value V) bool {
		pairs = append(pairs, types.NewPair(key, value))

		return true
	})

	return pairs
}

// Size returns the number of entries inside the view's bounds.
func (v *View[K, V]) Size() (size int) {
	v.ForEach(func(K, V) bool {
		size++

		return true
	})

	return size
}

// IsEmpty returns whether the view contains no entries.
func (v *View[K, V]) IsEmpty() bool {
	empty := true
	v.ForEach(func(K, V) bool {
		empty = false

		return false
	})

	return empty
}

// contains reports whether the given key lies inside the view's bounds.
func (v *View[K, V]) contains(key K) bool {
	if v.hasStart && key < v.start {
		return false
	}

	if v.hasEnd && key >= v.end {
		return false
	}

	return true
}
