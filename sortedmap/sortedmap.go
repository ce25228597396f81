package sortedmap

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/typecomb/comb.go/constraints"
	"github.com/typecomb/comb.go/lo"
	"github.com/typecomb/comb.go/types"
)

// SortedMap is a non concurrent-safe map that keeps its entries ordered by key, backed by a
// red-black tree. Besides the usual map operations it offers nearest-neighbour lookups (Floor,
// Ceiling) and ordered range views (Head, Tail, Sub).
type SortedMap[K constraints.Ordered, V any] struct {
	tree *redblacktree.Tree
}

// New creates a new SortedMap.
func New[K constraints.Ordered, V any]() *SortedMap[K, V] {
	return &SortedMap[K, V]{
		tree: redblacktree.NewWith(func(a, b interface{}) int {
			//nolint:forcetypeassert // the tree only ever holds keys of type K
			return lo.Comparator(a.(K), b.(K))
		}),
	}
}

// Set adds a key-value pair to the map and returns the previous value and whether it existed.
func (s *SortedMap[K, V]) Set(key K, value V) (previousValue V, existed bool) {
	if rawValue, found := s.tree.Get(key); found {
		//nolint:forcetypeassert // the tree only ever holds values of type V
		previousValue, existed = rawValue.(V), true
	}

	s.tree.Put(key, value)

	return previousValue, existed
}

// Get returns the value mapped to the given key, and whether the key exists.
func (s *SortedMap[K, V]) Get(key K) (value V, exists bool) {
	rawValue, found := s.tree.Get(key)
	if !found {
		return value, false
	}

	//nolint:forcetypeassert // the tree only ever holds values of type V
	return rawValue.(V), true
}

// Has returns whether an entry with the given key exists.
func (s *SortedMap[K, V]) Has(key K) (has bool) {
	_, has = s.tree.Get(key)

	return has
}

// Delete removes the entry with the given key and returns whether it existed.
func (s *SortedMap[K, V]) Delete(key K) (deleted bool) {
	if _, deleted = s.tree.Get(key); deleted {
		s.tree.Remove(key)
	}

	return deleted
}

// Min returns the entry with the smallest key.
func (s *SortedMap[K, V]) Min() (key K, value V, exists bool) {
	return s.entryOf(s.tree.Left())
}

// Max returns the entry with the largest key.
func (s *SortedMap[K, V]) Max() (key K, value V, exists bool) {
	return s.entryOf(s.tree.Right())
}

// Floor returns the largest entry whose key is <= the given key.
func (s *SortedMap[K, V]) Floor(key K) (floorKey K, floorValue V, exists bool) {
	node, found := s.tree.Floor(key)
	if !found {
		return floorKey, floorValue, false
	}

	return s.keyOf(node), s.valueOf(node), true
}

// Ceiling returns the smallest entry whose key is >= the given key.
func (s *SortedMap[K, V]) Ceiling(key K) (ceilingKey K, ceilingValue V, exists bool) {
	node, found := s.tree.Ceiling(key)
	if !found {
		return ceilingKey, ceilingValue, false
	}

	return s.keyOf(node), s.valueOf(node), true
}

// ForEach iterates through the map in ascending key order and calls the consumer for every
// entry. Returning false from the consumer aborts the iteration.
func (s *SortedMap[K, V]) ForEach(callback func(key K, value V) bool) {
	iterator := s.tree.Iterator()
	for iterator.Next() {
		//nolint:forcetypeassert // the tree only ever holds entries of type K/V
		if !callback(iterator.Key().(K), iterator.Value().(V)) {
			return
		}
	}
}

// ForEachReverse iterates through the map in descending key order and calls the consumer for
// every entry. Returning false from the consumer aborts the iteration.
func (s *SortedMap[K, V]) ForEachReverse(callback func(key K, value V) bool) {
	iterator := s.tree.Iterator()
	iterator.End()
	for iterator.Prev() {
		//nolint:forcetypeassert // the tree only ever holds entries of type K/V
		if !callback(iterator.Key().(K), iterator.Value().(V)) {
			return
		}
	}
}

// Keys returns all keys in ascending order.
func (s *SortedMap[K, V]) Keys() []K {
	keys := make([]K, 0, s.Size())
	s.ForEach(func(key K, _ V) bool {
		keys = append(keys, key)

		return true
	})

	return keys
}

// Values returns all values in ascending key order.
func (s *SortedMap[K, V]) Values() []V {
	values := make([]V, 0, s.Size())
	s.ForEach(func(_ K, value V) bool {
		values = append(values, value)

		return true
	})

	return values
}

// Pairs returns all entries in ascending key order.
func (s *SortedMap[K, V]) Pairs() []types.Pair[K, V] {
	pairs := make([]types.Pair[K, V], 0, s.Size())
	s.ForEach(func(key K, value V) bool {
		pairs = append(pairs, types.NewPair(key, value))

		return true
	})

	return pairs
}

// Head returns a view of all entries whose key is smaller than the given bound.
func (s *SortedMap[K, V]) Head(end K) *View[K, V] {
	return &View[K, V]{source: s, hasEnd: true, end: end}
}

// Tail returns a view of all entries whose key is not smaller than the given bound.
func (s *SortedMap[K, V]) Tail(start K) *View[K, V] {
	return &View[K, V]{source: s, hasStart: true, start: start}
}

// Sub returns a view of all entries whose key lies in [start, end).
func (s *SortedMap[K, V]) Sub(start, end K) *View[K, V] {
	return &View[K, V]{source: s, hasStart: true, start: start, hasEnd: true, end: end}
}

// Size returns the number of entries in the map.
func (s *SortedMap[K, V]) Size() int {
	return s.tree.Size()
}

// IsEmpty returns whether the map is empty.
func (s *SortedMap[K, V]) IsEmpty() bool {
	return s.tree.Size() == 0
}

// Clear removes all entries from the map.
func (s *SortedMap[K, V]) Clear() {
	s.tree.Clear()
}

func (s *SortedMap[K, V]) String() string {
	entries := make([]string, 0, s.Size())
	s.ForEach(func(key K, value V) bool {
		entries = append(entries, fmt.Sprintf("%v:%v", key, value))

		return true
	})

	return fmt.Sprintf("SortedMap(%s)", strings.Join(entries, ", "))
}

func (s *SortedMap[K, V]) keyOf(node *redblacktree.Node) K {
	//nolint:forcetypeassert // the tree only ever holds keys of type K
	return node.Key.(K)
}

func (s *SortedMap[K, V]) valueOf(node *redblacktree.Node) V {
	//nolint:forcetypeassert // the tree only ever holds values of type V
	return node.Value.(V)
}

func (s *SortedMap[K, V]) entryOf(node *redblacktree.Node) (key K, value V, exists bool) {
	if node == nil {
		return key, value, false
	}

	return s.keyOf(node), s.valueOf(node), true
}
