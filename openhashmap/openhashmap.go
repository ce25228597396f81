package openhashmap

import (
	"fmt"
	"strings"

	"github.com/typecomb/comb.go/hasher"
	"github.com/typecomb/comb.go/types"
)

const (
	// DefaultCapacity is the initial table capacity used when no option is given.
	DefaultCapacity = 16

	// DefaultLoadFactor is the maximum fill ratio used when no option is given.
	DefaultLoadFactor = 0.75
)

// OpenHashMap is a non concurrent-safe map based on an open-addressing hash table with linear
// probing. Deletions shift the following probe chain backwards instead of leaving tombstones, so
// lookups never scan deleted slots. The table capacity is always a power of two; it doubles when
// the configured load factor is exceeded and shrinks again when every enabled deletion threshold
// (capacity/size ratio and deletion count) is met.
//
// The hashing and equality semantics of the keys are supplied by a hasher.Strategy, which also
// admits keys that are not comparable in the language sense (byte slices, case-folded strings).
type OpenHashMap[K any, V any] struct {
	keys     []K
	values   []V
	occupied []bool

	size      int
	mask      uint64
	maxFill   int
	deletions int

	strategy hasher.Strategy[K]

	// holds the map options.
	opts *Options
}

// New returns a new OpenHashMap using the given key Strategy.
func New[K any, V any](strategy hasher.Strategy[K], opts ...Option) *OpenHashMap[K, V] {
	mapOpts := &Options{}
	mapOpts.apply(defaultOptions...)
	mapOpts.apply(opts...)

	if mapOpts.loadFactor <= 0 || mapOpts.loadFactor >= 1 {
		panic(fmt.Sprintf("openhashmap: load factor %f outside (0, 1)", mapOpts.loadFactor))
	}

	capacity := nextPowerOfTwo(mapOpts.capacity)

	m := &OpenHashMap[K, V]{
		strategy: strategy,
		opts:     mapOpts,
	}
	m.allocate(capacity)

	return m
}

// Set adds a key-value pair to the map and returns the previous value and whether it existed.
func (m *OpenHashMap[K, V]) Set(key K, value V) (previousValue V, exists bool) {
	pos, found := m.find(key)
	if found {
		previousValue = m.values[pos]
		m.values[pos] = value

		return previousValue, true
	}

	m.keys[pos] = key
	m.values[pos] = value
	m.occupied[pos] = true
	m.size++

	if m.size > m.maxFill {
		m.rehash(len(m.keys) * 2)
	}

	return previousValue, false
}

// Get returns the value mapped to the given key, and whether the key exists.
func (m *OpenHashMap[K, V]) Get(key K) (value V, exists bool) {
	pos, found := m.find(key)
	if !found {
		return value, false
	}

	return m.values[pos], true
}

// GetOrCreate returns the value mapped to the given key, calling the given constructor and
// storing its result if the key does not exist yet.
func (m *OpenHashMap[K, V]) GetOrCreate(key K, defaultValueFunc func() V) (value V, created bool) {
	if existingValue, exists := m.Get(key); exists {
		return existingValue, false
	}

	value = defaultValueFunc()
	m.Set(key, value)

	return value, true
}

// Has returns whether an entry with the given key exists.
func (m *OpenHashMap[K, V]) Has(key K) (has bool) {
	_, has = m.find(key)

	return has
}

// Delete removes the entry with the given key. The probe chain behind the removed slot is shifted
// backwards so that no tombstone remains.
func (m *OpenHashMap[K, V]) Delete(key K) (deleted bool) {
	pos, found := m.find(key)
	if !found {
		return false
	}

	m.shiftKeys(pos)
	m.size--
	m.deletions++

	if m.shouldShrink() {
		m.Trim()
	}

	return true
}

// ForEach iterates through the map and calls the consumer for every element.
// Returning false from the consumer aborts the iteration.
func (m *OpenHashMap[K, V]) ForEach(callback func(key K, value V) bool) {
	for pos, used := range m.occupied {
		if used && !callback(m.keys[pos], m.values[pos]) {
			return
		}
	}
}

// ForEachKey iterates through the map keys and calls the consumer for every element.
// Returning false from the consumer aborts the iteration.
func (m *OpenHashMap[K, V]) ForEachKey(callback func(key K) bool) {
	m.ForEach(func(key K, _ V) bool {
		return callback(key)
	})
}

// Keys returns a slice of all keys in the map.
func (m *OpenHashMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	m.ForEach(func(key K, _ V) bool {
		keys = append(keys, key)

		return true
	})

	return keys
}

// Values returns a slice of all values in the map.
func (m *OpenHashMap[K, V]) Values() []V {
	values := make([]V, 0, m.size)
	m.ForEach(func(_ K, value V) bool {
		values = append(values, value)

		return true
	})

	return values
}

// Pairs returns a slice of all key-value pairs in the map.
func (m *OpenHashMap[K, V]) Pairs() []types.Pair[K, V] {
	pairs := make([]types.Pair[K, V], 0, m.size)
	m.ForEach(func(key K, value V) bool {
		pairs = append(pairs, types.NewPair(key, value))

		return true
	})

	return pairs
}

// Size returns the number of entries in the map.
func (m *OpenHashMap[K, V]) Size() int {
	return m.size
}

// IsEmpty returns whether the map is empty.
func (m *OpenHashMap[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Capacity returns the current number of slots of the backing table.
func (m *OpenHashMap[K, V]) Capacity() int {
	return len(m.keys)
}

// Clear removes all entries from the map and resets the table to its initial capacity.
func (m *OpenHashMap[K, V]) Clear() {
	m.allocate(nextPowerOfTwo(m.opts.capacity))
	m.size = 0
	m.deletions = 0
}

// Clone returns a shallow copy of the map.
func (m *OpenHashMap[K, V]) Clone() (cloned *OpenHashMap[K, V]) {
	cloned = New[K, V](m.strategy, WithCapacity(len(m.keys)), WithLoadFactor(m.opts.loadFactor),
		WithShrinkingThresholdRatio(m.opts.shrinkingThresholdRatio), WithShrinkingThresholdCount(m.opts.shrinkingThresholdCount))
	m.ForEach(func(key K, value V) bool {
		cloned.Set(key, value)

		return true
	})

	return cloned
}

// Trim rehashes the table to the smallest power of two that holds the current entries within the
// configured load factor, ignoring the shrinking thresholds.
func (m *OpenHashMap[K, V]) Trim() {
	capacity := DefaultCapacity
	for int(float64(capacity)*m.opts.loadFactor) < m.size {
		capacity *= 2
	}

	if capacity != len(m.keys) {
		m.rehash(capacity)
	}

	m.deletions = 0
}

func (m *OpenHashMap[K, V]) String() string {
	entries := make([]string, 0, m.size)
	m.ForEach(func(key K, value V) bool {
		entries = append(entries, fmt.Sprintf("%v:%v", key, value))

		return true
	})

	return fmt.Sprintf("OpenHashMap(%s)", strings.Join(entries, ", "))
}

// find returns the slot of the given key and whether it is present. If the key is absent, the
// returned slot is the empty slot that terminates its probe chain.
func (m *OpenHashMap[K, V]) find(key K) (pos int, found bool) {
	slot := m.strategy.Hash(key) & m.mask
	for m.occupied[slot] {
		if m.strategy.Equals(m.keys[slot], key) {
			return int(slot), true
		}

		slot = (slot + 1) & m.mask
	}

	return int(slot), false
}

// shiftKeys closes the gap left by removing the entry at the given slot by moving the entries of
// the following probe chain backwards until an empty slot or an entry in its home slot is found.
func (m *OpenHashMap[K, V]) shiftKeys(pos int) {
	var zeroKey K
	var zeroValue V

	last := uint64(pos)
	for {
		curr := (last + 1) & m.mask
		for {
			if !m.occupied[curr] {
				m.keys[last] = zeroKey
				m.values[last] = zeroValue
				m.occupied[last] = false

				return
			}

			slot := m.strategy.Hash(m.keys[curr]) & m.mask
			if last <= curr {
				if last >= slot || slot > curr {
					break
				}
			} else if last >= slot && slot > curr {
				break
			}

			curr = (curr + 1) & m.mask
		}

		m.keys[last] = m.keys[curr]
		m.values[last] = m.values[curr]
		last = curr
	}
}

// shouldShrink reports whether the configured deletion thresholds are met. A threshold set to
// zero is disabled and skipped; shrinking only stops entirely when both are disabled.
func (m *OpenHashMap[K, V]) shouldShrink() bool {
	ratio := m.opts.shrinkingThresholdRatio
	count := m.opts.shrinkingThresholdCount

	if ratio == 0 && count == 0 || len(m.keys) <= DefaultCapacity {
		return false
	}

	if ratio != 0 && float32(len(m.keys)) < float32(max(m.size, 1))*ratio {
		return false
	}

	if count != 0 && m.deletions < count {
		return false
	}

	return true
}

func (m *OpenHashMap[K, V]) rehash(capacity int) {
	oldKeys, oldValues, oldOccupied := m.keys, m.values, m.occupied

	m.allocate(capacity)

	for pos, used := range oldOccupied {
		if !used {
			continue
		}

		slot := m.strategy.Hash(oldKeys[pos]) & m.mask
		for m.occupied[slot] {
			slot = (slot + 1) & m.mask
		}

		m.keys[slot] = oldKeys[pos]
		m.values[slot] = oldValues[pos]
		m.occupied[slot] = true
	}
}

func (m *OpenHashMap[K, V]) allocate(capacity int) {
	m.keys = make([]K, capacity)
	m.values = make([]V, capacity)
	m.occupied = make([]bool, capacity)
	m.mask = uint64(capacity - 1)
	m.maxFill = int(float64(capacity) * m.opts.loadFactor)
}

func nextPowerOfTwo(value int) int {
	capacity := DefaultCapacity
	for capacity < value {
		capacity *= 2
	}

	return capacity
}
