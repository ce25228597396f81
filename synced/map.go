// Package synced provides mutex-guarded wrappers around the non concurrent-safe containers.
// Every method takes the wrapper's lock and delegates, which makes the wrapped container safe
// for concurrent use at the cost of serializing all access; compound check-then-act sequences
// still need external coordination.
package synced

import (
	"github.com/typecomb/comb.go/hasher"
	"github.com/typecomb/comb.go/openhashmap"
	"github.com/typecomb/comb.go/syncutils"
	"github.com/typecomb/comb.go/types"
)

// Map is a thread-safe wrapper around an OpenHashMap.
type Map[K any, V any] struct {
	delegate *openhashmap.OpenHashMap[K, V]
	mutex    syncutils.RWMutex
}

// NewMap creates a new synchronized Map using the given key Strategy.
func NewMap[K any, V any](strategy hasher.Strategy[K], opts ...openhashmap.Option) *Map[K, V] {
	return &Map[K, V]{
		delegate: openhashmap.New[K, V](strategy, opts...),
	}
}

// Set adds a key-value pair to the map and returns the previous value and whether it existed.
func (m *Map[K, V]) Set(key K, value V) (previousValue V, exists bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.delegate.Set(key, value)
}

// Get returns the value mapped to the given key, and whether the key exists.
func (m *Map[K, V]) Get(key K) (value V, exists bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.delegate.Get(key)
}

// GetOrCreate returns the value mapped to the given key, calling the given constructor and
// storing its result if the key does not exist yet.
func (m *Map[K, V]) GetOrCreate(key K, defaultValueFunc func() V) (value V, created bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.delegate.GetOrCreate(key, defaultValueFunc)
}

// Has returns whether an entry with the given key exists.
func (m *Map[K, V]) Has(key K) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.delegate.Has(key)
}

// Delete removes the entry with the given key and returns whether it existed.
func (m *Map[K, V]) Delete(key K) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.delegate.Delete(key)
}

// ForEach iterates through a snapshot of the map and calls the consumer for every element.
// Returning false from the consumer aborts the iteration.
func (m *Map[K, V]) ForEach(callback func(key K, value V) bool) {
	for _, pair := range m.Pairs() {
		if !callback(pair.Key, pair.Value) {
			return
		}
	}
}

// Pairs returns a snapshot of all key-value pairs in the map.
func (m *Map[K, V]) Pairs() []types.Pair[K, V] {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.delegate.Pairs()
}

// Keys returns a snapshot of all keys in the map.
func (m *Map[K, V]) Keys() []K {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.delegate.Keys()
}

// Values returns a snapshot of all values in the map.
func (m *Map[K, V]) Values() []V {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.delegate.Values()
}

// Size returns the number of entries in the map.
func (m *Map[K, V]) Size() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.delegate.Size()
}

// IsEmpty returns whether the map is empty.
func (m *Map[K, V]) IsEmpty() bool {
	return m.Size() == 0
}

// Clear removes all entries from the map.
func (m *Map[K, V]) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.delegate.Clear()
}

// Trim rehashes the backing table down to the smallest capacity that holds the current entries.
func (m *Map[K, V]) Trim() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.delegate.Trim()
}
