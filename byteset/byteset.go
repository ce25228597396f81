package byteset

import (
	"fmt"

	"github.com/typecomb/comb.go/hasher"
	"github.com/typecomb/comb.go/openhashmap"
	"github.com/typecomb/comb.go/syncutils"
	"github.com/typecomb/comb.go/types"
)

// ByteSet is a thread-safe set of byte slices with a fixed capacity. Members are keyed by their
// BLAKE2b Identifier instead of the raw bytes, so arbitrary-length slices can act as set
// elements, and once the capacity is reached the oldest member is evicted first.
type ByteSet struct {
	known    *openhashmap.OpenHashMap[types.Identifier, types.Empty]
	inserted []types.Identifier
	capacity int
	mutex    syncutils.RWMutex
}

// New creates a new ByteSet with the given capacity. It panics if the capacity is smaller than
// one, since a set without room can neither hold nor evict a member.
func New(capacity int) *ByteSet {
	if capacity < 1 {
		panic(fmt.Sprintf("byteset: capacity %d out of range", capacity))
	}

	return &ByteSet{
		known:    openhashmap.New[types.Identifier, types.Empty](identifierStrategy()),
		inserted: make([]types.Identifier, 0, capacity),
		capacity: capacity,
	}
}

// Add adds the given bytes to the set and returns their Identifier and whether they were not
// present before.
func (b *ByteSet) Add(bytes []byte) (identifier types.Identifier, added bool) {
	identifier = types.NewIdentifier(bytes)

	b.mutex.Lock()
	defer b.mutex.Unlock()

	return identifier, b.addIdentifier(identifier)
}

// AddIdentifier adds the given pre-computed Identifier to the set and returns whether it was not
// present before.
func (b *ByteSet) AddIdentifier(identifier types.Identifier) (added bool) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	return b.addIdentifier(identifier)
}

// Has returns true if the set contains the given bytes.
func (b *ByteSet) Has(bytes []byte) (exists bool) {
	return b.HasIdentifier(types.NewIdentifier(bytes))
}

// HasIdentifier returns true if the set contains the given Identifier.
func (b *ByteSet) HasIdentifier(identifier types.Identifier) (exists bool) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	return b.known.Has(identifier)
}

// Size returns the number of members currently in the set.
func (b *ByteSet) Size() int {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	return len(b.inserted)
}

// Capacity returns the maximum number of members the set retains.
func (b *ByteSet) Capacity() int {
	return b.capacity
}

// Clear removes all members from the set.
func (b *ByteSet) Clear() {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.known.Clear()
	b.inserted = b.inserted[:0]
}

// addIdentifier inserts the identifier, evicting the oldest member if the set is full.
// It does not lock the mutex.
func (b *ByteSet) addIdentifier(identifier types.Identifier) (added bool) {
	if b.known.Has(identifier) {
		return false
	}

	if len(b.inserted) == b.capacity {
		b.known.Delete(b.inserted[0])
		b.inserted = append(b.inserted[1:], identifier)
	} else {
		b.inserted = append(b.inserted, identifier)
	}

	b.known.Set(identifier, types.Void)

	return true
}

// identifierStrategy hashes an Identifier by its leading bytes: the Identifier already is a
// uniformly distributed digest.
func identifierStrategy() hasher.Strategy[types.Identifier] {
	return hasher.Func(func(identifier types.Identifier) uint64 {
		return uint64(identifier[0]) | uint64(identifier[1])<<8 | uint64(identifier[2])<<16 | uint64(identifier[3])<<24 |
			uint64(identifier[4])<<32 | uint64(identifier[5])<<40 | uint64(identifier[6])<<48 | uint64(identifier[7])<<56
	})
}
