package orderedmap

import (
	"sync"

	"github.com/typecomb/comb.go/types"
)

// OrderedMap provides a concurrent-safe map that additionally maintains insertion order: keys
// are linked into a doubly-linked list when they are first set and iteration follows that list.
type OrderedMap[K comparable, V any] struct {
	head       *Element[K, V]
	tail       *Element[K, V]
	dictionary map[K]*Element[K, V]
	size       int
	mutex      sync.RWMutex
}

// New returns a new OrderedMap.
func New[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		dictionary: make(map[K]*Element[K, V]),
	}
}

// Head returns the first map entry in insertion order.
func (o *OrderedMap[K, V]) Head() (key K, value V, exists bool) {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	if exists = o.head != nil; !exists {
		return
	}
	key = o.head.key
	value = o.head.value

	return
}

// Tail returns the last map entry in insertion order.
func (o *OrderedMap[K, V]) Tail() (key K, value V, exists bool) {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	if exists = o.tail != nil; !exists {
		return
	}
	key = o.tail.key
	value = o.tail.value

	return
}

// Has returns if an entry with the given key exists.
func (o *OrderedMap[K, V]) Has(key K) (has bool) {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	_, has = o.dictionary[key]

	return has
}

// Get returns the value mapped to the given key if it exists.
func (o *OrderedMap[K, V]) Get(key K) (value V, exists bool) {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	element, exists := o.dictionary[key]
	if !exists {
		return value, false
	}

	return element.value, true
}

// Set adds a key-value pair to the map. Setting an existing key replaces its value but keeps its
// position in the iteration order.
func (o *OrderedMap[K, V]) Set(key K, newValue V) (previousValue V, previousValueExisted bool) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	if oldElement, exists := o.dictionary[key]; exists {
		previousValue = oldElement.value
		oldElement.value = newValue

		return previousValue, true
	}

	newElement := &Element[K, V]{
		key:   key,
		value: newValue,
	}

	if o.head == nil {
		o.head = newElement
	} else {
		o.tail.next = newElement
		newElement.prev = o.tail
	}
	o.tail = newElement
	o.size++

	o.dictionary[key] = newElement

	return previousValue, false
}

// Delete deletes the given key (and related value) from the map.
// It returns false if the key is not found.
func (o *OrderedMap[K, V]) Delete(key K) bool {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	element, exists := o.dictionary[key]
	if !exists {
		return false
	}

	delete(o.dictionary, key)
	o.size--

	if element.prev != nil {
		element.prev.next = element.next
	} else {
		o.head = element.next
	}

	if element.next != nil {
		element.next.prev = element.prev
	} else {
		o.tail = element.prev
	}

	return true
}

// ForEach iterates through the map in insertion order and calls the consumer function for every
// element. The iteration can be aborted by returning false in the consumer.
func (o *OrderedMap[K, V]) ForEach(consumer func(key K, value V) bool) bool {
	if o == nil {
		return true
	}

	o.mutex.RLock()
	currentEntry := o.head
	o.mutex.RUnlock()

	for currentEntry != nil {
		if !consumer(currentEntry.key, currentEntry.value) {
			return false
		}

		o.mutex.RLock()
		currentEntry = currentEntry.next
		o.mutex.RUnlock()
	}

	return true
}

// ForEachReverse iterates through the map in reverse insertion order and calls the consumer
// function for every element. The iteration can be aborted by returning false in the consumer.
func (o *OrderedMap[K, V]) ForEachReverse(consumer func(key K, value V) bool) bool {
	if o == nil {
		return true
	}

	o.mutex.RLock()
	currentEntry := o.tail
	o.mutex.RUnlock()

	for currentEntry != nil {
		if !consumer(currentEntry.key, currentEntry.value) {
			return false
		}

		o.mutex.RLock()
		currentEntry = currentEntry.prev
		o.mutex.RUnlock()
	}

	return true
}

// Pairs returns all entries in insertion order.
func (o *OrderedMap[K, V]) Pairs() []types.Pair[K, V] {
	pairs := make([]types.Pair[K, V], 0, o.Size())
	o.ForEach(func(key K, value V) bool {
		pairs = append(pairs, types.NewPair(key, value))

		return true
	})

	return pairs
}

// Clear removes all elements from the map.
func (o *OrderedMap[K, V]) Clear() {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.head = nil
	o.tail = nil
	o.size = 0
	o.dictionary = make(map[K]*Element[K, V])
}

// Size returns the size of the map.
func (o *OrderedMap[K, V]) Size() int {
	if o == nil {
		return 0
	}

	o.mutex.RLock()
	defer o.mutex.RUnlock()

	return o.size
}

// IsEmpty returns a boolean value indicating whether the map is empty.
func (o *OrderedMap[K, V]) IsEmpty() bool {
	return o.Size() == 0
}

// Clone returns a copy of the map preserving the iteration order.
func (o *OrderedMap[K, V]) Clone() (cloned *OrderedMap[K, V]) {
	cloned = New[K, V]()
	o.ForEach(func(key K, value V) bool {
		cloned.Set(key, value)

		return true
	})

	return cloned
}
