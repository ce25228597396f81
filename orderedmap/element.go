package orderedmap

// Element is a node of the insertion-order list of an OrderedMap.
type Element[K comparable, V any] struct {
	key   K
	value V
	prev  *Element[K, V]
	next  *Element[K, V]
}

// Key returns the key of the element.
func (e *Element[K, V]) Key() K {
	return e.key
}

// Value returns the value of the element.
func (e *Element[K, V]) Value() V {
	return e.value
}
