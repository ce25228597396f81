package biglist

import (
	"fmt"
)

const (
	// SegmentBits is the base-2 logarithm of the segment size.
	SegmentBits = 10

	// SegmentSize is the number of elements per segment.
	SegmentSize = 1 << SegmentBits

	segmentMask = SegmentSize - 1
)

// BigList is a non concurrent-safe list addressed by int64 indices. The elements are stored in
// fixed-size segments instead of one contiguous array, so the list grows one segment at a time
// and never copies existing elements, which keeps it usable beyond the practical size of a single
// backing array.
type BigList[T any] struct {
	segments [][]T
	size     int64
}

// New creates a new BigList.
func New[T any]() *BigList[T] {
	return &BigList[T]{}
}

// Add appends the given element to the end of the list and returns its index.
func (b *BigList[T]) Add(element T) (index int64) {
	if b.size&segmentMask == 0 && b.size>>SegmentBits == int64(len(b.segments)) {
		b.segments = append(b.segments, make([]T, SegmentSize))
	}

	index = b.size
	b.segments[index>>SegmentBits][index&segmentMask] = element
	b.size++

	return index
}

// AddAll appends all given elements to the end of the list.
func (b *BigList[T]) AddAll(elements ...T) {
	for _, element := range elements {
		b.Add(element)
	}
}

// Get returns the element at the given index. It panics if the index is out of range.
func (b *BigList[T]) Get(index int64) T {
	b.checkIndex(index)

	return b.segments[index>>SegmentBits][index&segmentMask]
}

// At returns the element at the given index and whether the index is in range.
func (b *BigList[T]) At(index int64) (element T, exists bool) {
	if index < 0 || index >= b.size {
		return element, false
	}

	return b.segments[index>>SegmentBits][index&segmentMask], true
}

// Set replaces the element at the given index and returns the previous element. It panics if the
// index is out of range.
func (b *BigList[T]) Set(index int64, element T) (previous T) {
	b.checkIndex(index)

	segment := b.segments[index>>SegmentBits]
	previous = segment[index&segmentMask]
	segment[index&segmentMask] = element

	return previous
}

// RemoveLast removes and returns the last element of the list.
func (b *BigList[T]) RemoveLast() (removed T, exists bool) {
	if b.size == 0 {
		return removed, false
	}

	b.size--
	segment := b.segments[b.size>>SegmentBits]
	removed = segment[b.size&segmentMask]

	var zero T
	segment[b.size&segmentMask] = zero

	// drop fully vacated trailing segments
	for int64(len(b.segments)) > (b.size+segmentMask)>>SegmentBits {
		b.segments = b.segments[:len(b.segments)-1]
	}

	return removed, true
}

// Truncate shortens the list to the given size. It panics if the new size is negative or larger
// than the current size.
func (b *BigList[T]) Truncate(size int64) {
	if size < 0 || size > b.size {
		panic(fmt.Sprintf("biglist: truncate size %d outside [0, %d]", size, b.size))
	}

	var zero T
	for i := size; i < b.size; i++ {
		b.segments[i>>SegmentBits][i&segmentMask] = zero
	}
	b.size = size

	for int64(len(b.segments)) > (b.size+segmentMask)>>SegmentBits {
		b.segments = b.segments[:len(b.segments)-1]
	}
}

// ForEach iterates through the list in index order and calls the consumer for every element.
// Returning false from the consumer aborts the iteration.
func (b *BigList[T]) ForEach(callback func(element T) bool) {
	for index := int64(0); index < b.size; index++ {
		if !callback(b.segments[index>>SegmentBits][index&segmentMask]) {
			return
		}
	}
}

// ForEachSegment iterates through the filled parts of the underlying segments. The passed slices
// alias the backing storage and are the unit of parallel traversal over a BigList.
// Returning false from the consumer aborts the iteration.
func (b *BigList[T]) ForEachSegment(callback func(segment []T) bool) {
	for i, segment := range b.segments {
		filled := b.size - int64(i)<<SegmentBits
		if filled > SegmentSize {
			filled = SegmentSize
		}
		if filled <= 0 {
			return
		}

		if !callback(segment[:filled]) {
			return
		}
	}
}

// Size returns the number of elements in the list.
func (b *BigList[T]) Size() int64 {
	return b.size
}

// IsEmpty returns true if the list is empty.
func (b *BigList[T]) IsEmpty() bool {
	return b.size == 0
}

// Clear removes all elements from the list and releases the segments.
func (b *BigList[T]) Clear() {
	b.segments = nil
	b.size = 0
}

func (b *BigList[T]) checkIndex(index int64) {
	if index < 0 || index >= b.size {
		panic(fmt.Sprintf("biglist: index %d out of range [0, %d)", index, b.size))
	}
}
