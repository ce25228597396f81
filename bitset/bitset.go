package bitset

import (
	"fmt"
	"math/bits"
	"strings"
)

const wordBits = 64

// BitSet is a non concurrent-safe growable set of non-negative integers stored as bits in an
// array of words. It is the memory-efficient specialization of a boolean-valued set: membership,
// insertion and removal are O(1) and the whole-set operations work a word at a time.
type BitSet struct {
	words []uint64
}

// New creates a new BitSet with the given bits set.
func New(indexes ...int) *BitSet {
	b := &BitSet{}
	for _, index := range indexes {
		b.Set(index)
	}

	return b
}

// Set sets the bit at the given index and returns true if it was not set before. It panics if
// the index is negative.
func (b *BitSet) Set(index int) bool {
	b.checkIndex(index)
	b.grow(index)

	word, mask := index/wordBits, uint64(1)<<(index%wordBits)
	wasSet := b.words[word]&mask != 0
	b.words[word] |= mask

	return !wasSet
}

// Clear clears the bit at the given index and returns true if it was set before. It panics if
// the index is negative.
func (b *BitSet) Clear(index int) bool {
	b.checkIndex(index)

	word := index / wordBits
	if word >= len(b.words) {
		return false
	}

	mask := uint64(1) << (index % wordBits)
	wasSet := b.words[word]&mask != 0
	b.words[word] &^= mask

	return wasSet
}

// Flip inverts the bit at the given index and returns its new state. It panics if the index is
// negative.
func (b *BitSet) Flip(index int) bool {
	b.checkIndex(index)
	b.grow(index)

	word, mask := index/wordBits, uint64(1)<<(index%wordBits)
	b.words[word] ^= mask

	return b.words[word]&mask != 0
}

// Test returns whether the bit at the given index is set. It panics if the index is negative.
func (b *BitSet) Test(index int) bool {
	b.checkIndex(index)

	word := index / wordBits
	return word < len(b.words) && b.words[word]&(uint64(1)<<(index%wordBits)) != 0
}

// Count returns the number of set bits.
func (b *BitSet) Count() (count int) {
	for _, word := range b.words {
		count += bits.OnesCount64(word)
	}

	return count
}

// IsEmpty returns true if no bit is set.
func (b *BitSet) IsEmpty() bool {
	for _, word := range b.words {
		if word != 0 {
			return false
		}
	}

	return true
}

// And intersects the set with the given set in place.
func (b *BitSet) And(other *BitSet) *BitSet {
	for i := range b.words {
		if i < len(other.words) {
			b.words[i] &= other.words[i]
		} else {
			b.words[i] = 0
		}
	}

	return b
}

// Or unions the set with the given set in place.
func (b *BitSet) Or(other *BitSet) *BitSet {
	if len(other.words) > 0 {
		b.grow(len(other.words)*wordBits - 1)
	}
	for i, word := range other.words {
		b.words[i] |= word
	}

	return b
}

// AndNot removes all bits of the given set from the set in place.
func (b *BitSet) AndNot(other *BitSet) *BitSet {
	for i := range b.words {
		if i < len(other.words) {
			b.words[i] &^= other.words[i]
		}
	}

	return b
}

// ForEach iterates through the set bits in ascending order and calls the consumer for every set
// bit. Returning false from the consumer aborts the iteration.
func (b *BitSet) ForEach(callback func(index int) bool) {
	for i, word := range b.words {
		for word != 0 {
			index := i*wordBits + bits.TrailingZeros64(word)
			if !callback(index) {
				return
			}

			word &= word - 1
		}
	}
}

// ToSlice returns the indexes of all set bits in ascending order.
func (b *BitSet) ToSlice() []int {
	indexes := make([]int, 0, b.Count())
	b.ForEach(func(index int) bool {
		indexes = append(indexes, index)

		return true
	})

	return indexes
}

// Equals returns true if both sets contain exactly the same bits.
func (b *BitSet) Equals(other *BitSet) bool {
	longer, shorter := b.words, other.words
	if len(shorter) > len(longer) {
		longer, shorter = shorter, longer
	}

	for i, word := range longer {
		var otherWord uint64
		if i < len(shorter) {
			otherWord = shorter[i]
		}

		if word != otherWord {
			return false
		}
	}

	return true
}

// Clone returns a copy of the set.
func (b *BitSet) Clone() *BitSet {
	cloned := &BitSet{
		words: make([]uint64, len(b.words)),
	}
	copy(cloned.words, b.words)

	return cloned
}

func (b *BitSet) String() string {
	indexStrings := make([]string, 0, b.Count())
	b.ForEach(func(index int) bool {
		indexStrings = append(indexStrings, fmt.Sprintf("%d", index))

		return true
	})

	return fmt.Sprintf("BitSet(%s)", strings.Join(indexStrings, ", "))
}

// grow extends the word array so that it covers the given bit index.
func (b *BitSet) grow(index int) {
	needed := index/wordBits + 1
	if needed <= len(b.words) {
		return
	}

	grown := make([]uint64, needed)
	copy(grown, b.words)
	b.words = grown
}

func (b *BitSet) checkIndex(index int) {
	if index < 0 {
		panic(fmt.Sprintf("bitset: negative index %d", index))
	}
}
