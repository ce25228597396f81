package lo

import (
	"github.com/typecomb/comb.go/constraints"
)

// Cond is a conditional statement that returns the trueValue if the condition is true and the falseValue otherwise.
func Cond[T any](condition bool, trueValue, falseValue T) T {
	if condition {
		return trueValue
	}

	return falseValue
}

// Map iterates over elements of collection, applies the mapper function to each element
// and returns an array of modified TargetType elements.
func Map[SourceType any, TargetType any](source []SourceType, mapper func(SourceType) TargetType) (target []TargetType) {
	target = make([]TargetType, len(source))
	for i, value := range source {
		target[i] = mapper(value)
	}

	return target
}

// Filter iterates over elements of collection, returning an array of all elements predicate returns truthy for.
func Filter[V any](collection []V, predicate func(V) bool) []V {
	var result []V

	for _, item := range collection {
		if predicate(item) {
			result = append(result, item)
		}
	}

	return result
}

// Reduce reduces collection to a value which is the accumulated result of running each element in collection
// through accumulator, where each successive invocation is supplied the return value of the previous.
func Reduce[T any, R any](collection []T, accumulator func(R, T) R, initial R) R {
	for _, item := range collection {
		initial = accumulator(initial, item)
	}

	return initial
}

// Equal checks if two slices are equal.
func Equal[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}

	for i, value := range a {
		if value != b[i] {
			return false
		}
	}

	return true
}

// Keys creates an array of the map keys.
func Keys[K comparable, V any](in map[K]V) []K {
	result := make([]K, 0, len(in))

	for k := range in {
		result = append(result, k)
	}

	return result
}

// Values creates an array of the map values.
func Values[K comparable, V any](in map[K]V) []V {
	result := make([]V, 0, len(in))

	for _, v := range in {
		result = append(result, v)
	}

	return result
}

// First returns the first element of the slice or an optionally provided default value if the collection is empty (if
// no default value is provided, the zero value of the collection's element type is returned).
func First[T any](slice []T, optDefaultValue ...T) (firstElement T) {
	if len(slice) == 0 {
		if len(optDefaultValue) == 0 {
			return
		}

		return optDefaultValue[0]
	}

	return slice[0]
}

// ForEach iterates over elements of collection and invokes iteratee for each element.
func ForEach[T any](collection []T, iteratee func(T)) {
	for _, item := range collection {
		iteratee(item)
	}
}

// Partition splits the given slice into at most count contiguous chunks of near-equal size. It is
// the splitting primitive behind the Split methods of the indexed containers.
func Partition[T any](slice []T, count int) [][]T {
	if count <= 0 {
		return nil
	}

	if count > len(slice) {
		count = len(slice)
	}

	if count == 0 {
		return nil
	}

	chunks := make([][]T, 0, count)
	chunkSize := len(slice) / count
	remainder := len(slice) % count

	start := 0
	for i := 0; i < count; i++ {
		end := start + chunkSize
		if i < remainder {
			end++
		}

		chunks = append(chunks, slice[start:end])
		start = end
	}

	return chunks
}

// Return1 returns the first of the given parameters (to strip the remaining return values of a multi-value function).
func Return1[T any](t T, _ ...any) T {
	return t
}

// Return2 returns the second of the given parameters.
func Return2[T any](_ any, t T, _ ...any) T {
	return t
}

// PanicOnErr panics if the second parameter is an error and returns the first parameter otherwise.
func PanicOnErr[T any](result T, err error) T {
	if err != nil {
		panic(err)
	}

	return result
}

// Max returns the maximum value of the collection.
func Max[T constraints.Ordered](collection ...T) T {
	var maxElem T
	if len(collection) == 0 {
		return maxElem
	}

	maxElem = collection[0]

	return Reduce(collection, func(currentMax, value T) T {
		if Comparator(value, currentMax) > 0 {
			return value
		}

		return currentMax
	}, maxElem)
}

// Min returns the minimum value of the collection.
func Min[T constraints.Ordered](collection ...T) T {
	var minElem T
	if len(collection) == 0 {
		return minElem
	}

	minElem = collection[0]

	return Reduce(collection, func(currentMin, value T) T {
		if Comparator(value, currentMin) < 0 {
			return value
		}

		return currentMin
	}, minElem)
}

// Sum returns the sum of the collection.
func Sum[T constraints.Numeric](collection ...T) T {
	var sumElem T

	return Reduce(collection, func(sum, value T) T {
		return sum + value
	}, sumElem)
}
