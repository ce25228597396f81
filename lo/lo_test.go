package lo_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typecomb/comb.go/lo"
)

func TestCond(t *testing.T) {
	assert.Equal(t, "yes", lo.Cond(true, "yes", "no"))
	assert.Equal(t, "no", lo.Cond(false, "yes", "no"))
}

func TestMap(t *testing.T) {
	assert.Equal(t, []int{2, 4, 6}, lo.Map([]int{1, 2, 3}, func(x int) int { return x * 2 }))
	assert.Empty(t, lo.Map([]int{}, func(x int) int { return x }))
}

func TestFilter(t *testing.T) {
	assert.Equal(t, []int{2, 4}, lo.Filter([]int{1, 2, 3, 4}, func(x int) bool { return x%2 == 0 }))
	assert.Nil(t, lo.Filter([]int{1, 3}, func(x int) bool { return x%2 == 0 }))
}

func TestReduce(t *testing.T) {
	assert.Equal(t, 10, lo.Reduce([]int{1, 2, 3, 4}, func(acc, x int) int { return acc + x }, 0))
	assert.Equal(t, 42, lo.Reduce(nil, func(acc, x int) int { return acc + x }, 42))
}

func TestEqual(t *testing.T) {
	assert.True(t, lo.Equal([]int{1, 2}, []int{1, 2}))
	assert.False(t, lo.Equal([]int{1, 2}, []int{2, 1}))
	assert.False(t, lo.Equal([]int{1}, []int{1, 2}))
}

func TestKeysValues(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}

	keys := lo.Keys(m)
	sort.Strings(keys)
	assert.Equal(t, []string{"a", "b"}, keys)

	values := lo.Values(m)
	sort.Ints(values)
	assert.Equal(t, []int{1, 2}, values)
}

func TestFirst(t *testing.T) {
	assert.Equal(t, 1, lo.First([]int{1, 2, 3}))
	assert.Equal(t, 0, lo.First([]int{}))
	assert.Equal(t, 7, lo.First([]int{}, 7))
}

func TestPartition(t *testing.T) {
	chunks := lo.Partition([]int{1, 2, 3, 4, 5, 6, 7}, 3)
	require.Len(t, chunks, 3)
	assert.Equal(t, []int{1, 2, 3}, chunks[0])
	assert.Equal(t, []int{4, 5}, chunks[1])
	assert.Equal(t, []int{6, 7}, chunks[2])

	// never returns more chunks than elements
	assert.Len(t, lo.Partition([]int{1, 2}, 5), 2)

	assert.Nil(t, lo.Partition([]int{1, 2}, 0))
	assert.Nil(t, lo.Partition([]int{}, 3))
}

func TestReturnHelpers(t *testing.T) {
	assert.Equal(t, 1, lo.Return1(1, "ignored"))
	assert.Equal(t, "kept", lo.Return2(1, "kept"))

	assert.Equal(t, 3, lo.PanicOnErr(3, nil))
	assert.Panics(t, func() { lo.PanicOnErr(0, assert.AnError) })
}

func TestMinMaxSum(t *testing.T) {
	assert.Equal(t, 9, lo.Max(3, 9, 1))
	assert.Equal(t, 1, lo.Min(3, 9, 1))
	assert.Equal(t, 13, lo.Sum(3, 9, 1))

	assert.Equal(t, 0, lo.Max[int]())
	assert.Equal(t, 0, lo.Min[int]())
	assert.Equal(t, 0, lo.Sum[int]())
}

func TestComparator(t *testing.T) {
	assert.Equal(t, -1, lo.Comparator(1, 2))
	assert.Equal(t, 1, lo.Comparator("b", "a"))
	assert.Equal(t, 0, lo.Comparator(3.0, 3.0))
}

func TestBatch(t *testing.T) {
	var calls []int

	lo.Batch(
		func() { calls = append(calls, 1) },
		nil,
		func() { calls = append(calls, 2) },
	)()
	assert.Equal(t, []int{1, 2}, calls)

	calls = calls[:0]
	lo.BatchReverse(
		func() { calls = append(calls, 1) },
		func() { calls = append(calls, 2) },
	)()
	assert.Equal(t, []int{2, 1}, calls)
}
