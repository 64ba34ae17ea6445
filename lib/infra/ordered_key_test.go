package infra

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaturalAndDescLess(t *testing.T) {
	assert.True(t, NaturalLess(1, 2))
	assert.False(t, NaturalLess(2, 2))
	assert.True(t, DescLess("b", "a"))
	assert.False(t, DescLess("a", "a"))

	keys := []float64{3.5, -1, 2.25, 0}
	sort.Slice(keys, func(i, j int) bool { return DescLess(keys[i], keys[j]) })
	require.Equal(t, []float64{3.5, 2.25, 0, -1}, keys)
}

func TestLessComparatorEquivalent(t *testing.T) {
	type person struct {
		name string
		age  int
	}
	var byAge LessComparator[person] = func(i, j person) bool { return i.age < j.age }
	require.True(t, byAge.Equivalent(person{"a", 10}, person{"b", 10}))
	require.False(t, byAge.Equivalent(person{"a", 10}, person{"a", 11}))

	rev := byAge.Reverse()
	require.True(t, rev(person{age: 11}, person{age: 10}))
	require.False(t, rev(person{age: 10}, person{age: 10}))
}

func TestMaxSizeOf(t *testing.T) {
	require.Equal(t, int64(math.MaxInt64/8/2), MaxSizeOf(8))
	require.Equal(t, int64(math.MaxInt64/2), MaxSizeOf(0))
	require.Equal(t, MaxSizeOf(8), MaxSizeFor[int64]())
	require.Greater(t, MaxSizeFor[byte](), MaxSizeFor[[4]int64]())
}
