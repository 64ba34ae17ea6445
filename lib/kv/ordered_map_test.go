package kv

import (
	randv2 "math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/benz9527/xcontainer/lib/tree"
)

func keysOf[K, V any](m *Map[K, V]) []K {
	return slices.Collect(m.Keys())
}

func TestMap_InsertAndLookup(t *testing.T) {
	m := NewMap[int, string]()
	require.True(t, m.Empty())

	it, inserted := m.InsertKV(2, "two")
	require.True(t, inserted)
	require.Equal(t, 2, it.Key())
	require.Equal(t, "two", it.Value())

	it, inserted = m.Insert(Pair[int, string]{Key: 2, Value: "deux"})
	require.False(t, inserted)
	require.Equal(t, "two", it.Value())

	it, inserted = m.InsertOrAssign(2, "zwei")
	require.False(t, inserted)
	require.Equal(t, "zwei", it.Value())
	_, inserted = m.InsertOrAssign(1, "one")
	require.True(t, inserted)

	v, ok := m.Get(2)
	require.True(t, ok)
	require.Equal(t, "zwei", v)
	_, ok = m.Get(3)
	require.False(t, ok)
	require.True(t, m.Contains(1))
	require.True(t, m.Find(3).IsEnd())
	require.Equal(t, int64(2), m.Len())
	require.Equal(t, []int{1, 2}, keysOf(m))
	require.Greater(t, m.MaxSize(), int64(0))
}

func TestMap_AtMissingKey(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := NewMap[string, int](WithMapLogger[string, int](zap.New(core)))
	m.InsertKV("a", 1)

	v, err := m.At("a")
	require.NoError(t, err)
	require.Equal(t, 1, v)

	_, err = m.At("missing")
	require.ErrorIs(t, err, ErrMapKeyNotFound)
	entries := logs.FilterMessage("[map] access a missing key").All()
	require.Len(t, entries, 1)
	require.Equal(t, "missing", entries[0].ContextMap()["key"])
	require.Equal(t, int64(1), m.Len())
}

func TestMap_IndexInsertsZeroValue(t *testing.T) {
	m := NewMap[string, int]()
	p := m.Index("hits")
	require.NotNil(t, p)
	require.Equal(t, 0, *p)
	require.Equal(t, int64(1), m.Len())

	*p += 3
	*m.Index("hits") += 2
	v, err := m.At("hits")
	require.NoError(t, err)
	require.Equal(t, 5, v)
	require.Equal(t, int64(1), m.Len())
}

func TestMap_ValueMutationKeepsOrder(t *testing.T) {
	m := NewMap[int, int]()
	for _, k := range []int{5, 7, 4, 3, 8, 1, 2, 6, 9} {
		m.InsertKV(k, k)
	}
	for it := m.Begin(); !it.IsEnd(); it = it.Next() {
		it.SetValue(-it.Value() * 10)
	}
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, keysOf(m))
	require.Equal(t, []int{-10, -20, -30, -40, -50, -60, -70, -80, -90}, slices.Collect(m.Values()))
	require.NoError(t, tree.Validate(m.tree, true))
}

func TestMap_MergeScenario(t *testing.T) {
	m := NewMap[int, int]()
	m.InsertMany(
		Pair[int, int]{Key: 1, Value: 1},
		Pair[int, int]{Key: 4, Value: 4},
		Pair[int, int]{Key: 2, Value: 2},
	)
	other := NewMap[int, int]()
	other.InsertMany(
		Pair[int, int]{Key: 3, Value: 3},
		Pair[int, int]{Key: 4, Value: 40},
	)

	m.Merge(other)
	require.Equal(t, []int{1, 2, 3, 4}, keysOf(m))
	v, err := m.At(4)
	require.NoError(t, err)
	require.Equal(t, 4, v)
	require.Equal(t, []int{4}, keysOf(other))
	require.Equal(t, int64(1), other.Len())
	require.NoError(t, tree.Validate(m.tree, true))
	require.NoError(t, tree.Validate(other.tree, true))
}

func TestMap_InsertManyResults(t *testing.T) {
	m := NewMap[int, string]()
	res := m.InsertMany(
		Pair[int, string]{Key: 1, Value: "a"},
		Pair[int, string]{Key: 1, Value: "b"},
		Pair[int, string]{Key: 2, Value: "c"},
	)
	require.Len(t, res, 3)
	require.Equal(t, []bool{true, false, true}, lo.Map(res, func(r InsertResult[int, string], _ int) bool {
		return r.Inserted
	}))
	require.True(t, res[0].Iter.Equal(res[1].Iter))
	require.Equal(t, "a", res[1].Iter.Value())
	require.Empty(t, m.InsertMany())
}

func TestMap_EraseAndIterate(t *testing.T) {
	m := NewMap[int, int]()
	for _, k := range lo.Range(10) {
		m.InsertKV(k, k*k)
	}
	require.True(t, m.EraseKey(3))
	require.False(t, m.EraseKey(3))
	m.Erase(m.Find(0))
	m.Erase(m.End())

	require.Equal(t, 4, m.LowerBound(3).Key())
	require.Equal(t, 5, m.UpperBound(4).Key())
	require.True(t, m.UpperBound(9).IsEnd())
	require.Equal(t, 9, m.End().Prev().Key())
	require.Equal(t, Pair[int, int]{Key: 1, Value: 1}, m.Begin().Pair())

	keys := make([]int, 0, 8)
	for k, v := range m.All() {
		require.Equal(t, k*k, v)
		keys = append(keys, k)
	}
	require.Equal(t, []int{1, 2, 4, 5, 6, 7, 8, 9}, keys)

	backward := make([]int, 0, 8)
	for k := range m.Backward() {
		backward = append(backward, k)
	}
	slices.Reverse(backward)
	require.Equal(t, keys, backward)

	m.Clear()
	require.True(t, m.Empty())
	require.True(t, m.Begin().IsEnd())
}

func TestMap_CustomComparatorAndDesc(t *testing.T) {
	fold := NewMapFunc[string, int](func(i, j string) bool {
		return strings.ToLower(i) < strings.ToLower(j)
	})
	fold.InsertKV("Go", 1)
	_, inserted := fold.InsertKV("GO", 2)
	require.False(t, inserted)
	require.True(t, fold.Contains("go"))

	desc := NewMap[int, struct{}](WithMapDesc[int, struct{}]())
	for _, k := range []int{2, 3, 1} {
		desc.InsertKV(k, struct{}{})
	}
	require.Equal(t, []int{3, 2, 1}, keysOf(desc))
	require.Panics(t, func() { NewMapFunc[int, int](nil) })
}

func TestMap_CloneAssignMoveSwap(t *testing.T) {
	m := NewMap[int, []int]()
	m.InsertKV(1, []int{1})
	m.InsertKV(2, []int{2})

	c := m.Clone()
	c.InsertOrAssign(1, []int{100})
	c.EraseKey(2)
	v, _ := m.Get(1)
	require.Equal(t, []int{1}, v)
	require.Equal(t, int64(2), m.Len())
	require.Equal(t, int64(1), c.Len())

	a := NewMap[int, []int]()
	a.Assign(m)
	require.Equal(t, keysOf(m), keysOf(a))

	moved := NewMap[int, []int]()
	moved.InsertKV(42, nil)
	moved.MoveFrom(a)
	require.Equal(t, []int{1, 2}, keysOf(moved))
	require.True(t, a.Empty())

	moved.Swap(c)
	require.Equal(t, []int{1}, keysOf(moved))
	require.Equal(t, []int{1, 2}, keysOf(c))
}

func TestMap_AgainstGodsTreeMap(t *testing.T) {
	r := randv2.New(randv2.NewPCG(17, 29))
	m := NewMap[int, int]()
	oracle := treemap.NewWithIntComparator()

	for i := 0; i < 4096; i++ {
		k := r.IntN(512)
		switch op := r.IntN(4); op {
		case 0, 1:
			m.InsertOrAssign(k, i)
			oracle.Put(k, i)
		case 2:
			_, found := oracle.Get(k)
			require.Equal(t, found, m.EraseKey(k))
			oracle.Remove(k)
		default:
			expected, found := oracle.Get(k)
			actual, ok := m.Get(k)
			require.Equal(t, found, ok)
			if found {
				require.Equal(t, expected, actual)
			}
			ceilKey, _ := oracle.Ceiling(k)
			if lb := m.LowerBound(k); ceilKey == nil {
				require.True(t, lb.IsEnd())
			} else {
				require.Equal(t, ceilKey, lb.Key())
			}
		}
		require.Equal(t, int64(oracle.Size()), m.Len())
	}

	keys := lo.Map(oracle.Keys(), func(k interface{}, _ int) int { return k.(int) })
	require.Equal(t, keys, keysOf(m))
	values := lo.Map(oracle.Values(), func(v interface{}, _ int) int { return v.(int) })
	require.Equal(t, values, slices.Collect(m.Values()))
	require.NoError(t, tree.Validate(m.tree, true))
}
