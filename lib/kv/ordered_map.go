package kv

import (
	"errors"
	"iter"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/benz9527/xcontainer/lib/infra"
	"github.com/benz9527/xcontainer/lib/tree"
)

var _ OrderedMap[string, int] = (*Map[string, int])(nil) // Type check assertion

var ErrMapKeyNotFound = errors.New("[map] key not found")

// Map keeps unique keys in a binary search tree of pairs.
type Map[K, V any] struct {
	tree   *tree.Tree[Pair[K, V]]
	less   infra.LessComparator[K]
	logger *zap.Logger
}

type MapOption[K, V any] func(*Map[K, V])

func WithMapDesc[K, V any]() MapOption[K, V] {
	return func(m *Map[K, V]) {
		m.less = m.less.Reverse()
	}
}

func WithMapLogger[K, V any](logger *zap.Logger) MapOption[K, V] {
	return func(m *Map[K, V]) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func pairLess[K, V any](less infra.LessComparator[K]) infra.LessComparator[Pair[K, V]] {
	return func(i, j Pair[K, V]) bool {
		return less(i.Key, j.Key)
	}
}

func NewMapFunc[K, V any](less infra.LessComparator[K], opts ...MapOption[K, V]) *Map[K, V] {
	if less == nil {
		panic( /* debug assertion */ "[map] nil key comparator")
	}
	m := &Map[K, V]{
		less:   less,
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		if o != nil {
			o(m)
		}
	}
	m.tree = tree.New[Pair[K, V]](
		pairLess[K, V](m.less),
		tree.WithTreeLogger[Pair[K, V]](m.logger),
	)
	return m
}

func NewMap[K infra.OrderedKey, V any](opts ...MapOption[K, V]) *Map[K, V] {
	return NewMapFunc[K, V](infra.NaturalLess[K], opts...)
}

func (m *Map[K, V]) iterator(it tree.Iterator[Pair[K, V]]) MapIterator[K, V] {
	return MapIterator[K, V]{it: it}
}

func (m *Map[K, V]) Len() int64 {
	return m.tree.Len()
}

func (m *Map[K, V]) Empty() bool {
	return m.tree.Empty()
}

func (m *Map[K, V]) MaxSize() int64 {
	return m.tree.MaxSize()
}

func (m *Map[K, V]) Insert(pair Pair[K, V]) (MapIterator[K, V], bool) {
	it, inserted := m.tree.InsertUnique(pair)
	return m.iterator(it), inserted
}

func (m *Map[K, V]) InsertKV(key K, value V) (MapIterator[K, V], bool) {
	return m.Insert(Pair[K, V]{Key: key, Value: value})
}

func (m *Map[K, V]) InsertOrAssign(key K, value V) (MapIterator[K, V], bool) {
	it, inserted := m.tree.InsertUnique(Pair[K, V]{Key: key, Value: value})
	if !inserted {
		it.Ref().Value = value
	}
	return m.iterator(it), inserted
}

// InsertMany inserts every pair in argument order. It is not atomic,
// earlier pairs stay inserted whatever happens to later ones.
func (m *Map[K, V]) InsertMany(pairs ...Pair[K, V]) []InsertResult[K, V] {
	return lo.Map(pairs, func(pair Pair[K, V], _ int) InsertResult[K, V] {
		it, inserted := m.Insert(pair)
		return InsertResult[K, V]{Iter: it, Inserted: inserted}
	})
}

func (m *Map[K, V]) Erase(it MapIterator[K, V]) {
	m.tree.Erase(it.it)
}

func (m *Map[K, V]) EraseKey(key K) bool {
	return m.tree.EraseKey(Pair[K, V]{Key: key}) > 0
}

func (m *Map[K, V]) At(key K) (V, error) {
	it := m.tree.Find(Pair[K, V]{Key: key})
	if it.IsEnd() {
		m.logger.Debug("[map] access a missing key", zap.Any("key", key))
		var zero V
		return zero, infra.WrapErrorStack(ErrMapKeyNotFound)
	}
	return it.Ref().Value, nil
}

func (m *Map[K, V]) Index(key K) *V {
	it, _ := m.tree.InsertUnique(Pair[K, V]{Key: key})
	return &it.Ref().Value
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	it := m.tree.Find(Pair[K, V]{Key: key})
	if it.IsEnd() {
		var zero V
		return zero, false
	}
	return it.Ref().Value, true
}

func (m *Map[K, V]) Find(key K) MapIterator[K, V] {
	return m.iterator(m.tree.Find(Pair[K, V]{Key: key}))
}

func (m *Map[K, V]) Contains(key K) bool {
	return m.tree.Contains(Pair[K, V]{Key: key})
}

func (m *Map[K, V]) LowerBound(key K) MapIterator[K, V] {
	return m.iterator(m.tree.LowerBound(Pair[K, V]{Key: key}))
}

func (m *Map[K, V]) UpperBound(key K) MapIterator[K, V] {
	return m.iterator(m.tree.UpperBound(Pair[K, V]{Key: key}))
}

func (m *Map[K, V]) Begin() MapIterator[K, V] {
	return m.iterator(m.tree.Begin())
}

func (m *Map[K, V]) End() MapIterator[K, V] {
	return m.iterator(m.tree.End())
}

func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := range m.tree.All() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := range m.tree.Backward() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := range m.tree.All() {
			if !yield(p.Key) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for p := range m.tree.All() {
			if !yield(p.Value) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// Merge moves every pair of other whose key is absent from m.
// Pairs with duplicate keys stay in other.
func (m *Map[K, V]) Merge(other *Map[K, V]) {
	if other == nil {
		return
	}
	m.tree.MergeUnique(other.tree)
}

func (m *Map[K, V]) Swap(other *Map[K, V]) {
	if other == nil || other == m {
		return
	}
	m.tree.Swap(other.tree)
	m.less, other.less = other.less, m.less
}

// Clone deep copies the pairs. Values are copied by assignment.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		tree:   m.tree.Clone(),
		less:   m.less,
		logger: m.logger,
	}
}

func (m *Map[K, V]) Assign(other *Map[K, V]) {
	if other == nil || other == m {
		return
	}
	m.tree.Assign(other.tree)
	m.less = other.less
}

func (m *Map[K, V]) MoveFrom(other *Map[K, V]) {
	if other == nil || other == m {
		return
	}
	m.tree.MoveFrom(other.tree)
	m.less = other.less
}
