package set

import (
	"iter"

	"go.uber.org/zap"

	"github.com/benz9527/xcontainer/lib/infra"
	"github.com/benz9527/xcontainer/lib/tree"
)

// OrderedSet is the surface shared by Set and Multiset.
// Neither is thread safe.
type OrderedSet[K any] interface {
	Len() int64
	Empty() bool
	MaxSize() int64
	Erase(it Iterator[K])
	// EraseKey removes every element equivalent to key and returns the count.
	EraseKey(key K) int
	Find(key K) Iterator[K]
	Contains(key K) bool
	Count(key K) int
	LowerBound(key K) Iterator[K]
	UpperBound(key K) Iterator[K]
	EqualRange(key K) (Iterator[K], Iterator[K])
	Begin() Iterator[K]
	End() Iterator[K]
	All() iter.Seq[K]
	Backward() iter.Seq[K]
	Slice() []K
	Clear()
}

// Iterator is a read only position in a Set or Multiset.
type Iterator[K any] struct {
	it tree.Iterator[K]
}

func (it Iterator[K]) IsEnd() bool {
	return it.it.IsEnd()
}

func (it Iterator[K]) Equal(other Iterator[K]) bool {
	return it.it.Equal(other.it)
}

func (it Iterator[K]) Next() Iterator[K] {
	return Iterator[K]{it: it.it.Next()}
}

func (it Iterator[K]) Prev() Iterator[K] {
	return Iterator[K]{it: it.it.Prev()}
}

func (it Iterator[K]) Key() K {
	return it.it.Key()
}

type setOptions[K any] struct {
	less   infra.LessComparator[K]
	logger *zap.Logger
}

type SetOption[K any] func(*setOptions[K])

func WithSetDesc[K any]() SetOption[K] {
	return func(o *setOptions[K]) {
		o.less = o.less.Reverse()
	}
}

func WithSetLogger[K any](logger *zap.Logger) SetOption[K] {
	return func(o *setOptions[K]) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newTree[K any](less infra.LessComparator[K], opts ...SetOption[K]) *tree.Tree[K] {
	if less == nil {
		panic( /* debug assertion */ "[set] nil key comparator")
	}
	o := &setOptions[K]{less: less, logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return tree.New[K](o.less, tree.WithTreeLogger[K](o.logger))
}

// base holds the operations that behave the same for unique and multi trees.
type base[K any] struct {
	tree *tree.Tree[K]
}

func (b *base[K]) iterator(it tree.Iterator[K]) Iterator[K] {
	return Iterator[K]{it: it}
}

func (b *base[K]) Len() int64 {
	return b.tree.Len()
}

func (b *base[K]) Empty() bool {
	return b.tree.Empty()
}

func (b *base[K]) MaxSize() int64 {
	return b.tree.MaxSize()
}

func (b *base[K]) Erase(it Iterator[K]) {
	b.tree.Erase(it.it)
}

func (b *base[K]) EraseKey(key K) int {
	return b.tree.EraseKey(key)
}

func (b *base[K]) Find(key K) Iterator[K] {
	return b.iterator(b.tree.Find(key))
}

func (b *base[K]) Contains(key K) bool {
	return b.tree.Contains(key)
}

func (b *base[K]) Count(key K) int {
	return b.tree.Count(key)
}

func (b *base[K]) LowerBound(key K) Iterator[K] {
	return b.iterator(b.tree.LowerBound(key))
}

func (b *base[K]) UpperBound(key K) Iterator[K] {
	return b.iterator(b.tree.UpperBound(key))
}

func (b *base[K]) EqualRange(key K) (Iterator[K], Iterator[K]) {
	first, last := b.tree.EqualRange(key)
	return b.iterator(first), b.iterator(last)
}

func (b *base[K]) Begin() Iterator[K] {
	return b.iterator(b.tree.Begin())
}

func (b *base[K]) End() Iterator[K] {
	return b.iterator(b.tree.End())
}

func (b *base[K]) All() iter.Seq[K] {
	return b.tree.All()
}

func (b *base[K]) Backward() iter.Seq[K] {
	return b.tree.Backward()
}

// Slice returns the keys in order.
func (b *base[K]) Slice() []K {
	keys := make([]K, 0, b.tree.Len())
	b.tree.Foreach(func(_ int64, key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (b *base[K]) Clear() {
	b.tree.Clear()
}
