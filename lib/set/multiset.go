package set

import (
	"github.com/samber/lo"

	"github.com/benz9527/xcontainer/lib/infra"
)

var _ OrderedSet[int] = (*Multiset[int])(nil) // Type check assertion

// Multiset keeps keys in sorted order and allows equivalent keys.
// Equivalent keys are kept in insertion order.
type Multiset[K any] struct {
	base[K]
}

func NewMultiFunc[K any](less infra.LessComparator[K], opts ...SetOption[K]) *Multiset[K] {
	return &Multiset[K]{base: base[K]{tree: newTree[K](less, opts...)}}
}

func NewMulti[K infra.OrderedKey](opts ...SetOption[K]) *Multiset[K] {
	return NewMultiFunc[K](infra.NaturalLess[K], opts...)
}

func (s *Multiset[K]) Insert(key K) Iterator[K] {
	return s.iterator(s.tree.InsertMulti(key))
}

func (s *Multiset[K]) InsertMany(keys ...K) []Iterator[K] {
	return lo.Map(keys, func(key K, _ int) Iterator[K] {
		return s.Insert(key)
	})
}

// Merge moves every key of other into s, other ends empty.
func (s *Multiset[K]) Merge(other *Multiset[K]) {
	if other == nil {
		return
	}
	s.tree.MergeMulti(other.tree)
}

func (s *Multiset[K]) Swap(other *Multiset[K]) {
	if other == nil {
		return
	}
	s.tree.Swap(other.tree)
}

func (s *Multiset[K]) Clone() *Multiset[K] {
	return &Multiset[K]{base: base[K]{tree: s.tree.Clone()}}
}

func (s *Multiset[K]) Assign(other *Multiset[K]) {
	if other == nil {
		return
	}
	s.tree.Assign(other.tree)
}

func (s *Multiset[K]) MoveFrom(other *Multiset[K]) {
	if other == nil {
		return
	}
	s.tree.MoveFrom(other.tree)
}
