package set

import (
	"github.com/samber/lo"

	"github.com/benz9527/xcontainer/lib/infra"
)

var _ OrderedSet[int] = (*Set[int])(nil) // Type check assertion

// Set keeps unique keys in sorted order.
type Set[K any] struct {
	base[K]
}

func NewFunc[K any](less infra.LessComparator[K], opts ...SetOption[K]) *Set[K] {
	return &Set[K]{base: base[K]{tree: newTree[K](less, opts...)}}
}

func New[K infra.OrderedKey](opts ...SetOption[K]) *Set[K] {
	return NewFunc[K](infra.NaturalLess[K], opts...)
}

// Insert returns the position of key and whether it was added.
func (s *Set[K]) Insert(key K) (Iterator[K], bool) {
	it, inserted := s.tree.InsertUnique(key)
	return s.iterator(it), inserted
}

type InsertResult[K any] struct {
	Iter     Iterator[K]
	Inserted bool
}

// InsertMany inserts the keys in argument order, one Insert per key.
func (s *Set[K]) InsertMany(keys ...K) []InsertResult[K] {
	return lo.Map(keys, func(key K, _ int) InsertResult[K] {
		it, inserted := s.Insert(key)
		return InsertResult[K]{Iter: it, Inserted: inserted}
	})
}

// Merge moves every key of other absent from s. Duplicates stay in other.
func (s *Set[K]) Merge(other *Set[K]) {
	if other == nil {
		return
	}
	s.tree.MergeUnique(other.tree)
}

func (s *Set[K]) Swap(other *Set[K]) {
	if other == nil {
		return
	}
	s.tree.Swap(other.tree)
}

func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{base: base[K]{tree: s.tree.Clone()}}
}

func (s *Set[K]) Assign(other *Set[K]) {
	if other == nil {
		return
	}
	s.tree.Assign(other.tree)
}

func (s *Set[K]) MoveFrom(other *Set[K]) {
	if other == nil {
		return
	}
	s.tree.MoveFrom(other.tree)
}
