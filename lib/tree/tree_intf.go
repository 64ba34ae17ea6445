package tree

import (
	"iter"
)

type Direction int8

const (
	Left Direction = -1 + iota
	Root
	Right
)

// OrderedTree is the contract shared by the ordered associative containers.
// Uniqueness is not a property of the tree itself: unique containers only use
// InsertUnique/MergeUnique, multi-key containers only InsertMulti/MergeMulti.
type OrderedTree[K any] interface {
	Len() int64
	Empty() bool
	MaxSize() int64

	InsertUnique(key K) (Iterator[K], bool)
	InsertMulti(key K) Iterator[K]
	InsertOrAssign(key K) (Iterator[K], bool)
	Erase(it Iterator[K])
	EraseKey(key K) int

	Find(key K) Iterator[K]
	Contains(key K) bool
	Count(key K) int
	LowerBound(key K) Iterator[K]
	UpperBound(key K) Iterator[K]
	EqualRange(key K) (Iterator[K], Iterator[K])

	Begin() Iterator[K]
	End() Iterator[K]
	Last() Iterator[K]
	All() iter.Seq[K]
	Backward() iter.Seq[K]
	Foreach(action func(idx int64, key K) bool)

	Clear()
}
