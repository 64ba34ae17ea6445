package kv

import "github.com/benz9527/xcontainer/lib/tree"

// MapIterator references a pair of a Map, or the end position.
// The key is read only, the value may be replaced in place.
type MapIterator[K, V any] struct {
	it tree.Iterator[Pair[K, V]]
}

func (it MapIterator[K, V]) IsEnd() bool {
	return it.it.IsEnd()
}

func (it MapIterator[K, V]) Equal(other MapIterator[K, V]) bool {
	return it.it.Equal(other.it)
}

func (it MapIterator[K, V]) Next() MapIterator[K, V] {
	return MapIterator[K, V]{it: it.it.Next()}
}

func (it MapIterator[K, V]) Prev() MapIterator[K, V] {
	return MapIterator[K, V]{it: it.it.Prev()}
}

func (it MapIterator[K, V]) Key() K {
	return it.it.Ref().Key
}

func (it MapIterator[K, V]) Value() V {
	return it.it.Ref().Value
}

func (it MapIterator[K, V]) Pair() Pair[K, V] {
	return it.it.Key()
}

// SetValue never touches the key, so the position of the pair is kept.
func (it MapIterator[K, V]) SetValue(value V) {
	it.it.Ref().Value = value
}
