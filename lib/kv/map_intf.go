package kv

import "iter"

// Pair is the element stored by Map. Only Key takes part in ordering.
type Pair[K, V any] struct {
	Key   K
	Value V
}

type InsertResult[K, V any] struct {
	Iter     MapIterator[K, V]
	Inserted bool
}

// OrderedMap is a unique-key associative container sorted by key.
// It is not thread safe.
type OrderedMap[K, V any] interface {
	Len() int64
	Empty() bool
	MaxSize() int64
	Insert(pair Pair[K, V]) (MapIterator[K, V], bool)
	InsertKV(key K, value V) (MapIterator[K, V], bool)
	// InsertOrAssign overwrites the value of an existing key in place.
	// The bool is true when a new key was inserted.
	InsertOrAssign(key K, value V) (MapIterator[K, V], bool)
	InsertMany(pairs ...Pair[K, V]) []InsertResult[K, V]
	Erase(it MapIterator[K, V])
	EraseKey(key K) bool
	// At returns ErrMapKeyNotFound if the key is absent.
	At(key K) (V, error)
	// Index returns the address of the value of key, inserting the zero
	// value first if the key is absent.
	Index(key K) *V
	Get(key K) (V, bool)
	Find(key K) MapIterator[K, V]
	Contains(key K) bool
	LowerBound(key K) MapIterator[K, V]
	UpperBound(key K) MapIterator[K, V]
	Begin() MapIterator[K, V]
	End() MapIterator[K, V]
	All() iter.Seq2[K, V]
	Keys() iter.Seq[K]
	Values() iter.Seq[V]
	Clear()
}
