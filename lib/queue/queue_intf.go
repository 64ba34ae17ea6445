package queue

import "iter"

// Container is the capability set shared by Stack and Queue.
// Swap stays on the concrete types so mismatched containers are
// rejected at compile time.
type Container[T any] interface {
	Push(v T)
	Pop() (T, error)
	Len() int64
	Empty() bool
	MaxSize() int64
	// All yields the elements in pop order without removing them.
	All() iter.Seq[T]
}

type singlyNode[T any] struct {
	next  *singlyNode[T]
	value T
}
