package list

import "iter"

// LinkedList is the doubly linked list interface.
// Note that the list is not thread safe.
type LinkedList[T any] interface {
	Len() int64
	Empty() bool
	MaxSize() int64
	// Front returns the first value or ErrListEmpty.
	Front() (T, error)
	// Back returns the last value or ErrListEmpty.
	Back() (T, error)
	// FrontElement returns the first element or nil if the list is empty.
	FrontElement() *NodeElement[T]
	// BackElement returns the last element or nil if the list is empty.
	BackElement() *NodeElement[T]
	PushFront(v T) *NodeElement[T]
	PushBack(v T) *NodeElement[T]
	PopFront() (T, error)
	PopBack() (T, error)
	// Insert inserts v immediately before at. A nil at means the end of the list.
	Insert(at *NodeElement[T], v T) *NodeElement[T]
	// InsertMany inserts the values before at, keeping their argument order,
	// and returns the first new element.
	InsertMany(at *NodeElement[T], values ...T) *NodeElement[T]
	InsertManyFront(values ...T)
	InsertManyBack(values ...T)
	// Erase unlinks e and returns the element that followed it.
	Erase(e *NodeElement[T]) *NodeElement[T]
	// Splice moves every element of other before at. other ends empty.
	Splice(at *NodeElement[T], other *List[T])
	// Merge merges the sorted other into the sorted list. other ends empty.
	Merge(other *List[T])
	// Unique removes every element equivalent to its immediate predecessor.
	Unique() int64
	Sort()
	Reverse()
	Clear()
	// Foreach traverses the list and allows erasing the visited element.
	// If fn returns an error, the traversal stops and returns the error.
	Foreach(fn func(idx int64, e *NodeElement[T]) error) error
	All() iter.Seq[T]
	Backward() iter.Seq[T]
}
