package list

// NodeElement is a single element of a List. The value is exported and
// may be mutated in place; the links are owned by the list.
type NodeElement[T any] struct {
	prev, next *NodeElement[T]
	sentinel   *NodeElement[T] // the root of the owning list, nil once unlinked
	Value      T // The type of value may be a small size type.
	// It should be placed at the end of the struct to avoid taking too much padding.
}

func newNodeElement[T any](v T, sentinel *NodeElement[T]) *NodeElement[T] {
	return &NodeElement[T]{
		Value:    v,
		sentinel: sentinel,
	}
}

func (e *NodeElement[T]) HasNext() bool {
	if e == nil || e.sentinel == nil {
		return false
	}
	return e.next != e.sentinel
}

func (e *NodeElement[T]) HasPrev() bool {
	if e == nil || e.sentinel == nil {
		return false
	}
	return e.prev != e.sentinel
}

// Next returns the next element or nil at the end of the list.
func (e *NodeElement[T]) Next() *NodeElement[T] {
	if !e.HasNext() {
		return nil
	}
	return e.next
}

// Prev returns the previous element or nil at the front of the list.
func (e *NodeElement[T]) Prev() *NodeElement[T] {
	if !e.HasPrev() {
		return nil
	}
	return e.prev
}
