package queue

import (
	"errors"
	"iter"
	"unsafe"

	"go.uber.org/zap"

	"github.com/benz9527/xcontainer/lib/infra"
)

var _ Container[struct{}] = (*Stack[struct{}])(nil) // Type check assertion

var ErrStackEmpty = errors.New("[stack] empty")

// Stack is a LIFO container on a singly linked list. It is not thread safe.
type Stack[T any] struct {
	top    *singlyNode[T]
	len    int64
	logger *zap.Logger
}

type StackOption[T any] func(*Stack[T])

func WithStackLogger[T any](logger *zap.Logger) StackOption[T] {
	return func(s *Stack[T]) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewStack[T any](opts ...StackOption[T]) *Stack[T] {
	s := &Stack[T]{logger: zap.NewNop()}
	for _, o := range opts {
		if o != nil {
			o(s)
		}
	}
	return s
}

func (s *Stack[T]) Len() int64 {
	return s.len
}

func (s *Stack[T]) Empty() bool {
	return s.top == nil
}

func (s *Stack[T]) MaxSize() int64 {
	return infra.MaxSizeOf(unsafe.Sizeof(singlyNode[T]{}))
}

func (s *Stack[T]) Push(v T) {
	s.top = &singlyNode[T]{next: s.top, value: v}
	s.len++
}

func (s *Stack[T]) Pop() (T, error) {
	if s.top == nil {
		var zero T
		return zero, infra.WrapErrorStack(ErrStackEmpty)
	}
	x := s.top
	s.top, x.next = x.next, nil
	s.len--
	return x.value, nil
}

func (s *Stack[T]) Top() (T, error) {
	if s.top == nil {
		var zero T
		return zero, infra.WrapErrorStack(ErrStackEmpty)
	}
	return s.top.value, nil
}

// InsertManyFront pushes the values in argument order, the last one
// ends on top.
func (s *Stack[T]) InsertManyFront(values ...T) {
	for _, v := range values {
		s.Push(v)
	}
}

func (s *Stack[T]) Swap(other *Stack[T]) {
	if other == nil || other == s {
		return
	}
	s.top, other.top = other.top, s.top
	s.len, other.len = other.len, s.len
}

// Clone returns a stack with copies of the values in the same order.
func (s *Stack[T]) Clone() *Stack[T] {
	c := &Stack[T]{len: s.len, logger: s.logger}
	tail := &c.top
	for x := s.top; x != nil; x = x.next {
		*tail = &singlyNode[T]{value: x.value}
		tail = &(*tail).next
	}
	return c
}

// MoveFrom takes the values of other and leaves other empty.
func (s *Stack[T]) MoveFrom(other *Stack[T]) {
	if other == nil || other == s {
		return
	}
	s.Clear()
	s.top, s.len = other.top, other.len
	other.top, other.len = nil, 0
	s.logger.Debug("[stack] moved", zap.Int64("len", s.len))
}

func (s *Stack[T]) Clear() {
	released := s.len
	for x := s.top; x != nil; {
		x, x.next = x.next, nil
	}
	s.top = nil
	s.len = 0
	if released > 0 {
		s.logger.Debug("[stack] cleared", zap.Int64("released", released))
	}
}

// All yields from top to bottom.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := s.top; x != nil; x = x.next {
			if !yield(x.value) {
				return
			}
		}
	}
}
