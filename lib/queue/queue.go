package queue

import (
	"errors"
	"iter"
	"unsafe"

	"go.uber.org/zap"

	"github.com/benz9527/xcontainer/lib/infra"
)

var _ Container[struct{}] = (*Queue[struct{}])(nil) // Type check assertion

var ErrQueueEmpty = errors.New("[queue] empty")

// Queue is a FIFO container on a singly linked list with a tail
// pointer. It is not thread safe.
type Queue[T any] struct {
	head, tail *singlyNode[T]
	len        int64
	logger     *zap.Logger
}

type QueueOption[T any] func(*Queue[T])

func WithQueueLogger[T any](logger *zap.Logger) QueueOption[T] {
	return func(q *Queue[T]) {
		if logger != nil {
			q.logger = logger
		}
	}
}

func NewQueue[T any](opts ...QueueOption[T]) *Queue[T] {
	q := &Queue[T]{logger: zap.NewNop()}
	for _, o := range opts {
		if o != nil {
			o(q)
		}
	}
	return q
}

func (q *Queue[T]) Len() int64 {
	return q.len
}

func (q *Queue[T]) Empty() bool {
	return q.head == nil
}

func (q *Queue[T]) MaxSize() int64 {
	return infra.MaxSizeOf(unsafe.Sizeof(singlyNode[T]{}))
}

func (q *Queue[T]) Push(v T) {
	x := &singlyNode[T]{value: v}
	if q.tail == nil {
		q.head, q.tail = x, x
	} else {
		q.tail.next = x
		q.tail = x
	}
	q.len++
}

func (q *Queue[T]) Pop() (T, error) {
	if q.head == nil {
		var zero T
		return zero, infra.WrapErrorStack(ErrQueueEmpty)
	}
	x := q.head
	q.head, x.next = x.next, nil
	if q.head == nil {
		q.tail = nil
	}
	q.len--
	return x.value, nil
}

func (q *Queue[T]) Front() (T, error) {
	if q.head == nil {
		var zero T
		return zero, infra.WrapErrorStack(ErrQueueEmpty)
	}
	return q.head.value, nil
}

func (q *Queue[T]) Back() (T, error) {
	if q.tail == nil {
		var zero T
		return zero, infra.WrapErrorStack(ErrQueueEmpty)
	}
	return q.tail.value, nil
}

// InsertManyBack enqueues the values in argument order.
func (q *Queue[T]) InsertManyBack(values ...T) {
	for _, v := range values {
		q.Push(v)
	}
}

func (q *Queue[T]) Swap(other *Queue[T]) {
	if other == nil || other == q {
		return
	}
	q.head, other.head = other.head, q.head
	q.tail, other.tail = other.tail, q.tail
	q.len, other.len = other.len, q.len
}

func (q *Queue[T]) Clone() *Queue[T] {
	c := &Queue[T]{logger: q.logger}
	for x := q.head; x != nil; x = x.next {
		c.Push(x.value)
	}
	return c
}

// MoveFrom takes the values of other and leaves other empty.
func (q *Queue[T]) MoveFrom(other *Queue[T]) {
	if other == nil || other == q {
		return
	}
	q.Clear()
	q.head, q.tail, q.len = other.head, other.tail, other.len
	other.head, other.tail, other.len = nil, nil, 0
	q.logger.Debug("[queue] moved", zap.Int64("len", q.len))
}

func (q *Queue[T]) Clear() {
	released := q.len
	for x := q.head; x != nil; {
		x, x.next = x.next, nil
	}
	q.head = nil
	q.tail, q.len = nil, 0
	if released > 0 {
		q.logger.Debug("[queue] cleared", zap.Int64("released", released))
	}
}

// All yields from front to back.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := q.head; x != nil; x = x.next {
			if !yield(x.value) {
				return
			}
		}
	}
}
