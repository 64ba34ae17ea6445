package vector

import (
	"errors"
	"iter"
	"unsafe"

	"go.uber.org/zap"

	"github.com/benz9527/xcontainer/lib/infra"
)

var (
	ErrVectorOutOfBounds = errors.New("[vector] index out of bounds")
	ErrVectorEmpty       = errors.New("[vector] empty")
	ErrVectorTooLarge    = errors.New("[vector] capacity exceeds max size")
)

// Vector is a growable array. The capacity doubles when it runs out.
// It is not thread safe.
type Vector[T any] struct {
	data   []T
	logger *zap.Logger
}

type VectorOption[T any] func(*Vector[T])

func WithVectorCapacity[T any](capacity int) VectorOption[T] {
	return func(vec *Vector[T]) {
		if capacity > cap(vec.data) {
			vec.data = make([]T, len(vec.data), capacity)
		}
	}
}

func WithVectorLogger[T any](logger *zap.Logger) VectorOption[T] {
	return func(vec *Vector[T]) {
		if logger != nil {
			vec.logger = logger
		}
	}
}

func New[T any](opts ...VectorOption[T]) *Vector[T] {
	vec := &Vector[T]{logger: zap.NewNop()}
	for _, o := range opts {
		if o != nil {
			o(vec)
		}
	}
	return vec
}

// From returns a vector holding copies of items.
func From[T any](items ...T) *Vector[T] {
	vec := New[T](WithVectorCapacity[T](len(items)))
	vec.data = append(vec.data, items...)
	return vec
}

func (vec *Vector[T]) Len() int {
	return len(vec.data)
}

func (vec *Vector[T]) Empty() bool {
	return len(vec.data) == 0
}

func (vec *Vector[T]) Capacity() int {
	return cap(vec.data)
}

func (vec *Vector[T]) MaxSize() int64 {
	var zero T
	return infra.MaxSizeOf(unsafe.Sizeof(zero))
}

// grow reallocates to at least minCap, doubling the current capacity.
func (vec *Vector[T]) grow(minCap int) {
	if minCap <= cap(vec.data) {
		return
	}
	newCap := cap(vec.data) << 1
	if newCap < minCap {
		newCap = minCap
	}
	data := make([]T, len(vec.data), newCap)
	copy(data, vec.data)
	vec.data = data
}

func (vec *Vector[T]) Reserve(capacity int) error {
	if int64(capacity) > vec.MaxSize() {
		return infra.WrapErrorStack(ErrVectorTooLarge)
	}
	if capacity > cap(vec.data) {
		data := make([]T, len(vec.data), capacity)
		copy(data, vec.data)
		vec.data = data
	}
	return nil
}

func (vec *Vector[T]) ShrinkToFit() {
	if len(vec.data) == cap(vec.data) {
		return
	}
	data := make([]T, len(vec.data))
	copy(data, vec.data)
	vec.data = data
}

func (vec *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(vec.data) {
		var zero T
		return zero, infra.WrapErrorStack(ErrVectorOutOfBounds)
	}
	return vec.data[i], nil
}

// Index is unchecked beyond Go's own slice bounds check.
func (vec *Vector[T]) Index(i int) *T {
	return &vec.data[i]
}

func (vec *Vector[T]) Front() (T, error) {
	if len(vec.data) == 0 {
		var zero T
		return zero, infra.WrapErrorStack(ErrVectorEmpty)
	}
	return vec.data[0], nil
}

func (vec *Vector[T]) Back() (T, error) {
	if len(vec.data) == 0 {
		var zero T
		return zero, infra.WrapErrorStack(ErrVectorEmpty)
	}
	return vec.data[len(vec.data)-1], nil
}

// Data exposes the elements. It is invalidated by any reallocation.
func (vec *Vector[T]) Data() []T {
	return vec.data
}

func (vec *Vector[T]) PushBack(v T) {
	vec.grow(len(vec.data) + 1)
	vec.data = append(vec.data, v)
}

func (vec *Vector[T]) PopBack() (T, error) {
	n := len(vec.data)
	if n == 0 {
		var zero T
		return zero, infra.WrapErrorStack(ErrVectorEmpty)
	}
	v := vec.data[n-1]
	var zero T
	vec.data[n-1] = zero
	vec.data = vec.data[:n-1]
	return v, nil
}

// Insert places v before position pos, pos == Len appends.
func (vec *Vector[T]) Insert(pos int, v T) error {
	return vec.InsertMany(pos, v)
}

// InsertMany places the values before position pos, keeping their order.
func (vec *Vector[T]) InsertMany(pos int, values ...T) error {
	n := len(vec.data)
	if pos < 0 || pos > n {
		return infra.WrapErrorStack(ErrVectorOutOfBounds)
	}
	k := len(values)
	if k == 0 {
		return nil
	}
	vec.grow(n + k)
	vec.data = vec.data[:n+k]
	copy(vec.data[pos+k:], vec.data[pos:n])
	copy(vec.data[pos:], values)
	return nil
}

func (vec *Vector[T]) InsertManyBack(values ...T) {
	vec.grow(len(vec.data) + len(values))
	vec.data = append(vec.data, values...)
}

func (vec *Vector[T]) Erase(pos int) error {
	n := len(vec.data)
	if pos < 0 || pos >= n {
		return infra.WrapErrorStack(ErrVectorOutOfBounds)
	}
	copy(vec.data[pos:], vec.data[pos+1:])
	var zero T
	vec.data[n-1] = zero
	vec.data = vec.data[:n-1]
	return nil
}

// Clear drops every element and keeps the capacity.
func (vec *Vector[T]) Clear() {
	released := len(vec.data)
	clear(vec.data)
	vec.data = vec.data[:0]
	if released > 0 {
		vec.logger.Debug("[vector] cleared", zap.Int("released", released))
	}
}

func (vec *Vector[T]) Swap(other *Vector[T]) {
	if other == nil || other == vec {
		return
	}
	vec.data, other.data = other.data, vec.data
}

// Clone copies the elements by assignment, the capacity is not kept.
func (vec *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{logger: vec.logger}
	if len(vec.data) > 0 {
		c.data = make([]T, len(vec.data))
		copy(c.data, vec.data)
	}
	return c
}

func (vec *Vector[T]) MoveFrom(other *Vector[T]) {
	if other == nil || other == vec {
		return
	}
	vec.data, other.data = other.data, nil
	vec.logger.Debug("[vector] moved", zap.Int("len", len(vec.data)))
}

func (vec *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range vec.data {
			if !yield(i, v) {
				return
			}
		}
	}
}
