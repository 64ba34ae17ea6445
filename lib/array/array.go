package array

import (
	"errors"
	"iter"
	"unsafe"

	"github.com/benz9527/xcontainer/lib/infra"
)

var (
	ErrArrayOutOfBounds  = errors.New("[array] index out of bounds")
	ErrArraySizeMismatch = errors.New("[array] swap arrays of different sizes")
)

// Array is a fixed size sequence. The size is chosen at construction and
// never changes. Copying an Array value shares its storage, use Clone for
// an independent copy.
type Array[T any] struct {
	data []T
}

// New returns an array of n zero values.
func New[T any](n int) Array[T] {
	if n < 0 {
		panic( /* debug assertion */ "[array] negative size")
	}
	return Array[T]{data: make([]T, n)}
}

// From returns an array of n elements initialized from items.
// Missing items are zero values. More than n items panics.
func From[T any](n int, items ...T) Array[T] {
	if len(items) > n {
		panic( /* debug assertion */ "[array] too many initializers")
	}
	arr := New[T](n)
	copy(arr.data, items)
	return arr
}

func (arr Array[T]) Len() int {
	return len(arr.data)
}

func (arr Array[T]) Empty() bool {
	return len(arr.data) == 0
}

// MaxSize equals Len, the size is fixed.
func (arr Array[T]) MaxSize() int {
	return len(arr.data)
}

// At returns ErrArrayOutOfBounds if i is not in [0, Len).
func (arr Array[T]) At(i int) (T, error) {
	if i < 0 || i >= len(arr.data) {
		var zero T
		return zero, infra.WrapErrorStack(ErrArrayOutOfBounds)
	}
	return arr.data[i], nil
}

// Index is unchecked beyond Go's own slice bounds check.
func (arr Array[T]) Index(i int) *T {
	return &arr.data[i]
}

func (arr Array[T]) Front() (T, error) {
	return arr.At(0)
}

func (arr Array[T]) Back() (T, error) {
	return arr.At(len(arr.data) - 1)
}

// Data exposes the backing storage.
func (arr Array[T]) Data() []T {
	return arr.data
}

func (arr Array[T]) Fill(v T) {
	for i := range arr.data {
		arr.data[i] = v
	}
}

// Swap exchanges the elements of two arrays of the same size.
func (arr Array[T]) Swap(other Array[T]) error {
	if len(arr.data) != len(other.data) {
		return infra.WrapErrorStack(ErrArraySizeMismatch)
	}
	for i := range arr.data {
		arr.data[i], other.data[i] = other.data[i], arr.data[i]
	}
	return nil
}

func (arr Array[T]) Clone() Array[T] {
	return From[T](len(arr.data), arr.data...)
}

func (arr Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range arr.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// ElementSize is the size in bytes of one element.
func (arr Array[T]) ElementSize() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}
