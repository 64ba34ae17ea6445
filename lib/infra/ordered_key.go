package infra

import (
	"math"
	"unsafe"
)

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Integer interface {
	Signed | Unsigned
}

type Float interface {
	~float32 | ~float64
}

// OrderedKey
// byte => ~uint8
// Complex numbers are not ordered, so they are excluded.
type OrderedKey interface {
	Integer | Float | ~string
}

// LessComparator is a strict weak ordering over K.
// Two keys i and j are equivalent if neither less(i, j) nor less(j, i).
// Containers never compare keys by ==, so arbitrary orderings are supported.
type LessComparator[K any] func(i, j K) bool

func NaturalLess[K OrderedKey](i, j K) bool {
	return i < j
}

func DescLess[K OrderedKey](i, j K) bool {
	return j < i
}

// Reverse flips the direction of an existing ordering.
func (less LessComparator[K]) Reverse() LessComparator[K] {
	return func(i, j K) bool {
		return less(j, i)
	}
}

// Equivalent reports whether i and j belong to the same equal-key run.
func (less LessComparator[K]) Equivalent(i, j K) bool {
	return !less(i, j) && !less(j, i)
}

// MaxSizeOf returns the theoretical element capacity of a container whose
// elements occupy unitSize bytes each. It is derived from the address space,
// not a runtime limit.
func MaxSizeOf(unitSize uintptr) int64 {
	if unitSize == 0 {
		unitSize = 1
	}
	return math.MaxInt64 / int64(unitSize) / 2
}

// MaxSizeFor is MaxSizeOf for the in-memory size of T.
func MaxSizeFor[T any]() int64 {
	var zero T
	return MaxSizeOf(unsafe.Sizeof(zero))
}
