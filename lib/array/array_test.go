package array

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArray_Access(t *testing.T) {
	arr := From[int](4, 1, 2, 3)
	require.Equal(t, 4, arr.Len())
	require.Equal(t, 4, arr.MaxSize())
	require.False(t, arr.Empty())
	require.Equal(t, []int{1, 2, 3, 0}, arr.Data())

	v, err := arr.At(2)
	require.NoError(t, err)
	require.Equal(t, 3, v)
	_, err = arr.At(4)
	require.ErrorIs(t, err, ErrArrayOutOfBounds)
	_, err = arr.At(-1)
	require.ErrorIs(t, err, ErrArrayOutOfBounds)

	*arr.Index(3) = 4
	front, err := arr.Front()
	require.NoError(t, err)
	require.Equal(t, 1, front)
	back, err := arr.Back()
	require.NoError(t, err)
	require.Equal(t, 4, back)
	require.Panics(t, func() { arr.Index(4) })
	require.Equal(t, uintptr(8), From[int64](0).ElementSize())
}

func TestArray_EmptyAccess(t *testing.T) {
	arr := New[string](0)
	require.True(t, arr.Empty())
	_, err := arr.Front()
	require.ErrorIs(t, err, ErrArrayOutOfBounds)
	_, err = arr.Back()
	require.ErrorIs(t, err, ErrArrayOutOfBounds)
	require.Panics(t, func() { From[int](1, 1, 2) })
	require.Panics(t, func() { New[int](-1) })
}

func TestArray_FillSwapClone(t *testing.T) {
	a := New[int](3)
	a.Fill(7)
	b := From[int](3, 1, 2, 3)
	require.NoError(t, a.Swap(b))
	require.Equal(t, []int{1, 2, 3}, a.Data())
	require.Equal(t, []int{7, 7, 7}, b.Data())
	require.ErrorIs(t, a.Swap(New[int](2)), ErrArraySizeMismatch)

	c := a.Clone()
	c.Fill(0)
	require.Equal(t, []int{1, 2, 3}, a.Data())

	idx := make([]int, 0, 3)
	for i, v := range a.All() {
		idx = append(idx, i)
		require.Equal(t, i+1, v)
	}
	require.Equal(t, []int{0, 1, 2}, idx)
}
