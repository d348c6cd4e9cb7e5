package array

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pgarray/errs"
)

// grid returns [-1:1][2:4]={{1,2,3},{4,5,6},{7,8,9}}.
func grid(t *testing.T) *Array[int] {
	t.Helper()

	a, err := FromParts([]int{1, 2, 3, 4, 5, 6, 7, 8, 9},
		[]Dimension{{Len: 3, LowerBound: -1}, {Len: 3, LowerBound: 2}})
	require.NoError(t, err)

	return a
}

func TestSlice_Row(t *testing.T) {
	a := grid(t)

	row, err := a.Slice(0)
	require.NoError(t, err)
	require.Equal(t, []Dimension{{Len: 3, LowerBound: 2}}, row.Dimensions())
	require.Equal(t, 3, row.Len())
	require.Equal(t, 3, row.Base())
	require.Equal(t, []int{4, 5, 6}, slices.Collect(row.All()))
	require.Equal(t, []int{6, 5, 4}, slices.Collect(row.Backward()))
	require.Equal(t, 5, row.At(3))
	require.Equal(t, "[2:4]={4,5,6}", row.String())
}

func TestSlice_WritesReachOwner(t *testing.T) {
	a := grid(t)

	row, err := a.Slice(1)
	require.NoError(t, err)
	require.NoError(t, row.Set(80, 3))
	require.Equal(t, 80, a.At(1, 3))

	p, err := row.Ptr(4)
	require.NoError(t, err)
	*p = 90
	require.Equal(t, 90, a.At(1, 4))
}

func TestSlice_Errors(t *testing.T) {
	a := grid(t)

	_, err := a.Slice(2)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)

	row, err := a.Slice(-1)
	require.NoError(t, err)

	_, err = row.Slice(2)
	require.ErrorIs(t, err, errs.ErrNotSliceable)

	_, err = row.Get(5)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)

	_, err = row.Get(2, 2)
	require.ErrorIs(t, err, errs.ErrIndexCount)

	_, err = FromSlice([]int{1}, 1).Slice(1)
	require.ErrorIs(t, err, errs.ErrNotSliceable)
}

func TestSlice_Nested(t *testing.T) {
	a := FromSlice([]int{0, 1}, 0)
	a.Wrap(0)
	require.NoError(t, a.Push(FromSlice([]int{2, 3}, 0)))
	a.Wrap(0)
	b := FromSlice([]int{4, 5}, 0)
	b.Wrap(0)
	require.NoError(t, b.Push(FromSlice([]int{6, 7}, 0)))
	require.NoError(t, a.Push(b))

	plane, err := a.Slice(1)
	require.NoError(t, err)
	require.Equal(t, 2, plane.NDim())

	row, err := plane.Slice(1)
	require.NoError(t, err)
	require.Equal(t, []int{6, 7}, slices.Collect(row.All()))

	v, err := plane.Get(0, 1)
	require.NoError(t, err)
	require.Equal(t, 5, v)
}

func TestView_ToArray(t *testing.T) {
	a := grid(t)

	row, err := a.Slice(1)
	require.NoError(t, err)

	copied := row.ToArray()
	require.Equal(t, []int{7, 8, 9}, copied.Values())
	require.Equal(t, row.Dimensions(), copied.Dimensions())

	require.NoError(t, copied.Set(0, 2))
	require.Equal(t, 7, a.At(1, 2), "copied array must not alias the owner")
}

func TestView_WholeArray(t *testing.T) {
	a := grid(t)
	v := a.View()

	require.Equal(t, a.Len(), v.Len())
	require.Equal(t, a.String(), v.String())
	require.Equal(t, 9, v.At(1, 4))
}
