package array

import (
	"database/sql"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/pgarray/errs"
)

func TestFromParts(t *testing.T) {
	t.Run("preserves dimensions and order", func(t *testing.T) {
		dims := []Dimension{{Len: 2, LowerBound: 1}, {Len: 3, LowerBound: -1}}
		data := []int{1, 2, 3, 4, 5, 6}

		a, err := FromParts(data, dims)
		require.NoError(t, err)
		require.Equal(t, dims, a.Dimensions())
		require.Equal(t, data, slices.Collect(a.All()))
		require.Equal(t, 2, a.NDim())
		require.Equal(t, 6, a.Len())
	})

	t.Run("empty array", func(t *testing.T) {
		a, err := FromParts[string](nil, nil)
		require.NoError(t, err)
		require.Equal(t, 0, a.NDim())
		require.True(t, a.IsEmpty())
	})

	t.Run("element count mismatch", func(t *testing.T) {
		_, err := FromParts([]int{1, 2, 3}, []Dimension{{Len: 2, LowerBound: 1}})
		require.ErrorIs(t, err, errs.ErrShapeMismatch)
	})

	t.Run("data without dimensions", func(t *testing.T) {
		_, err := FromParts([]int{1}, nil)
		require.ErrorIs(t, err, errs.ErrShapeMismatch)
	})

	t.Run("negative length", func(t *testing.T) {
		_, err := FromParts([]int{}, []Dimension{{Len: -2, LowerBound: 1}})
		require.ErrorIs(t, err, errs.ErrInvalidDimension)
	})

	t.Run("must variant panics", func(t *testing.T) {
		require.Panics(t, func() {
			MustFromParts([]int{1}, []Dimension{{Len: 2, LowerBound: 1}})
		})
	})
}

func TestFromSlice(t *testing.T) {
	a := FromSlice([]int32{0, 1, 2}, -1)

	require.Equal(t, []Dimension{{Len: 3, LowerBound: -1}}, a.Dimensions())
	require.Equal(t, int32(0), a.At(-1))
	require.Equal(t, int32(1), a.At(0))
	require.Equal(t, int32(2), a.At(1))
}

func TestDimensions_ReturnsCopy(t *testing.T) {
	a := FromSlice([]int{1, 2}, 1)
	dims := a.Dimensions()
	dims[0].Len = 99

	require.Equal(t, int32(2), a.Dim(0).Len)
}

func TestIndexing_OneDimensionalBounds(t *testing.T) {
	const lower, n = int32(5), 4
	a := FromSlice([]string{"a", "b", "c", "d"}, lower)

	first, err := a.Get(lower)
	require.NoError(t, err)
	require.Equal(t, "a", first)

	last, err := a.Get(lower + n - 1)
	require.NoError(t, err)
	require.Equal(t, "d", last)

	_, err = a.Get(lower - 1)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)

	_, err = a.Get(lower + n)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)

	require.Panics(t, func() { a.At(lower + n) })
}

func TestIndexing_WrongIndexCount(t *testing.T) {
	a := FromSlice([]int{1, 2}, 1)
	a.Wrap(1)

	_, err := a.Get(1)
	require.ErrorIs(t, err, errs.ErrIndexCount)

	_, err = a.Get(1, 1, 1)
	require.ErrorIs(t, err, errs.ErrIndexCount)

	_, err = a.Offset()
	require.ErrorIs(t, err, errs.ErrIndexCount)
}

func TestIndexing_EmptyArray(t *testing.T) {
	a := Empty[int]()

	_, err := a.Get()
	require.ErrorIs(t, err, errs.ErrOutOfBounds)
}

func TestWrap_TwoDimensionalGet(t *testing.T) {
	a := FromSlice([]int32{0, 1, 2}, -1)
	a.Wrap(1)

	require.Equal(t, []Dimension{{Len: 1, LowerBound: 1}, {Len: 3, LowerBound: -1}}, a.Dimensions())
	require.Equal(t, int32(0), a.At(1, -1))
	require.Equal(t, int32(1), a.At(1, 0))
	require.Equal(t, int32(2), a.At(1, 1))
}

func TestPush(t *testing.T) {
	t.Run("two by two", func(t *testing.T) {
		a := FromSlice([]int32{1, 2}, 0)
		a.Wrap(0)
		require.NoError(t, a.Push(FromSlice([]int32{3, 4}, 0)))

		require.Equal(t, int32(1), a.At(0, 0))
		require.Equal(t, int32(2), a.At(0, 1))
		require.Equal(t, int32(3), a.At(1, 0))
		require.Equal(t, int32(4), a.At(1, 1))
	})

	t.Run("grows outer dimension only", func(t *testing.T) {
		a := FromSlice([]int{1, 2, 3}, 3)
		a.Wrap(-2)
		before := a.Dimensions()

		other := FromSlice([]int{4, 5, 6}, 3)
		require.NoError(t, a.Push(other))

		after := a.Dimensions()
		require.Equal(t, before[0].Len+1, after[0].Len)
		require.Equal(t, before[0].LowerBound, after[0].LowerBound)
		require.Equal(t, before[1:], after[1:])
		require.Equal(t, []int{1, 2, 3, 4, 5, 6}, a.Values())

		// consumed
		require.Equal(t, 0, other.NDim())
		require.Equal(t, 0, other.Len())
	})

	t.Run("wrong lower bound", func(t *testing.T) {
		a := FromSlice([]int{1}, -1)
		a.Wrap(0)
		err := a.Push(FromSlice([]int{2}, 0))
		require.ErrorIs(t, err, errs.ErrShapeMismatch)
		require.Equal(t, []int{1}, a.Values(), "failed push must not modify the array")
	})

	t.Run("onto one-dimensional array", func(t *testing.T) {
		a := FromSlice([]int{1}, -1)
		err := a.Push(FromSlice([]int{2}, 0))
		require.ErrorIs(t, err, errs.ErrShapeMismatch)
	})

	t.Run("wrong inner length", func(t *testing.T) {
		a := FromSlice([]int{1}, -1)
		a.Wrap(1)
		err := a.Push(FromSlice([]int{1, 2}, -1))
		require.ErrorIs(t, err, errs.ErrShapeMismatch)
	})

	t.Run("wrong dimension count", func(t *testing.T) {
		a := FromSlice([]int{1}, -1)
		a.Wrap(1)
		b := FromSlice([]int{2}, -1)
		b.Wrap(1)
		err := a.Push(b)
		require.ErrorIs(t, err, errs.ErrShapeMismatch)
		require.Equal(t, 2, b.NDim(), "rejected array must not be consumed")
	})
}

func TestThreeDimensional(t *testing.T) {
	a := FromSlice([]int{0, 1}, 0)
	a.Wrap(0)
	require.NoError(t, a.Push(FromSlice([]int{2, 3}, 0)))
	a.Wrap(0)

	b := FromSlice([]int{4, 5}, 0)
	b.Wrap(0)
	require.NoError(t, b.Push(FromSlice([]int{6, 7}, 0)))
	require.NoError(t, a.Push(b))

	want := 0
	for i := range int32(2) {
		for j := range int32(2) {
			for k := range int32(2) {
				require.Equal(t, want, a.At(i, j, k), "index (%d,%d,%d)", i, j, k)
				off, err := a.Offset(i, j, k)
				require.NoError(t, err)
				require.Equal(t, want, off)
				want++
			}
		}
	}
}

func TestMutation(t *testing.T) {
	a := FromSlice([]int{1, 2}, 0)
	a.Wrap(0)

	require.NoError(t, a.Set(3, 0, 0))
	require.Equal(t, 3, a.At(0, 0))

	p, err := a.Ptr(0, 1)
	require.NoError(t, err)
	*p = 7
	require.Equal(t, 7, a.At(0, 1))

	require.ErrorIs(t, a.Set(1, 1, 0), errs.ErrOutOfBounds)
}

func TestAppend(t *testing.T) {
	a := FromSlice([]int{1}, 10)
	require.NoError(t, a.Append(2))
	require.Equal(t, []Dimension{{Len: 2, LowerBound: 10}}, a.Dimensions())
	require.Equal(t, 2, a.At(11))

	a.Wrap(1)
	require.ErrorIs(t, a.Append(3), errs.ErrShapeMismatch)
}

func TestCloneAndEqual(t *testing.T) {
	a := FromSlice([]int{1, 2, 3}, -1)
	b := a.Clone()
	require.True(t, Equal(a, b))

	require.NoError(t, b.Set(9, 0))
	require.False(t, Equal(a, b))
	require.Equal(t, 2, a.At(0))

	c := FromSlice([]int{1, 2, 3}, 1)
	require.False(t, Equal(a, c), "lower bounds are part of equality")

	eq := func(x, y int) bool { return x%2 == y%2 }
	require.True(t, a.EqualFunc(FromSlice([]int{3, 4, 5}, -1), eq))
}

func TestIteration(t *testing.T) {
	a := FromSlice([]int{1, 2, 3, 4}, 1)

	t.Run("forward is restartable", func(t *testing.T) {
		require.Equal(t, []int{1, 2, 3, 4}, slices.Collect(a.All()))
		require.Equal(t, []int{1, 2, 3, 4}, slices.Collect(a.All()))
	})

	t.Run("backward", func(t *testing.T) {
		require.Equal(t, []int{4, 3, 2, 1}, slices.Collect(a.Backward()))
	})

	t.Run("early stop", func(t *testing.T) {
		var got []int
		for v := range a.All() {
			if v == 3 {
				break
			}
			got = append(got, v)
		}
		require.Equal(t, []int{1, 2}, got)
	})

	t.Run("pointers", func(t *testing.T) {
		c := a.Clone()
		for p := range c.Pointers() {
			*p *= 10
		}
		require.Equal(t, []int{10, 20, 30, 40}, c.Values())
	})
}

func TestEnumerate(t *testing.T) {
	a := FromSlice([]string{"a", "b", "c"}, 3)
	a.Wrap(-2)
	require.NoError(t, a.Push(FromSlice([]string{"d", "e", "f"}, 3)))

	type entry struct {
		idx []int32
		v   string
	}
	var got []entry
	for idx, v := range a.Enumerate() {
		got = append(got, entry{slices.Clone(idx), v})
	}

	want := []entry{
		{[]int32{-2, 3}, "a"}, {[]int32{-2, 4}, "b"}, {[]int32{-2, 5}, "c"},
		{[]int32{-1, 3}, "d"}, {[]int32{-1, 4}, "e"}, {[]int32{-1, 5}, "f"},
	}
	require.Equal(t, want, got)

	for idx, v := range a.Enumerate() {
		require.Equal(t, v, a.At(idx...))
	}
}

func TestDrainAndIntoInner(t *testing.T) {
	t.Run("into inner", func(t *testing.T) {
		a := FromSlice([]int32{0, 1, 2}, -1)
		data := a.IntoInner()
		require.Equal(t, []int32{0, 1, 2}, data)
		require.Equal(t, 0, a.NDim())
		require.Equal(t, 0, a.Len())
	})

	t.Run("drain", func(t *testing.T) {
		a := FromSlice([]int{5, 6}, 1)
		seq := a.Drain()
		require.Equal(t, 0, a.Len())
		require.Equal(t, []int{5, 6}, slices.Collect(seq))
	})
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		arr  func() *Array[int]
		want string
	}{
		{
			name: "default bounds",
			arr:  func() *Array[int] { return FromSlice([]int{0, 1, 2, 3, 4}, 1) },
			want: "{0,1,2,3,4}",
		},
		{
			name: "custom bounds",
			arr:  func() *Array[int] { return FromSlice([]int{0, 1, 2, 3, 4}, -3) },
			want: "[-3:1]={0,1,2,3,4}",
		},
		{
			name: "three dimensions",
			arr: func() *Array[int] {
				a := FromSlice([]int{1, 2, 3}, 3)
				a.Wrap(-2)
				_ = a.Push(FromSlice([]int{4, 5, 6}, 3))
				a.Wrap(1)

				return a
			},
			want: "[1:1][-2:-1][3:5]={{{1,2,3},{4,5,6}}}",
		},
		{
			name: "empty",
			arr:  Empty[int],
			want: "{}",
		},
		{
			name: "empty axis",
			arr:  func() *Array[int] { return FromSlice([]int{}, 1) },
			want: "{}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.arr().String())
		})
	}
}

func TestString_Nulls(t *testing.T) {
	a := FromSlice([]sql.Null[string]{
		{V: "hello", Valid: true},
		{V: "world", Valid: true},
		{},
	}, 1)

	require.Equal(t, "{hello,world,NULL}", a.String())
}

func TestMap(t *testing.T) {
	a := MustFromParts([]int{1, 2, 3, 4}, []Dimension{{Len: 2, LowerBound: 0}, {Len: 2, LowerBound: 5}})

	repeated := Map(a, func(v int) string { return strings.Repeat("x", v) })
	require.Equal(t, a.Dimensions(), repeated.Dimensions())
	require.Equal(t, "xxx", repeated.At(1, 5))

	repeated.Wrap(1)
	require.Equal(t, 2, a.NDim(), "mapped array must not share dimensions")
}
