package array

import (
	"fmt"

	"github.com/arloliu/pgarray/errs"
)

// Indexing takes one logical index per dimension, outermost first:
//
//	a.At(3)        // one-dimensional
//	a.At(1, -2)    // two-dimensional
//	a.At(coords...) // any dimensionality
//
// Every form resolves through the same shift-and-fold offset computation.

// Offset returns the position in row-major order of the element at idx.
//
// Returns ErrIndexCount when len(idx) differs from NDim, and ErrOutOfBounds when an
// index lies outside its axis.
func (a *Array[T]) Offset(idx ...int32) (int, error) {
	return locate(a.dims, idx)
}

// Get returns the element at idx.
func (a *Array[T]) Get(idx ...int32) (T, error) {
	off, err := locate(a.dims, idx)
	if err != nil {
		var zero T
		return zero, err
	}

	return a.data[off], nil
}

// At returns the element at idx and panics on an invalid index, like indexing a
// Go slice out of range.
func (a *Array[T]) At(idx ...int32) T {
	off, err := locate(a.dims, idx)
	if err != nil {
		panic(err)
	}

	return a.data[off]
}

// Set replaces the element at idx.
func (a *Array[T]) Set(v T, idx ...int32) error {
	off, err := locate(a.dims, idx)
	if err != nil {
		return err
	}
	a.data[off] = v

	return nil
}

// Ptr returns a pointer to the element at idx for in-place modification.
//
// The pointer is invalidated by Push and Append, which may reallocate storage.
func (a *Array[T]) Ptr(idx ...int32) (*T, error) {
	off, err := locate(a.dims, idx)
	if err != nil {
		return nil, err
	}

	return &a.data[off], nil
}

// Slice returns a view of the sub-array at logical index idx of the outermost dimension.
//
// For a two-dimensional array the view is one row. Returns ErrNotSliceable for
// arrays with fewer than two dimensions.
func (a *Array[T]) Slice(idx int32) (View[T], error) {
	return a.View().Slice(idx)
}

// View returns a view covering the whole array.
func (a *Array[T]) View() View[T] {
	return View[T]{
		owner: a,
		dims:  a.dims,
		base:  0,
		size:  len(a.data),
	}
}

func sliceView[T any](owner *Array[T], dims []Dimension, base int, idx int32) (View[T], error) {
	if len(dims) < 2 {
		return View[T]{}, fmt.Errorf("%w: cannot slice a %d-dimensional array", errs.ErrNotSliceable, len(dims))
	}

	shifted, err := dims[0].Shift(idx)
	if err != nil {
		return View[T]{}, fmt.Errorf("axis 0: %w", err)
	}

	inner := dims[1:]
	stride, err := Cardinality(inner)
	if err != nil {
		return View[T]{}, err
	}

	return View[T]{
		owner: owner,
		dims:  inner,
		base:  base + int(shifted)*stride,
		size:  stride,
	}, nil
}
