package array

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/pgarray/errs"
)

// Array is a multi-dimensional array with per-axis lower bounds.
//
// Elements are stored in a single flat slice in row-major order: the first
// dimension varies slowest. The array owns both its dimensions and its elements;
// constructors take ownership of the slices passed to them.
//
// An Array with no dimensions is the empty array and holds no elements.
//
// Note: Array is NOT safe for concurrent mutation. An Array that is no longer
// mutated may be read from multiple goroutines.
type Array[T any] struct {
	dims []Dimension
	data []T
}

// FromParts creates an Array from row-major data and its dimensions.
//
// Returns ErrShapeMismatch when len(data) differs from the product of the dimension
// lengths. An empty dims list is only valid together with empty data.
func FromParts[T any](data []T, dims []Dimension) (*Array[T], error) {
	n, err := Cardinality(dims)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("%w: %d elements for dimensions %v (want %d)",
			errs.ErrShapeMismatch, len(data), dims, n)
	}

	return &Array[T]{dims: dims, data: data}, nil
}

// MustFromParts is like FromParts but panics on a shape mismatch.
func MustFromParts[T any](data []T, dims []Dimension) *Array[T] {
	a, err := FromParts(data, dims)
	if err != nil {
		panic(err)
	}

	return a
}

// FromSlice creates a one-dimensional Array whose first index is lowerBound.
//
// Panics if len(data) exceeds math.MaxInt32, which the wire format cannot describe.
func FromSlice[T any](data []T, lowerBound int32) *Array[T] {
	if len(data) > math.MaxInt32 {
		panic(fmt.Sprintf("array: %d elements exceed the maximum dimension length", len(data)))
	}

	return &Array[T]{
		dims: []Dimension{{Len: int32(len(data)), LowerBound: lowerBound}}, //nolint:gosec
		data: data,
	}
}

// Empty returns the zero-dimension array.
func Empty[T any]() *Array[T] {
	return &Array[T]{}
}

// Dimensions returns a copy of the array's dimensions, outermost first.
func (a *Array[T]) Dimensions() []Dimension {
	return slices.Clone(a.dims)
}

// Dim returns the i-th dimension. Panics if i is out of range.
func (a *Array[T]) Dim(i int) Dimension {
	return a.dims[i]
}

// NDim returns the number of dimensions.
func (a *Array[T]) NDim() int {
	return len(a.dims)
}

// Len returns the total number of elements.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// IsEmpty reports whether the array has no elements.
func (a *Array[T]) IsEmpty() bool {
	return len(a.data) == 0
}

// Wrap adds a new outermost dimension of length 1 starting at lowerBound.
//
// For example, the one-dimensional array {1,2} becomes the two-dimensional array {{1,2}}.
func (a *Array[T]) Wrap(lowerBound int32) {
	a.dims = slices.Insert(a.dims, 0, Dimension{Len: 1, LowerBound: lowerBound})
}

// Push appends other as a new slice along the outermost dimension, consuming it.
//
// The dimensions of other must equal the dimensions of this array with the first
// one removed, lower bounds included. For example, pushing {3,4} onto {{1,2}} gives
// {{1,2},{3,4}}. On success other is left empty.
//
// Returns ErrShapeMismatch when the shapes differ; neither array is modified then.
func (a *Array[T]) Push(other *Array[T]) error {
	if len(a.dims) < 2 {
		return fmt.Errorf("%w: cannot push onto a %d-dimensional array", errs.ErrShapeMismatch, len(a.dims))
	}
	if !slices.Equal(a.dims[1:], other.dims) {
		return fmt.Errorf("%w: cannot push %v onto slices of %v", errs.ErrShapeMismatch, other.dims, a.dims[1:])
	}
	if a.dims[0].Len == math.MaxInt32 {
		return fmt.Errorf("%w: outer dimension is full", errs.ErrInvalidDimension)
	}

	a.data = append(a.data, other.data...)
	a.dims[0].Len++
	other.dims, other.data = nil, nil

	return nil
}

// Append adds v to the end of a one-dimensional array.
//
// Returns ErrShapeMismatch for arrays that are not one-dimensional.
func (a *Array[T]) Append(v T) error {
	if len(a.dims) != 1 {
		return fmt.Errorf("%w: cannot append an element to a %d-dimensional array", errs.ErrShapeMismatch, len(a.dims))
	}
	if a.dims[0].Len == math.MaxInt32 {
		return fmt.Errorf("%w: dimension is full", errs.ErrInvalidDimension)
	}

	a.data = append(a.data, v)
	a.dims[0].Len++

	return nil
}

// Clone returns a copy of the array. Elements are copied by assignment.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		dims: slices.Clone(a.dims),
		data: slices.Clone(a.data),
	}
}

// EqualFunc reports whether both arrays have identical dimensions and pairwise
// equal elements according to eq.
func (a *Array[T]) EqualFunc(other *Array[T], eq func(x, y T) bool) bool {
	return slices.Equal(a.dims, other.dims) && slices.EqualFunc(a.data, other.data, eq)
}

// Equal reports whether a and b have identical dimensions and elements.
func Equal[T comparable](a, b *Array[T]) bool {
	return slices.Equal(a.dims, b.dims) && slices.Equal(a.data, b.data)
}

// Map returns an array with the same dimensions holding f applied to every element of a.
func Map[T, U any](a *Array[T], f func(T) U) *Array[U] {
	out := make([]U, len(a.data))
	for i, v := range a.data {
		out[i] = f(v)
	}

	return &Array[U]{dims: slices.Clone(a.dims), data: out}
}
