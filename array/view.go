package array

import (
	"iter"
	"slices"
	"strings"
)

// View is a window onto a contiguous sub-array of an Array.
//
// A view holds the owner, the dimensions it covers and the offset of its first
// element in the owner's storage. It never copies elements: writes through a view
// are visible in the owner. Views are cheap values and should be re-derived after
// the owner changes shape through Wrap, Push or Append.
type View[T any] struct {
	owner *Array[T]
	dims  []Dimension
	base  int
	size  int
}

// Dimensions returns a copy of the view's dimensions.
func (v View[T]) Dimensions() []Dimension {
	return slices.Clone(v.dims)
}

// NDim returns the number of dimensions of the view.
func (v View[T]) NDim() int {
	return len(v.dims)
}

// Len returns the number of elements in the view.
func (v View[T]) Len() int {
	return v.size
}

// Base returns the row-major offset of the view's first element within the owner.
func (v View[T]) Base() int {
	return v.base
}

func (v View[T]) elems() []T {
	if v.owner == nil {
		return nil
	}

	return v.owner.data[v.base : v.base+v.size]
}

// Get returns the element at idx, expressed in the view's own dimensions.
func (v View[T]) Get(idx ...int32) (T, error) {
	off, err := locate(v.dims, idx)
	if err != nil {
		var zero T
		return zero, err
	}

	return v.owner.data[v.base+off], nil
}

// At returns the element at idx and panics on an invalid index.
func (v View[T]) At(idx ...int32) T {
	off, err := locate(v.dims, idx)
	if err != nil {
		panic(err)
	}

	return v.owner.data[v.base+off]
}

// Set replaces the element at idx in the owner's storage.
func (v View[T]) Set(val T, idx ...int32) error {
	off, err := locate(v.dims, idx)
	if err != nil {
		return err
	}
	v.owner.data[v.base+off] = val

	return nil
}

// Ptr returns a pointer into the owner's storage for the element at idx.
func (v View[T]) Ptr(idx ...int32) (*T, error) {
	off, err := locate(v.dims, idx)
	if err != nil {
		return nil, err
	}

	return &v.owner.data[v.base+off], nil
}

// Slice narrows the view to the sub-array at logical index idx of its outermost dimension.
func (v View[T]) Slice(idx int32) (View[T], error) {
	return sliceView(v.owner, v.dims, v.base, idx)
}

// All returns the view's elements in row-major order.
func (v View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range v.elems() {
			if !yield(e) {
				return
			}
		}
	}
}

// Backward returns the view's elements in reverse row-major order.
func (v View[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		elems := v.elems()
		for i := len(elems) - 1; i >= 0; i-- {
			if !yield(elems[i]) {
				return
			}
		}
	}
}

// ToArray copies the view into a new, independent Array.
func (v View[T]) ToArray() *Array[T] {
	return &Array[T]{
		dims: slices.Clone(v.dims),
		data: slices.Clone(v.elems()),
	}
}

// String renders the view with the same rules as Array.String.
func (v View[T]) String() string {
	var sb strings.Builder
	render(&sb, v.dims, v.elems())

	return sb.String()
}
