package array

import (
	"iter"
	"slices"
)

// All returns the elements in row-major order.
//
// The sequence is restartable: every range over it starts from the first element.
func (a *Array[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns the elements in reverse row-major order.
func (a *Array[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(a.data) - 1; i >= 0; i-- {
			if !yield(a.data[i]) {
				return
			}
		}
	}
}

// Pointers returns pointers to the elements in row-major order, for in-place updates.
func (a *Array[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range a.data {
			if !yield(&a.data[i]) {
				return
			}
		}
	}
}

// Enumerate returns each element together with its logical index.
//
// The index slice is reused between iterations; copy it to retain it.
func (a *Array[T]) Enumerate() iter.Seq2[[]int32, T] {
	return func(yield func([]int32, T) bool) {
		if len(a.data) == 0 {
			return
		}

		idx := make([]int32, len(a.dims))
		for i, d := range a.dims {
			idx[i] = d.LowerBound
		}

		for _, v := range a.data {
			if !yield(idx, v) {
				return
			}
			// odometer increment, innermost axis first
			for i := len(idx) - 1; i >= 0; i-- {
				if int64(idx[i]) < a.dims[i].Upper() {
					idx[i]++
					break
				}
				idx[i] = a.dims[i].LowerBound
			}
		}
	}
}

// Drain transfers ownership of the elements to the returned sequence.
//
// The array is empty (zero dimensions) as soon as Drain returns.
func (a *Array[T]) Drain() iter.Seq[T] {
	data := a.IntoInner()

	return func(yield func(T) bool) {
		for _, v := range data {
			if !yield(v) {
				return
			}
		}
	}
}

// IntoInner relinquishes the element slice in row-major order and discards the
// dimensions. The array is left empty.
func (a *Array[T]) IntoInner() []T {
	data := a.data
	a.dims, a.data = nil, nil

	return data
}

// Values returns a copy of the elements in row-major order.
func (a *Array[T]) Values() []T {
	return slices.Clone(a.data)
}
