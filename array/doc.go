// Package array provides a multi-dimensional array whose axes may start at any
// integer index, matching the shape model of PostgreSQL array values.
//
// # Shape
//
// An Array is a list of Dimensions (length and lower bound per axis) and a flat
// slice of elements in row-major order. Arrays are built either from parts or from a
// plain slice, and grown one outer slice at a time:
//
//	a := array.FromSlice([]int32{1, 2}, 0) // [0:1]={1,2}
//	a.Wrap(0)                              // [0:0][0:1]={{1,2}}
//	err := a.Push(array.FromSlice([]int32{3, 4}, 0))
//	// a is now [0:1][0:1]={{1,2},{3,4}}
//	v := a.At(1, 0) // 3
//
// # Indexing
//
// Indices are logical: they are checked against each axis' lower bound and length,
// never clamped. The error-returning accessors (Get, Set, Ptr, Offset) report
// errs.ErrOutOfBounds or errs.ErrIndexCount; At panics like an out-of-range slice index.
//
// # Views
//
// Slice returns a View onto one sub-array along the outermost axis. A view is an
// offset into the owner's storage plus the remaining dimensions; it never copies.
package array
