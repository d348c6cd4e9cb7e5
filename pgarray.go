// Package pgarray implements PostgreSQL arrays: multi-dimensional arrays whose axes
// start at arbitrary lower bounds, and their binary wire format.
//
// An array is stored as a flat row-major element slice plus one Dimension per axis.
// Elements are addressed by logical indices, which are shifted by each axis' lower
// bound before the flat offset is computed.
//
// # Basic Usage
//
// Building and indexing an array:
//
//	import "github.com/arloliu/pgarray"
//
//	a := pgarray.FromSlice([]int32{10, 20, 30}, -1) // [-1:1]={10,20,30}
//	v, _ := a.Get(0)                                 // 20
//
//	// grow into a 2x3 array
//	a.Wrap(1)
//	_ = a.Push(pgarray.FromSlice([]int32{40, 50, 60}, -1))
//	fmt.Println(a) // [1:2][-1:1]={{10,20,30},{40,50,60}}
//
// Encoding and decoding the binary wire format with an element codec:
//
//	data, _ := pgarray.Encode(a, format.OidInt4, elem.Int4)
//	decoded, _ := pgarray.Decode(data, format.OidInt4, elem.Int4)
//	// decoded is *pgarray.Array[sql.Null[int32]]
//
// # Package Structure
//
// This package provides top-level wrappers for the common cases. The array package
// holds the in-memory structure, codec the wire format, elem the element codecs for
// built-in types, and frame a compressed, checksummed envelope for storing encoded
// arrays.
package pgarray

import (
	"database/sql"

	"github.com/arloliu/pgarray/array"
	"github.com/arloliu/pgarray/codec"
	"github.com/arloliu/pgarray/format"
)

// Array is a multi-dimensional array with per-axis lower bounds.
type Array[T any] = array.Array[T]

// Dimension describes one axis of an Array.
type Dimension = array.Dimension

// FromSlice creates a one-dimensional array whose first index is lowerBound.
func FromSlice[T any](data []T, lowerBound int32) *Array[T] {
	return array.FromSlice(data, lowerBound)
}

// FromParts creates an array from row-major data and its dimensions.
//
// Returns errs.ErrShapeMismatch when the element count does not match the dimensions.
func FromParts[T any](data []T, dims []Dimension) (*Array[T], error) {
	return array.FromParts(data, dims)
}

// Empty returns the zero-dimension array.
func Empty[T any]() *Array[T] {
	return array.Empty[T]()
}

// Encode encodes a in the binary array wire format with element type oid.
//
// Example:
//
//	data, err := pgarray.Encode(a, format.OidText, elem.Text)
func Encode[T any](a *Array[T], oid format.Oid, enc codec.ElementEncoder[T], opts ...codec.EncoderOption) ([]byte, error) {
	return codec.Encode(a, oid, enc, opts...)
}

// Decode decodes a binary array value. Null elements decode as invalid sql.Null values.
//
// Example:
//
//	a, err := pgarray.Decode(data, format.OidFloat8, elem.Float8)
//	if err != nil {
//	    return err
//	}
//	for v := range a.All() {
//	    if v.Valid {
//	        fmt.Println(v.V)
//	    }
//	}
func Decode[T any](data []byte, oid format.Oid, dec codec.ElementDecoder[T], opts ...codec.DecoderOption) (*Array[sql.Null[T]], error) {
	return codec.Decode(data, oid, dec, opts...)
}
