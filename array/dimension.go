package array

import (
	"fmt"
	"math"

	"github.com/arloliu/pgarray/errs"
)

// Dimension describes one axis of an Array.
//
// Valid logical indices along the axis are [LowerBound, LowerBound+Len-1].
type Dimension struct {
	// Len is the number of elements along the axis. Must not be negative.
	Len int32
	// LowerBound is the logical index of the first element along the axis.
	LowerBound int32
}

// Upper returns the last valid logical index of the axis.
// It is LowerBound-1 for an empty axis and never overflows.
func (d Dimension) Upper() int64 {
	return int64(d.LowerBound) + int64(d.Len) - 1
}

// Shift translates a logical index into a zero-based offset within the axis.
//
// Returns ErrOutOfBounds when idx is below LowerBound, when the subtraction does not
// fit in an int32, or when the offset is not smaller than Len.
func (d Dimension) Shift(idx int32) (int32, error) {
	if idx < d.LowerBound {
		return 0, fmt.Errorf("%w: index %d is below lower bound %d", errs.ErrOutOfBounds, idx, d.LowerBound)
	}

	shifted := int64(idx) - int64(d.LowerBound)
	if shifted > math.MaxInt32 {
		return 0, fmt.Errorf("%w: index %d overflows axis starting at %d", errs.ErrOutOfBounds, idx, d.LowerBound)
	}
	if shifted >= int64(d.Len) {
		return 0, fmt.Errorf("%w: index %d is above upper bound %d", errs.ErrOutOfBounds, idx, d.Upper())
	}

	return int32(shifted), nil
}

// Contains reports whether idx is a valid logical index for the axis.
func (d Dimension) Contains(idx int32) bool {
	_, err := d.Shift(idx)
	return err == nil
}

// String renders the dimension as "[lower:upper]".
func (d Dimension) String() string {
	return fmt.Sprintf("[%d:%d]", d.LowerBound, d.Upper())
}

// Cardinality returns the number of elements described by dims.
//
// Zero dimensions describe the empty array and have a cardinality of 0. Returns
// ErrInvalidDimension for a negative length and ErrTooManyElements when the product
// does not fit in an int.
func Cardinality(dims []Dimension) (int, error) {
	if len(dims) == 0 {
		return 0, nil
	}

	empty := false
	for i, d := range dims {
		if d.Len < 0 {
			return 0, fmt.Errorf("%w: axis %d has negative length %d", errs.ErrInvalidDimension, i, d.Len)
		}
		if d.Len == 0 {
			empty = true
		}
	}
	// a zero-length axis empties the array however long the others are
	if empty {
		return 0, nil
	}

	n := 1
	for _, d := range dims {
		if n > math.MaxInt/int(d.Len) {
			return 0, fmt.Errorf("%w: dimensions overflow element count", errs.ErrTooManyElements)
		}
		n *= int(d.Len)
	}

	return n, nil
}

// locate computes the flat row-major offset of the logical index idx in an array
// shaped by dims, folding from the innermost axis outwards.
func locate(dims []Dimension, idx []int32) (int, error) {
	if len(idx) != len(dims) {
		return 0, fmt.Errorf("%w: got %d, want %d", errs.ErrIndexCount, len(idx), len(dims))
	}
	if len(dims) == 0 {
		return 0, fmt.Errorf("%w: array has no elements", errs.ErrOutOfBounds)
	}

	offset, stride := 0, 1
	for i := len(dims) - 1; i >= 0; i-- {
		shifted, err := dims[i].Shift(idx[i])
		if err != nil {
			return 0, fmt.Errorf("axis %d: %w", i, err)
		}
		offset += int(shifted) * stride
		stride *= int(dims[i].Len)
	}

	return offset, nil
}
