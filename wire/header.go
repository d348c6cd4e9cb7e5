package wire

import (
	"fmt"

	"github.com/arloliu/pgarray/array"
	"github.com/arloliu/pgarray/endian"
	"github.com/arloliu/pgarray/errs"
	"github.com/arloliu/pgarray/format"
)

// Header is the leading part of an array value on the wire:
//
//	int32 ndim
//	int32 has_null
//	int32 element_type
//	ndim x { int32 length; int32 lower_bound }
//
// All fields are big-endian.
type Header struct {
	// HasNull is the has_null flag as read or to be written. Decoding does not use it:
	// null elements are always recognised by their negative length.
	HasNull int32
	// ElementType is the element type OID carried in the header.
	ElementType format.Oid
	// Dims are the array dimensions, outermost first.
	Dims []array.Dimension
}

// NDim returns the number of dimensions.
func (h *Header) NDim() int {
	return len(h.Dims)
}

// Size returns the encoded size of the header in bytes.
func (h *Header) Size() int {
	return FixedHeaderSize + len(h.Dims)*DimensionEntrySize
}

// ElementCount returns the number of elements that follow the header.
func (h *Header) ElementCount() (int, error) {
	return array.Cardinality(h.Dims)
}

// AppendTo appends the encoded header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	engine := endian.WireEngine()

	dst = endian.AppendInt32(engine, dst, int32(len(h.Dims))) //nolint:gosec
	dst = endian.AppendInt32(engine, dst, h.HasNull)
	dst = engine.AppendUint32(dst, uint32(h.ElementType))
	for _, d := range h.Dims {
		dst = endian.AppendInt32(engine, dst, d.Len)
		dst = endian.AppendInt32(engine, dst, d.LowerBound)
	}

	return dst
}

// Bytes returns the encoded header.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, h.Size()))
}

// Parse reads a header from r.
//
// Returns errs.ErrTruncated when the buffer ends inside the header and
// errs.ErrInvalidDimension for a negative dimension count or length.
func (h *Header) Parse(r *Reader) error {
	ndim, err := r.ReadInt32("dimension count")
	if err != nil {
		return err
	}
	if ndim < 0 {
		return fmt.Errorf("%w: negative dimension count %d", errs.ErrInvalidDimension, ndim)
	}

	if h.HasNull, err = r.ReadInt32("has-null flag"); err != nil {
		return err
	}

	oid, err := r.ReadUint32("element type")
	if err != nil {
		return err
	}
	h.ElementType = format.Oid(oid)

	// bound the allocation by what the buffer can actually hold
	if need := int(ndim) * DimensionEntrySize; need > r.Remaining() {
		return fmt.Errorf("%w: %d dimensions need %d bytes, have %d",
			errs.ErrTruncated, ndim, need, r.Remaining())
	}

	h.Dims = make([]array.Dimension, ndim)
	for i := range h.Dims {
		length, err := r.ReadInt32("dimension length")
		if err != nil {
			return err
		}
		if length < 0 {
			return fmt.Errorf("%w: axis %d has negative length %d", errs.ErrInvalidDimension, i, length)
		}

		lower, err := r.ReadInt32("dimension lower bound")
		if err != nil {
			return err
		}

		h.Dims[i] = array.Dimension{Len: length, LowerBound: lower}
	}

	return nil
}

// ParseHeader parses the header at the start of data and returns it together with
// the number of bytes it occupies.
func ParseHeader(data []byte) (Header, int, error) {
	r := NewReader(data)

	var h Header
	if err := h.Parse(r); err != nil {
		return Header{}, 0, err
	}

	return h, r.Offset(), nil
}
