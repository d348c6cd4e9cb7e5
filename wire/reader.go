package wire

import (
	"fmt"

	"github.com/arloliu/pgarray/endian"
	"github.com/arloliu/pgarray/errs"
)

// Reader reads big-endian fields from an array wire buffer.
//
// Every read is bounds-checked; a short buffer yields an error wrapping
// errs.ErrTruncated that names the field and offset, never a panic.
type Reader struct {
	data   []byte
	off    int
	engine endian.EndianEngine
}

// NewReader creates a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{
		data:   data,
		engine: endian.WireEngine(),
	}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

// ReadInt32 reads a signed 32-bit integer. field names the value in errors.
func (r *Reader) ReadInt32(field string) (int32, error) {
	if r.Remaining() < 4 {
		return 0, fmt.Errorf("%w: reading %s at offset %d: need 4 bytes, have %d",
			errs.ErrTruncated, field, r.off, r.Remaining())
	}

	v := endian.Int32(r.engine, r.data[r.off:r.off+4])
	r.off += 4

	return v, nil
}

// ReadUint32 reads an unsigned 32-bit integer. field names the value in errors.
func (r *Reader) ReadUint32(field string) (uint32, error) {
	if r.Remaining() < 4 {
		return 0, fmt.Errorf("%w: reading %s at offset %d: need 4 bytes, have %d",
			errs.ErrTruncated, field, r.off, r.Remaining())
	}

	v := r.engine.Uint32(r.data[r.off : r.off+4])
	r.off += 4

	return v, nil
}

// ReadBytes returns the next n bytes without copying. field names the value in errors.
func (r *Reader) ReadBytes(n int, field string) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, fmt.Errorf("%w: reading %s at offset %d: need %d bytes, have %d",
			errs.ErrTruncated, field, r.off, n, r.Remaining())
	}

	b := r.data[r.off : r.off+n : r.off+n]
	r.off += n

	return b, nil
}
