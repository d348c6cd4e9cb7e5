// Package errs defines the sentinel errors returned by pgarray packages.
//
// Callers should match errors with errors.Is; call sites wrap these values with
// additional context such as byte offsets or element positions.
package errs

import "errors"

// Array shape and indexing errors.
var (
	ErrShapeMismatch    = errors.New("array shape mismatch")
	ErrInvalidDimension = errors.New("invalid array dimension")
	ErrOutOfBounds      = errors.New("out of bounds array access")
	ErrIndexCount       = errors.New("wrong number of array indices")
	ErrNotSliceable     = errors.New("array has no dimension to slice")
)

// Wire decoding errors.
var (
	ErrTruncated             = errors.New("truncated array data")
	ErrTrailingElementBytes  = errors.New("element decoder did not consume all payload bytes")
	ErrTrailingBytes         = errors.New("unexpected bytes after last array element")
	ErrTooManyDimensions     = errors.New("too many array dimensions")
	ErrTooManyElements       = errors.New("too many array elements")
	ErrElementTypeMismatch   = errors.New("array element type mismatch")
	ErrInvalidElementSize    = errors.New("invalid element payload size")
	ErrInvalidElementPayload = errors.New("invalid element payload")
	ErrUnexpectedNull        = errors.New("unexpected null array element")
)

// Wire encoding errors.
var (
	ErrElementTooLarge    = errors.New("element payload exceeds maximum length")
	ErrUnsupportedElement = errors.New("unsupported element value")
)

// Frame errors.
var (
	ErrInvalidFrame        = errors.New("invalid array frame")
	ErrInvalidMagicNumber  = errors.New("invalid frame magic number")
	ErrUnsupportedVersion  = errors.New("unsupported frame version")
	ErrChecksumMismatch    = errors.New("frame checksum mismatch")
	ErrInvalidCompression  = errors.New("invalid compression type")
	ErrInvalidHeaderSize   = errors.New("invalid header size")
	ErrFrameLengthMismatch = errors.New("frame payload length mismatch")
)
