// Package elem provides element codecs for the common built-in PostgreSQL types.
//
// Each codec satisfies codec.ElementCodec for its Go type and can be passed
// directly to codec.Decode and codec.Encode:
//
//	data, err := codec.Encode(a, format.OidFloat8, elem.Float8)
//
// Codecs check the element type they are given and return
// errs.ErrElementTypeMismatch for a type they do not handle. Fixed-width codecs
// reject payloads of the wrong size with errs.ErrInvalidElementSize.
//
// Decoded text and bytea values never alias the input buffer. Raw is the
// exception: it returns the payload slice as is.
package elem
