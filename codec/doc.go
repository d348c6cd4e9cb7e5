// Package codec converts between array.Array values and the PostgreSQL binary
// array wire format.
//
// The codec handles the header, dimensions, null sentinels and length prefixes.
// Element payloads are delegated to a caller-supplied ElementCodec, which keeps
// this package free of any knowledge of concrete element types:
//
//	a := array.FromSlice([]int32{1, 2, 3}, 1)
//	data, err := codec.Encode(a, format.OidInt4, elem.Int4)
//
//	decoded, err := codec.Decode(data, format.OidInt4, elem.Int4)
//	// decoded is *array.Array[sql.Null[int32]]
//
// # Errors
//
// Decoding never panics on malformed input. Truncated buffers yield
// errs.ErrTruncated and an element decoder that leaves payload bytes unread yields
// errs.ErrTrailingElementBytes; both are wrapped with the offending position.
// Encoding errors returned by the element codec are propagated with the element
// position added.
//
// # Logging
//
// Decode failures are logged at debug level through the logger installed with
// SetLogger. The default logger discards everything.
package codec
