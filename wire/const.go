package wire

// Sizes of the fixed parts of the array wire format, in bytes.
const (
	FixedHeaderSize    = 12 // ndim(4) + has_null(4) + element_type(4)
	DimensionEntrySize = 8  // length(4) + lower_bound(4)
	ElementLengthSize  = 4  // per-element length prefix
)

const (
	// NullLength is the element length written for a null element. Any negative
	// length is read as null.
	NullLength int32 = -1

	// HasNullFlag is the has_null header value meaning "may contain nulls".
	HasNullFlag int32 = 1
	// NoNullFlag is the has_null header value meaning "contains no nulls".
	NoNullFlag int32 = 0
)
