// Package wire describes the binary layout of PostgreSQL array values.
//
// A value is a header followed by its elements in row-major order:
//
//	int32 ndim
//	int32 has_null            // 1 when encoding; ignored when decoding
//	int32 element_type_id
//	repeat ndim times:
//	    int32 dim_length
//	    int32 dim_lower_bound
//	repeat (product of dim_length) times:
//	    int32 element_byte_length  // -1 => null, no payload
//	    byte[element_byte_length]
//
// All integers are big-endian. The package provides the header type and a
// bounds-checked Reader; element handling lives in the codec package.
package wire
