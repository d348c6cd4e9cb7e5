package elem

import (
	"fmt"
	"math"

	"github.com/arloliu/pgarray/endian"
	"github.com/arloliu/pgarray/errs"
	"github.com/arloliu/pgarray/format"
)

// Fixed is a codec for a fixed-width element type.
//
// The payload of every element is exactly Size bytes in network byte order.
type Fixed[T any] struct {
	name   string
	size   int
	oids   []format.Oid
	decode func(engine endian.EndianEngine, src []byte) (T, error)
	encode func(engine endian.EndianEngine, dst []byte, v T) []byte
}

// Size returns the payload size in bytes.
func (f Fixed[T]) Size() int {
	return f.size
}

// DecodeElement implements codec.ElementDecoder.
func (f Fixed[T]) DecodeElement(oid format.Oid, src []byte) (T, int, error) {
	var zero T
	if err := checkType(f.name, f.oids, oid); err != nil {
		return zero, 0, err
	}
	if err := checkSize(f.name, f.size, src); err != nil {
		return zero, 0, err
	}

	v, err := f.decode(endian.WireEngine(), src)
	if err != nil {
		return zero, 0, err
	}

	return v, f.size, nil
}

// AppendElement implements codec.ElementEncoder. Fixed-width values are never null.
func (f Fixed[T]) AppendElement(dst []byte, v T, oid format.Oid) ([]byte, bool, error) {
	if err := checkType(f.name, f.oids, oid); err != nil {
		return dst, false, err
	}

	return f.encode(endian.WireEngine(), dst, v), false, nil
}

var (
	// Bool encodes bool as one byte, 0 or 1.
	Bool = Fixed[bool]{
		name: "bool",
		size: 1,
		oids: []format.Oid{format.OidBool},
		decode: func(_ endian.EndianEngine, src []byte) (bool, error) {
			switch src[0] {
			case 0:
				return false, nil
			case 1:
				return true, nil
			default:
				return false, fmt.Errorf("%w: bool byte %#x", errs.ErrInvalidElementPayload, src[0])
			}
		},
		encode: func(_ endian.EndianEngine, dst []byte, v bool) []byte {
			if v {
				return append(dst, 1)
			}

			return append(dst, 0)
		},
	}

	// Char encodes the single-byte "char" type.
	Char = Fixed[int8]{
		name: "char",
		size: 1,
		oids: []format.Oid{format.OidChar},
		decode: func(_ endian.EndianEngine, src []byte) (int8, error) {
			return int8(src[0]), nil //nolint:gosec
		},
		encode: func(_ endian.EndianEngine, dst []byte, v int8) []byte {
			return append(dst, byte(v))
		},
	}

	// Int2 encodes smallint.
	Int2 = Fixed[int16]{
		name: "int2",
		size: 2,
		oids: []format.Oid{format.OidInt2},
		decode: func(engine endian.EndianEngine, src []byte) (int16, error) {
			return int16(engine.Uint16(src)), nil //nolint:gosec
		},
		encode: func(engine endian.EndianEngine, dst []byte, v int16) []byte {
			return engine.AppendUint16(dst, uint16(v)) //nolint:gosec
		},
	}

	// Int4 encodes integer.
	Int4 = Fixed[int32]{
		name: "int4",
		size: 4,
		oids: []format.Oid{format.OidInt4},
		decode: func(engine endian.EndianEngine, src []byte) (int32, error) {
			return endian.Int32(engine, src), nil
		},
		encode: func(engine endian.EndianEngine, dst []byte, v int32) []byte {
			return endian.AppendInt32(engine, dst, v)
		},
	}

	// Int8 encodes bigint.
	Int8 = Fixed[int64]{
		name: "int8",
		size: 8,
		oids: []format.Oid{format.OidInt8},
		decode: func(engine endian.EndianEngine, src []byte) (int64, error) {
			return int64(engine.Uint64(src)), nil //nolint:gosec
		},
		encode: func(engine endian.EndianEngine, dst []byte, v int64) []byte {
			return engine.AppendUint64(dst, uint64(v)) //nolint:gosec
		},
	}

	// Float4 encodes real.
	Float4 = Fixed[float32]{
		name: "float4",
		size: 4,
		oids: []format.Oid{format.OidFloat4},
		decode: func(engine endian.EndianEngine, src []byte) (float32, error) {
			return math.Float32frombits(engine.Uint32(src)), nil
		},
		encode: func(engine endian.EndianEngine, dst []byte, v float32) []byte {
			return engine.AppendUint32(dst, math.Float32bits(v))
		},
	}

	// Float8 encodes double precision.
	Float8 = Fixed[float64]{
		name: "float8",
		size: 8,
		oids: []format.Oid{format.OidFloat8},
		decode: func(engine endian.EndianEngine, src []byte) (float64, error) {
			return math.Float64frombits(engine.Uint64(src)), nil
		},
		encode: func(engine endian.EndianEngine, dst []byte, v float64) []byte {
			return engine.AppendUint64(dst, math.Float64bits(v))
		},
	}
)
