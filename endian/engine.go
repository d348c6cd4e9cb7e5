// Package endian provides the byte order engines used by the pgarray wire and frame formats.
//
// The array wire format is big-endian (network order) throughout; the frame envelope
// header is little-endian. Both engines are the standard library implementations,
// exposed through a single EndianEngine interface so callers can read, write and
// append with one value.
//
//	engine := endian.WireEngine()
//	buf = endian.AppendInt32(engine, buf, -1)
//	v := endian.Int32(engine, buf[0:4])
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned engines
// are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// WireEngine returns the engine used by the array wire format (big-endian).
func WireEngine() EndianEngine {
	return binary.BigEndian
}

// Int32 reads a signed 32-bit integer from the first four bytes of b.
// Panics if len(b) < 4, matching binary.ByteOrder.
func Int32(engine EndianEngine, b []byte) int32 {
	return int32(engine.Uint32(b)) //nolint:gosec
}

// PutInt32 writes a signed 32-bit integer into the first four bytes of b.
func PutInt32(engine EndianEngine, b []byte, v int32) {
	engine.PutUint32(b, uint32(v)) //nolint:gosec
}

// AppendInt32 appends the encoding of a signed 32-bit integer to dst.
func AppendInt32(engine EndianEngine, dst []byte, v int32) []byte {
	return engine.AppendUint32(dst, uint32(v)) //nolint:gosec
}
