package frame

import (
	"fmt"

	"github.com/arloliu/pgarray/endian"
	"github.com/arloliu/pgarray/errs"
	"github.com/arloliu/pgarray/format"
)

// Header is the fixed-size header in front of every frame payload.
//
// Layout, little-endian:
//
//	offset 0-1   magic
//	offset 2     version
//	offset 3     compression type
//	offset 4-7   raw (decompressed) length
//	offset 8-11  payload (compressed) length
//	offset 12-19 xxHash64 of the raw bytes
type Header struct {
	Compression format.CompressionType
	RawLen      uint32
	PayloadLen  uint32
	Checksum    uint64
}

// FrameSize returns the total frame size: header plus payload.
func (h *Header) FrameSize() int {
	return HeaderSize + int(h.PayloadLen)
}

// AppendTo appends the encoded header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	dst = engine.AppendUint16(dst, Magic)
	dst = append(dst, Version, uint8(h.Compression))
	dst = engine.AppendUint32(dst, h.RawLen)
	dst = engine.AppendUint32(dst, h.PayloadLen)

	return engine.AppendUint64(dst, h.Checksum)
}

// Bytes returns the encoded header.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// Parse parses the header from the first HeaderSize bytes of data.
//
// Returns:
//   - error: errs.ErrInvalidHeaderSize if data is too short, errs.ErrInvalidMagicNumber,
//     errs.ErrUnsupportedVersion or errs.ErrInvalidCompression, all wrapped in
//     errs.ErrInvalidFrame
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: %w: %d bytes", errs.ErrInvalidFrame, errs.ErrInvalidHeaderSize, len(data))
	}

	engine := endian.GetLittleEndianEngine()

	if magic := engine.Uint16(data[0:2]); magic != Magic {
		return fmt.Errorf("%w: %w: %#04x", errs.ErrInvalidFrame, errs.ErrInvalidMagicNumber, magic)
	}
	if data[2] != Version {
		return fmt.Errorf("%w: %w: %d", errs.ErrInvalidFrame, errs.ErrUnsupportedVersion, data[2])
	}

	h.Compression = format.CompressionType(data[3])
	switch h.Compression {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
	default:
		return fmt.Errorf("%w: %w: %d", errs.ErrInvalidFrame, errs.ErrInvalidCompression, data[3])
	}

	h.RawLen = engine.Uint32(data[4:8])
	h.PayloadLen = engine.Uint32(data[8:12])
	h.Checksum = engine.Uint64(data[12:20])

	return nil
}

// ParseHeader parses a frame header from the start of data.
func ParseHeader(data []byte) (Header, error) {
	var h Header
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}
