package frame

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/arloliu/pgarray/compress"
	"github.com/arloliu/pgarray/errs"
	"github.com/arloliu/pgarray/internal/hash"
)

// Pack wraps raw, normally an encoded array value, in a frame.
//
// The payload is compressed with the configured algorithm and the header records
// both sizes and the xxHash64 checksum of raw.
func Pack(raw []byte, opts ...Option) ([]byte, error) {
	return AppendPack(make([]byte, 0, HeaderSize+len(raw)), raw, opts...)
}

// AppendPack is like Pack but appends the frame to dst.
func AppendPack(dst, raw []byte, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return dst, err
	}

	return appendPack(dst, raw, cfg)
}

func appendPack(dst, raw []byte, cfg *Config) ([]byte, error) {
	if uint64(len(raw)) > math.MaxUint32 {
		return dst, fmt.Errorf("%w: %d raw bytes do not fit a frame", errs.ErrInvalidFrame, len(raw))
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return dst, err
	}

	start := len(dst)
	header := Header{
		Compression: cfg.compression,
		RawLen:      uint32(len(raw)), //nolint:gosec
		Checksum:    hash.Checksum(raw),
	}
	dst = header.AppendTo(dst)

	dst, err = codec.Compress(dst, raw)
	if err != nil {
		return dst[:start], err
	}

	payloadLen := len(dst) - start - HeaderSize
	if uint64(payloadLen) > math.MaxUint32 {
		return dst[:start], fmt.Errorf("%w: %d payload bytes do not fit a frame", errs.ErrInvalidFrame, payloadLen)
	}
	header.PayloadLen = uint32(payloadLen) //nolint:gosec
	header.AppendTo(dst[start:start])

	Logger().Debug("packed array frame",
		zap.Stringer("compression", cfg.compression),
		zap.Int("raw_size", len(raw)),
		zap.Int("payload_size", payloadLen),
	)

	return dst, nil
}

// Unpack verifies a single frame and returns the raw bytes it carries.
//
// data must hold exactly one frame.
//
// Returns:
//   - []byte: the raw bytes; for uncompressed frames this aliases data
//   - error: errs.ErrInvalidFrame (wrapping the specific cause), errs.ErrTruncated,
//     errs.ErrChecksumMismatch, or errs.ErrFrameLengthMismatch
func Unpack(data []byte, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return unpack(data, cfg)
}

func unpack(data []byte, cfg *Config) ([]byte, error) {
	raw, n, err := unpackFrom(data, cfg)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: %d bytes after frame", errs.ErrTrailingBytes, len(data)-n)
	}

	return raw, nil
}

// UnpackFrom unpacks the frame at the start of data and returns its raw bytes and
// the number of bytes the frame occupied.
func UnpackFrom(data []byte, opts ...Option) ([]byte, int, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, 0, err
	}

	return unpackFrom(data, cfg)
}

func unpackFrom(data []byte, cfg *Config) ([]byte, int, error) {
	var header Header
	if err := header.Parse(data); err != nil {
		return nil, 0, err
	}
	if header.FrameSize() > len(data) {
		return nil, 0, fmt.Errorf("%w: frame needs %d bytes, have %d", errs.ErrTruncated, header.FrameSize(), len(data))
	}

	raw, err := unpackPayload(&header, data[HeaderSize:header.FrameSize()], cfg)
	if err != nil {
		return nil, 0, err
	}

	return raw, header.FrameSize(), nil
}

func unpackPayload(header *Header, payload []byte, cfg *Config) ([]byte, error) {
	if int64(header.RawLen) > int64(cfg.maxRawSize) {
		return nil, fmt.Errorf("%w: raw size %d exceeds limit %d", errs.ErrInvalidFrame, header.RawLen, cfg.maxRawSize)
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(payload, int(header.RawLen))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidFrame, err)
	}

	if cfg.verifyChecksum && !hash.Verify(raw, header.Checksum) {
		Logger().Debug("frame checksum mismatch",
			zap.Uint64("want", header.Checksum),
			zap.Uint64("got", hash.Checksum(raw)),
		)

		return nil, fmt.Errorf("%w: want %#016x", errs.ErrChecksumMismatch, header.Checksum)
	}

	return raw, nil
}
