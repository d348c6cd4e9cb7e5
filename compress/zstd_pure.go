//go:build !gozstd || !cgo

package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/pgarray/errs"
)

// Decoders and encoders are designed for reuse: they run without allocations once
// warmed up.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
			zstd.WithDecodeAllCapLimit(true),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false), // frames carry their own checksum
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

// Compress appends the zstd frame for src to dst.
func (c ZstdCompressor) Compress(dst, src []byte) ([]byte, error) {
	encoder := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(src, dst), nil
}

// Decompress decodes a zstd frame holding exactly rawLen bytes.
func (c ZstdCompressor) Decompress(src []byte, rawLen int) ([]byte, error) {
	if len(src) == 0 && rawLen == 0 {
		return []byte{}, nil
	}

	if err := checkZstdContentSize(src, rawLen); err != nil {
		return nil, err
	}

	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	// output is capped at cap(dst), so frames expanding past rawLen stop early
	out, err := decoder.DecodeAll(src, make([]byte, 0, rawLen))
	if errors.Is(err, zstd.ErrDecoderSizeExceeded) {
		return nil, fmt.Errorf("%w: zstd output exceeds %d bytes", errs.ErrFrameLengthMismatch, rawLen)
	}
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if err := checkRawLen("zstd", len(out), rawLen); err != nil {
		return nil, err
	}

	return out, nil
}
