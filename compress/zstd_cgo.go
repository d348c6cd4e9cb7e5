//go:build gozstd && cgo

package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/valyala/gozstd"

	"github.com/arloliu/pgarray/errs"
)

const gozstdLevel = 3

// Compress appends the zstd frame for src to dst.
func (c ZstdCompressor) Compress(dst, src []byte) ([]byte, error) {
	return gozstd.CompressLevel(dst, src, gozstdLevel), nil
}

// Decompress decodes a zstd frame holding exactly rawLen bytes.
//
// The frame is streamed into a buffer of rawLen bytes, so input that expands
// past rawLen is rejected without being decoded in full.
func (c ZstdCompressor) Decompress(src []byte, rawLen int) ([]byte, error) {
	if len(src) == 0 && rawLen == 0 {
		return []byte{}, nil
	}

	if err := checkZstdContentSize(src, rawLen); err != nil {
		return nil, err
	}

	zr := gozstd.NewReader(bytes.NewReader(src))
	defer zr.Release()

	out := make([]byte, rawLen)
	n, err := io.ReadFull(zr, out)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, checkRawLen("zstd", n, rawLen)
	}
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	var extra [1]byte
	if m, err := zr.Read(extra[:]); m > 0 {
		return nil, fmt.Errorf("%w: zstd output exceeds %d bytes", errs.ErrFrameLengthMismatch, rawLen)
	} else if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}
