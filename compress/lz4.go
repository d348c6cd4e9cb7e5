package compress

import (
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/pgarray/format"
)

// lz4.Compressor keeps a hash table that is worth reusing.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor provides LZ4 block compression, with the fastest decompression of
// the built-in codecs.
//
// LZ4 blocks do not record their decompressed size; the frame's raw length is used
// to size the output buffer exactly.
type LZ4Compressor struct{}

var _ Codec = LZ4Compressor{}

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Type implements Codec.
func (c LZ4Compressor) Type() format.CompressionType {
	return format.CompressionLZ4
}

// Compress appends the LZ4 block for src to dst.
func (c LZ4Compressor) Compress(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	start := len(dst)
	bound := lz4.CompressBlockBound(len(src))
	dst = append(dst, make([]byte, bound)...)

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(src, dst[start:])
	if err != nil {
		return dst[:start], fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:start+n], nil
}

// Decompress decodes an LZ4 block holding exactly rawLen bytes.
func (c LZ4Compressor) Decompress(src []byte, rawLen int) ([]byte, error) {
	if len(src) == 0 {
		if err := checkRawLen("lz4", 0, rawLen); err != nil {
			return nil, err
		}

		return []byte{}, nil
	}

	out := make([]byte, rawLen)
	n, err := lz4.UncompressBlock(src, out)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}
	if err := checkRawLen("lz4", n, rawLen); err != nil {
		return nil, err
	}

	return out, nil
}
