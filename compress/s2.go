package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/pgarray/format"
)

// S2Compressor provides S2 (Snappy-compatible) compression: fast in both directions
// with a moderate ratio.
type S2Compressor struct{}

var _ Codec = S2Compressor{}

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Type implements Codec.
func (c S2Compressor) Type() format.CompressionType {
	return format.CompressionS2
}

// Compress appends the S2 block for src to dst.
func (c S2Compressor) Compress(dst, src []byte) ([]byte, error) {
	return append(dst, s2.Encode(nil, src)...), nil
}

// Decompress decodes an S2 block holding exactly rawLen bytes.
func (c S2Compressor) Decompress(src []byte, rawLen int) ([]byte, error) {
	n, err := s2.DecodedLen(src)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if err := checkRawLen("s2", n, rawLen); err != nil {
		return nil, err
	}

	out, err := s2.Decode(make([]byte, rawLen), src)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}
