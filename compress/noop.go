package compress

import "github.com/arloliu/pgarray/format"

// NoOpCompressor stores data uncompressed.
//
// It is the right choice for small arrays, where compression framing costs more
// than it saves, and for payloads that are already compressed.
type NoOpCompressor struct{}

var _ Codec = NoOpCompressor{}

// NewNoOpCompressor creates a compressor that copies data unchanged.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Type implements Codec.
func (c NoOpCompressor) Type() format.CompressionType {
	return format.CompressionNone
}

// Compress appends src to dst unchanged.
func (c NoOpCompressor) Compress(dst, src []byte) ([]byte, error) {
	return append(dst, src...), nil
}

// Decompress returns src itself after checking its length.
func (c NoOpCompressor) Decompress(src []byte, rawLen int) ([]byte, error) {
	if err := checkRawLen("none", len(src), rawLen); err != nil {
		return nil, err
	}

	return src, nil
}
