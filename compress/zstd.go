package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/pgarray/errs"
	"github.com/arloliu/pgarray/format"
)

// ZstdCompressor provides Zstandard compression.
//
// It gives the best ratio of the built-in codecs and suits arrays that are stored
// for a long time or sent over slow links. The default build uses the pure Go
// klauspost/compress implementation; building with the gozstd tag (and cgo)
// switches to the libzstd binding. Both produce standard zstd frames and can
// read each other's output.
type ZstdCompressor struct{}

var _ Codec = ZstdCompressor{}

// NewZstdCompressor creates a Zstd compressor with the default level.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// Type implements Codec.
func (c ZstdCompressor) Type() format.CompressionType {
	return format.CompressionZstd
}

// checkZstdContentSize rejects a zstd frame whose header declares a content size
// other than rawLen. Frames without a declared size pass and are bounded while
// decoding.
func checkZstdContentSize(src []byte, rawLen int) error {
	var h zstd.Header
	if err := h.Decode(src); err != nil {
		return fmt.Errorf("zstd decompression failed: %w", err)
	}
	if h.HasFCS && h.FrameContentSize != uint64(rawLen) { //nolint:gosec
		return fmt.Errorf("%w: zstd frame declares %d bytes, want %d",
			errs.ErrFrameLengthMismatch, h.FrameContentSize, rawLen)
	}

	return nil
}
