package compress

import (
	"fmt"

	"github.com/arloliu/pgarray/errs"
	"github.com/arloliu/pgarray/format"
)

// Compressor compresses an encoded array value.
type Compressor interface {
	// Compress appends the compressed form of src to dst and returns the extended slice.
	// src is not modified.
	Compress(dst, src []byte) ([]byte, error)
}

// Decompressor restores data produced by the matching Compressor.
type Decompressor interface {
	// Decompress returns the decompressed form of src, which must be exactly rawLen
	// bytes long. Corrupt input or a size other than rawLen is an error.
	//
	// The result may alias src for codecs that do not transform the data.
	Decompress(src []byte, rawLen int) ([]byte, error)
}

// Codec combines both directions of one compression algorithm.
//
// Implementations are safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
	Type() format.CompressionType
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec for compressionType.
//
// Returns errs.ErrInvalidCompression for an unknown type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s (%d)", errs.ErrInvalidCompression, compressionType, uint8(compressionType))
}

func checkRawLen(name string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s produced %d bytes, want %d", errs.ErrFrameLengthMismatch, name, got, want)
	}

	return nil
}
