package format

import "strings"

// CompressionType identifies the compression applied to a framed array payload.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a case-insensitive name to a CompressionType.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch strings.ToLower(name) {
	case "none", "":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
