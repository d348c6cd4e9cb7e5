package frame

const (
	// Magic identifies a frame. It is stored little-endian as the first two bytes.
	Magic uint16 = 0xA7A1
	// Version is the only frame layout version.
	Version uint8 = 1

	// HeaderSize is the fixed frame header size in bytes.
	HeaderSize = 20

	// DefaultMaxRawSize bounds the decompressed size accepted by Unpack.
	DefaultMaxRawSize = 256 << 20
)
