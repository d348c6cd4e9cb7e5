package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pgarray/errs"
	"github.com/arloliu/pgarray/format"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"LZ4":  NewLZ4Compressor(),
		"S2":   NewS2Compressor(),
		"Zstd": NewZstdCompressor(),
	}
}

// arrayLikePayload resembles an encoded int4 array: length prefixes interleaved
// with small big-endian values.
func arrayLikePayload(n int) []byte {
	out := make([]byte, 0, n*8)
	for i := range n {
		out = append(out, 0, 0, 0, 4, 0, 0, byte(i>>8), byte(i))
	}

	return out
}

func TestGetCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)
		require.Equal(t, ct, codec.Type())
	}

	_, err := GetCodec(format.CompressionType(0x7f))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil, nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed, 0)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{"single_byte", []byte{0x42}},
		{"empty_array_header", []byte{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 23}},
		{"small_text", []byte("{alpha,beta,gamma}")},
		{"int4_array", arrayLikePayload(4096)},
		{"repeated_pattern", bytes.Repeat([]byte("ABCD"), 100)},
		{"highly_compressible", make([]byte, 1024*1024)},
		{"pseudo_random", func() []byte {
			data := make([]byte, 4096)
			for i := range data {
				data[i] = byte((i*7 + i*i) % 251)
			}

			return data
		}()},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(nil, tc.data)
					require.NoError(t, err)

					decompressed, err := codec.Decompress(compressed, len(tc.data))
					require.NoError(t, err)
					require.Equal(t, tc.data, decompressed)
				})
			}
		})
	}
}

func TestAllCodecs_CompressAppends(t *testing.T) {
	data := arrayLikePayload(64)
	prefix := []byte("prefix")

	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			out, err := codec.Compress(append([]byte{}, prefix...), data)
			require.NoError(t, err)
			require.Equal(t, prefix, out[:len(prefix)])

			decompressed, err := codec.Decompress(out[len(prefix):], len(data))
			require.NoError(t, err)
			require.Equal(t, data, decompressed)
		})
	}
}

func TestAllCodecs_WrongRawLength(t *testing.T) {
	data := arrayLikePayload(32)

	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil, data)
			require.NoError(t, err)

			_, err = codec.Decompress(compressed, len(data)+1)
			require.Error(t, err)
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := []struct {
		name string
		data []byte
	}{
		{"random_bytes", []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"text_as_compressed", []byte("this is not compressed data")},
		{"corrupted_header", []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}},
	}

	for codecName, codec := range getAllCodecs() {
		if codecName == "NoOp" {
			continue
		}
		t.Run(codecName, func(t *testing.T) {
			for _, input := range invalidInputs {
				t.Run(input.name, func(t *testing.T) {
					_, err := codec.Decompress(input.data, 64)
					require.Error(t, err)
				})
			}
		})
	}
}

func TestZstd_RejectsOutputLongerThanRawLen(t *testing.T) {
	codec := NewZstdCompressor()
	data := arrayLikePayload(4096)

	compressed, err := codec.Compress(nil, data)
	require.NoError(t, err)

	_, err = codec.Decompress(compressed, 64)
	require.ErrorIs(t, err, errs.ErrFrameLengthMismatch)

	_, err = codec.Decompress(compressed, len(data)-1)
	require.ErrorIs(t, err, errs.ErrFrameLengthMismatch)
}

func TestNoOp_LengthMismatch(t *testing.T) {
	_, err := NewNoOpCompressor().Decompress([]byte{1, 2, 3}, 2)
	require.ErrorIs(t, err, errs.ErrFrameLengthMismatch)
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const numGoroutines = 16
	data := arrayLikePayload(256)

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			done := make(chan error, numGoroutines)
			for range numGoroutines {
				go func() {
					compressed, err := codec.Compress(nil, data)
					if err != nil {
						done <- err
						return
					}
					out, err := codec.Decompress(compressed, len(data))
					if err == nil && !bytes.Equal(out, data) {
						err = errs.ErrFrameLengthMismatch
					}
					done <- err
				}()
			}

			for range numGoroutines {
				require.NoError(t, <-done)
			}
		})
	}
}
