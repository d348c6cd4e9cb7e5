// Package compress provides the compression codecs used by the frame package to
// store encoded arrays compactly.
//
// Four algorithms are available, identified by format.CompressionType:
//   - None: data is stored as is
//   - Zstd: best ratio, moderate speed
//   - S2: fast in both directions, moderate ratio
//   - LZ4: fastest decompression
//
// Encoded arrays compress well when they hold many small fixed-width elements,
// since every element carries a four-byte length prefix that is almost always the
// same. Arrays of short distinct strings gain little.
//
// Codecs append to a caller-supplied buffer on compression and are told the
// decompressed size on decompression, which the frame header records. An output of
// any other size is reported as errs.ErrFrameLengthMismatch.
//
// All codecs are safe for concurrent use; encoder and decoder state is pooled.
package compress
