// Package frame stores encoded array values in self-describing, checksummed frames.
//
// The array wire format has no integrity check and no compression. A frame adds
// both so encoded arrays can be written to files, caches or message queues:
//
//	data, err := frame.EncodeArray(a, format.OidInt8, elem.Int8,
//	    frame.WithCompression(format.CompressionZstd))
//
//	decoded, err := frame.DecodeArray(data, format.OidInt8, elem.Int8)
//
// Frames record their own length, so they can be concatenated. Writer and Reader
// append frames to and read them from a stream.
//
// Every frame carries the xxHash64 of the uncompressed bytes; Unpack rejects a
// frame whose content does not match with errs.ErrChecksumMismatch.
package frame
