package compress

import (
	"testing"
)

func BenchmarkAllCodecs_Compress(b *testing.B) {
	data := arrayLikePayload(8192)

	for name, codec := range getAllCodecs() {
		b.Run(name, func(b *testing.B) {
			buf := make([]byte, 0, len(data)*2)
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for b.Loop() {
				var err error
				if buf, err = codec.Compress(buf[:0], data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAllCodecs_Decompress(b *testing.B) {
	data := arrayLikePayload(8192)

	for name, codec := range getAllCodecs() {
		compressed, err := codec.Compress(nil, data)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := codec.Decompress(compressed, len(data)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
