package frame

import (
	"fmt"

	"github.com/arloliu/pgarray/codec"
	"github.com/arloliu/pgarray/format"
	"github.com/arloliu/pgarray/internal/options"
)

// Config holds frame packing and unpacking settings.
type Config struct {
	compression    format.CompressionType
	maxRawSize     int
	verifyChecksum bool
	encoderOpts    []codec.EncoderOption
	decoderOpts    []codec.DecoderOption
}

// Option configures a Config.
type Option = options.Option[*Config]

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		compression:    format.CompressionNone,
		maxRawSize:     DefaultMaxRawSize,
		verifyChecksum: true,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithCompression selects the compression applied by Pack. The default is
// format.CompressionNone. Unpack reads the compression type from the header.
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(c *Config) error {
		switch ct {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			c.compression = ct
			return nil
		default:
			return fmt.Errorf("invalid frame compression: %s", ct)
		}
	})
}

// WithMaxRawSize limits the decompressed size a frame may declare, protecting
// Unpack against decompression bombs. Zero means DefaultMaxRawSize.
func WithMaxRawSize(n int) Option {
	return options.New(func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("invalid max raw size: %d", n)
		}
		if n == 0 {
			n = DefaultMaxRawSize
		}
		c.maxRawSize = n

		return nil
	})
}

// WithChecksumVerification controls whether Unpack verifies the raw checksum.
// Enabled by default.
func WithChecksumVerification(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.verifyChecksum = enabled
	})
}

// WithEncoderOptions passes opts to codec.Encode in EncodeArray.
// Repeated calls accumulate.
func WithEncoderOptions(opts ...codec.EncoderOption) Option {
	return options.NoError(func(c *Config) {
		c.encoderOpts = append(c.encoderOpts, opts...)
	})
}

// WithDecoderOptions passes opts to codec.Decode in DecodeArray, for example
// element and dimension limits for stored data that is not trusted.
// Repeated calls accumulate.
func WithDecoderOptions(opts ...codec.DecoderOption) Option {
	return options.NoError(func(c *Config) {
		c.decoderOpts = append(c.decoderOpts, opts...)
	})
}
