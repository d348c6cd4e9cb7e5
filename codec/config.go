package codec

import (
	"fmt"

	"github.com/arloliu/pgarray/internal/options"
)

// DecoderConfig holds the limits and checks applied while decoding.
//
// The zero value decodes anything that is well formed.
type DecoderConfig struct {
	maxDims          int
	maxElements      int
	checkElementType bool
}

// DecoderOption configures a DecoderConfig.
type DecoderOption = options.Option[*DecoderConfig]

func newDecoderConfig(opts ...DecoderOption) (*DecoderConfig, error) {
	cfg := &DecoderConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithMaxDimensions rejects arrays with more than n dimensions.
// Zero means unlimited. PostgreSQL itself allows at most 6.
func WithMaxDimensions(n int) DecoderOption {
	return options.New(func(c *DecoderConfig) error {
		if n < 0 {
			return fmt.Errorf("invalid max dimensions: %d", n)
		}
		c.maxDims = n

		return nil
	})
}

// WithMaxElements rejects arrays with more than n elements before any element is
// decoded. Zero means unlimited.
func WithMaxElements(n int) DecoderOption {
	return options.New(func(c *DecoderConfig) error {
		if n < 0 {
			return fmt.Errorf("invalid max elements: %d", n)
		}
		c.maxElements = n

		return nil
	})
}

// WithElementTypeCheck makes decoding fail with errs.ErrElementTypeMismatch when the
// element type in the header differs from the caller's element type.
//
// By default the header's element type is read and ignored.
func WithElementTypeCheck(enabled bool) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.checkElementType = enabled
	})
}

// EncoderConfig holds encoding choices.
type EncoderConfig struct {
	computeHasNull bool
}

// EncoderOption configures an EncoderConfig.
type EncoderOption = options.Option[*EncoderConfig]

func newEncoderConfig(opts ...EncoderOption) (*EncoderConfig, error) {
	cfg := &EncoderConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithComputedNullFlag writes a has_null flag of 1 only when at least one null
// element was written, and 0 otherwise.
//
// By default the flag is always 1 ("may contain nulls").
func WithComputedNullFlag(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.computeHasNull = enabled
	})
}
