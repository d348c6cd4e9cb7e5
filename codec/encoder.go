package codec

import (
	"fmt"
	"math"

	"github.com/arloliu/pgarray/array"
	"github.com/arloliu/pgarray/endian"
	"github.com/arloliu/pgarray/errs"
	"github.com/arloliu/pgarray/format"
	"github.com/arloliu/pgarray/internal/pool"
	"github.com/arloliu/pgarray/wire"
)

// Encode encodes a as an array value with element type oid.
//
// Elements are written in a's row-major order. For each element enc either reports
// null, which is written as length -1 without payload, or appends the payload.
//
// Returns:
//   - []byte: the encoded value, owned by the caller
//   - error: errs.ErrElementTooLarge, or an error from enc wrapped with the element position
func Encode[T any](a *array.Array[T], oid format.Oid, enc ElementEncoder[T], opts ...EncoderOption) ([]byte, error) {
	return AppendEncode(nil, a, oid, enc, opts...)
}

// AppendEncode is like Encode but appends the value to dst.
// On error it returns dst unmodified in length.
func AppendEncode[T any](dst []byte, a *array.Array[T], oid format.Oid, enc ElementEncoder[T], opts ...EncoderOption) ([]byte, error) {
	cfg, err := newEncoderConfig(opts...)
	if err != nil {
		return dst, err
	}

	start := len(dst)
	header := wire.Header{
		HasNull:     wire.HasNullFlag,
		ElementType: oid,
		Dims:        a.Dimensions(),
	}
	dst = header.AppendTo(dst)

	engine := endian.WireEngine()
	scratch := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(scratch)

	hasNull := false
	i := 0
	for v := range a.All() {
		payload, null, err := enc.AppendElement(scratch.B[:0], v, oid)
		if err != nil {
			return dst[:start], fmt.Errorf("encode element %d: %w", i, err)
		}

		if null {
			hasNull = true
			dst = endian.AppendInt32(engine, dst, wire.NullLength)
		} else {
			if len(payload) > math.MaxInt32 {
				return dst[:start], fmt.Errorf("%w: element %d has %d bytes", errs.ErrElementTooLarge, i, len(payload))
			}
			dst = endian.AppendInt32(engine, dst, int32(len(payload))) //nolint:gosec
			dst = append(dst, payload...)
			// keep a grown buffer for the following elements and the pool
			scratch.B = payload[:0]
		}
		i++
	}

	if cfg.computeHasNull && !hasNull {
		endian.PutInt32(engine, dst[start+4:start+8], wire.NoNullFlag)
	}

	return dst, nil
}
