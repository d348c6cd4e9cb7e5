package codec

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/pgarray/array"
	"github.com/arloliu/pgarray/errs"
	"github.com/arloliu/pgarray/format"
	"github.com/arloliu/pgarray/wire"
)

// Decode decodes a complete array value.
//
// oid is the caller's element type; it is passed to dec for every element and
// supersedes the element type in the header unless WithElementTypeCheck is set.
// Null elements (negative length) decode as invalid sql.Null values.
//
// Parameters:
//   - data: the array value, exactly as received for the column
//   - oid: element type handle
//   - dec: element payload decoder
//   - opts: decoding limits and checks
//
// Returns:
//   - *array.Array[sql.Null[T]]: the decoded array with the header's dimensions
//   - error: errs.ErrTruncated, errs.ErrInvalidDimension, errs.ErrTrailingElementBytes,
//     errs.ErrTrailingBytes, a limit error, or an error from dec
func Decode[T any](data []byte, oid format.Oid, dec ElementDecoder[T], opts ...DecoderOption) (*array.Array[sql.Null[T]], error) {
	a, n, err := DecodeFrom(data, oid, dec, opts...)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		err = fmt.Errorf("%w: %d bytes after offset %d", errs.ErrTrailingBytes, len(data)-n, n)
		logDecodeError(oid, data, err)

		return nil, err
	}

	return a, nil
}

// DecodeFrom decodes one array value from the front of data and returns it with the
// number of bytes it occupied. Bytes past the value are left untouched.
func DecodeFrom[T any](data []byte, oid format.Oid, dec ElementDecoder[T], opts ...DecoderOption) (*array.Array[sql.Null[T]], int, error) {
	return decodeAs(data, oid, dec, opts, func(_ int, v T, valid bool) (sql.Null[T], error) {
		return sql.Null[T]{V: v, Valid: valid}, nil
	})
}

// DecodeNotNull decodes an array whose elements must all be present.
//
// Returns errs.ErrUnexpectedNull, with the element position, at the first null element.
func DecodeNotNull[T any](data []byte, oid format.Oid, dec ElementDecoder[T], opts ...DecoderOption) (*array.Array[T], error) {
	a, n, err := decodeAs(data, oid, dec, opts, func(i int, v T, valid bool) (T, error) {
		if !valid {
			return v, fmt.Errorf("%w: element %d", errs.ErrUnexpectedNull, i)
		}

		return v, nil
	})
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		err = fmt.Errorf("%w: %d bytes after offset %d", errs.ErrTrailingBytes, len(data)-n, n)
		logDecodeError(oid, data, err)

		return nil, err
	}

	return a, nil
}

func decodeAs[T, E any](
	data []byte,
	oid format.Oid,
	dec ElementDecoder[T],
	opts []DecoderOption,
	wrap func(i int, v T, valid bool) (E, error),
) (*array.Array[E], int, error) {
	cfg, err := newDecoderConfig(opts...)
	if err != nil {
		return nil, 0, err
	}

	a, n, err := decodeElements(data, oid, dec, cfg, wrap)
	if err != nil {
		logDecodeError(oid, data, err)
		return nil, 0, err
	}

	return a, n, nil
}

func decodeElements[T, E any](
	data []byte,
	oid format.Oid,
	dec ElementDecoder[T],
	cfg *DecoderConfig,
	wrap func(i int, v T, valid bool) (E, error),
) (*array.Array[E], int, error) {
	r := wire.NewReader(data)

	var header wire.Header
	if err := header.Parse(r); err != nil {
		return nil, 0, err
	}

	if cfg.maxDims > 0 && header.NDim() > cfg.maxDims {
		return nil, 0, fmt.Errorf("%w: %d dimensions, limit %d", errs.ErrTooManyDimensions, header.NDim(), cfg.maxDims)
	}
	if cfg.checkElementType && header.ElementType != oid {
		return nil, 0, fmt.Errorf("%w: header has %s, want %s", errs.ErrElementTypeMismatch, header.ElementType, oid)
	}

	count, err := header.ElementCount()
	if err != nil {
		return nil, 0, err
	}
	if cfg.maxElements > 0 && count > cfg.maxElements {
		return nil, 0, fmt.Errorf("%w: %d elements, limit %d", errs.ErrTooManyElements, count, cfg.maxElements)
	}
	// every element carries at least its length prefix
	if count > r.Remaining()/wire.ElementLengthSize {
		return nil, 0, fmt.Errorf("%w: %d elements need at least %d bytes, have %d",
			errs.ErrTruncated, count, count*wire.ElementLengthSize, r.Remaining())
	}

	elems := make([]E, count)
	for i := range elems {
		length, err := r.ReadInt32("element length")
		if err != nil {
			return nil, 0, fmt.Errorf("element %d: %w", i, err)
		}

		var (
			v     T
			valid bool
		)
		if length >= 0 {
			payload, err := r.ReadBytes(int(length), "element payload")
			if err != nil {
				return nil, 0, fmt.Errorf("element %d: %w", i, err)
			}

			var consumed int
			v, consumed, err = dec.DecodeElement(oid, payload)
			if err != nil {
				return nil, 0, fmt.Errorf("element %d: %w", i, err)
			}
			if consumed != len(payload) {
				return nil, 0, fmt.Errorf("%w: element %d consumed %d of %d bytes",
					errs.ErrTrailingElementBytes, i, consumed, len(payload))
			}
			valid = true
		}

		if elems[i], err = wrap(i, v, valid); err != nil {
			return nil, 0, err
		}
	}

	a, err := array.FromParts(elems, header.Dims)
	if err != nil {
		return nil, 0, err
	}

	return a, r.Offset(), nil
}

func logDecodeError(oid format.Oid, data []byte, err error) {
	Logger().Debug("array decode failed",
		zap.Stringer("element_type", oid),
		zap.Int("size", len(data)),
		zap.Error(err),
	)
}
