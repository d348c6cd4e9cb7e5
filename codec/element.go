package codec

import (
	"database/sql"

	"github.com/arloliu/pgarray/format"
)

// ElementDecoder decodes a single non-null element payload.
//
// DecodeElement receives exactly the payload bytes declared on the wire and returns
// the decoded value and the number of bytes it consumed. Decode reports
// errs.ErrTrailingElementBytes when the count differs from len(src).
type ElementDecoder[T any] interface {
	DecodeElement(oid format.Oid, src []byte) (T, int, error)
}

// ElementEncoder encodes a single element.
//
// AppendElement appends the payload of v to dst and returns the extended slice.
// It returns null=true (and dst unchanged) to write the element as NULL.
//
// The returned slice must extend dst: the encoder reuses it as the scratch buffer
// for the next element, so it must not alias v or other caller memory.
type ElementEncoder[T any] interface {
	AppendElement(dst []byte, v T, oid format.Oid) (out []byte, null bool, err error)
}

// ElementCodec is the per-element capability supplied by the caller.
type ElementCodec[T any] interface {
	ElementDecoder[T]
	ElementEncoder[T]
}

// Funcs adapts a pair of functions to ElementCodec.
type Funcs[T any] struct {
	Decode func(oid format.Oid, src []byte) (T, int, error)
	Append func(dst []byte, v T, oid format.Oid) ([]byte, bool, error)
}

var _ ElementCodec[int] = Funcs[int]{}

// DecodeElement implements ElementDecoder.
func (f Funcs[T]) DecodeElement(oid format.Oid, src []byte) (T, int, error) {
	return f.Decode(oid, src)
}

// AppendElement implements ElementEncoder.
func (f Funcs[T]) AppendElement(dst []byte, v T, oid format.Oid) ([]byte, bool, error) {
	return f.Append(dst, v, oid)
}

type nullable[T any] struct {
	inner ElementCodec[T]
}

// Nullable lifts an element codec to sql.Null values: invalid values encode as NULL
// and decoded values are always valid.
//
// It lets arrays produced by Decode be encoded again with the same element codec.
func Nullable[T any](inner ElementCodec[T]) ElementCodec[sql.Null[T]] {
	return nullable[T]{inner: inner}
}

func (n nullable[T]) DecodeElement(oid format.Oid, src []byte) (sql.Null[T], int, error) {
	v, consumed, err := n.inner.DecodeElement(oid, src)
	if err != nil {
		return sql.Null[T]{}, consumed, err
	}

	return sql.Null[T]{V: v, Valid: true}, consumed, nil
}

func (n nullable[T]) AppendElement(dst []byte, v sql.Null[T], oid format.Oid) ([]byte, bool, error) {
	if !v.Valid {
		return dst, true, nil
	}

	return n.inner.AppendElement(dst, v.V, oid)
}
