package frame

import (
	"database/sql"

	"github.com/arloliu/pgarray/array"
	"github.com/arloliu/pgarray/codec"
	"github.com/arloliu/pgarray/format"
)

// EncodeArray encodes a with codec.Encode and packs the result in a frame.
func EncodeArray[T any](a *array.Array[T], oid format.Oid, enc codec.ElementEncoder[T], opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Encode(a, oid, enc, cfg.encoderOpts...)
	if err != nil {
		return nil, err
	}

	return appendPack(make([]byte, 0, HeaderSize+len(raw)), raw, cfg)
}

// DecodeArray unpacks a frame and decodes the array value it carries.
func DecodeArray[T any](data []byte, oid format.Oid, dec codec.ElementDecoder[T], opts ...Option) (*array.Array[sql.Null[T]], error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	raw, err := unpack(data, cfg)
	if err != nil {
		return nil, err
	}

	return codec.Decode(raw, oid, dec, cfg.decoderOpts...)
}
