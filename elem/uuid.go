package elem

import (
	"github.com/google/uuid"

	"github.com/arloliu/pgarray/format"
)

// UUIDCodec encodes uuid elements as their 16 raw bytes.
type UUIDCodec struct{}

// UUID handles uuid elements.
var UUID UUIDCodec

// DecodeElement implements codec.ElementDecoder.
func (UUIDCodec) DecodeElement(oid format.Oid, src []byte) (uuid.UUID, int, error) {
	if err := checkType("uuid", []format.Oid{format.OidUUID}, oid); err != nil {
		return uuid.Nil, 0, err
	}
	if err := checkSize("uuid", len(uuid.UUID{}), src); err != nil {
		return uuid.Nil, 0, err
	}

	u, err := uuid.FromBytes(src)
	if err != nil {
		return uuid.Nil, 0, err
	}

	return u, len(src), nil
}

// AppendElement implements codec.ElementEncoder.
func (UUIDCodec) AppendElement(dst []byte, v uuid.UUID, oid format.Oid) ([]byte, bool, error) {
	if err := checkType("uuid", []format.Oid{format.OidUUID}, oid); err != nil {
		return dst, false, err
	}

	return append(dst, v[:]...), false, nil
}
