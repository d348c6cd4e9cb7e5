package elem

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/pgarray/errs"
	"github.com/arloliu/pgarray/format"
)

// jsonbVersion is the only jsonb binary format version.
const jsonbVersion = 1

// TextCodec encodes text-like types as their raw bytes.
type TextCodec struct{}

// Text handles text, varchar, name and bpchar elements.
var Text TextCodec

var textOids = []format.Oid{format.OidText, format.OidVarchar, format.OidName, format.OidBPChar}

// DecodeElement implements codec.ElementDecoder.
func (TextCodec) DecodeElement(oid format.Oid, src []byte) (string, int, error) {
	if err := checkType("text", textOids, oid); err != nil {
		return "", 0, err
	}

	return string(src), len(src), nil
}

// AppendElement implements codec.ElementEncoder.
func (TextCodec) AppendElement(dst []byte, v string, oid format.Oid) ([]byte, bool, error) {
	if err := checkType("text", textOids, oid); err != nil {
		return dst, false, err
	}

	return append(dst, v...), false, nil
}

// ByteaCodec encodes bytea. A nil slice encodes as NULL.
type ByteaCodec struct{}

// Bytea handles bytea elements.
var Bytea ByteaCodec

// DecodeElement implements codec.ElementDecoder. The result is a copy of src.
func (ByteaCodec) DecodeElement(oid format.Oid, src []byte) ([]byte, int, error) {
	if err := checkType("bytea", []format.Oid{format.OidBytea}, oid); err != nil {
		return nil, 0, err
	}

	return append(make([]byte, 0, len(src)), src...), len(src), nil
}

// AppendElement implements codec.ElementEncoder.
func (ByteaCodec) AppendElement(dst []byte, v []byte, oid format.Oid) ([]byte, bool, error) {
	if err := checkType("bytea", []format.Oid{format.OidBytea}, oid); err != nil {
		return dst, false, err
	}
	if v == nil {
		return dst, true, nil
	}

	return append(dst, v...), false, nil
}

// JSONCodec encodes json and jsonb documents. A nil document encodes as NULL.
//
// Documents are validated on decode and encode; jsonb payloads carry a leading
// version byte which is checked and stripped.
type JSONCodec struct{}

// JSON handles json and jsonb elements.
var JSON JSONCodec

var jsonOids = []format.Oid{format.OidJSON, format.OidJSONB}

// DecodeElement implements codec.ElementDecoder.
func (JSONCodec) DecodeElement(oid format.Oid, src []byte) (json.RawMessage, int, error) {
	if err := checkType("json", jsonOids, oid); err != nil {
		return nil, 0, err
	}

	doc := src
	if oid == format.OidJSONB {
		if len(doc) == 0 || doc[0] != jsonbVersion {
			return nil, 0, fmt.Errorf("%w: unsupported jsonb version", errs.ErrInvalidElementPayload)
		}
		doc = doc[1:]
	}
	if !json.Valid(doc) {
		return nil, 0, fmt.Errorf("%w: invalid json document", errs.ErrInvalidElementPayload)
	}

	return append(json.RawMessage(nil), doc...), len(src), nil
}

// AppendElement implements codec.ElementEncoder.
func (JSONCodec) AppendElement(dst []byte, v json.RawMessage, oid format.Oid) ([]byte, bool, error) {
	if err := checkType("json", jsonOids, oid); err != nil {
		return dst, false, err
	}
	if v == nil {
		return dst, true, nil
	}
	if !json.Valid(v) {
		return dst, false, fmt.Errorf("%w: invalid json document", errs.ErrUnsupportedElement)
	}

	if oid == format.OidJSONB {
		dst = append(dst, jsonbVersion)
	}

	return append(dst, v...), false, nil
}

// RawCodec passes element payloads through untouched, whatever their type.
// A nil slice encodes as NULL.
type RawCodec struct{}

// Raw handles any element type.
var Raw RawCodec

// DecodeElement implements codec.ElementDecoder. The result aliases src.
func (RawCodec) DecodeElement(_ format.Oid, src []byte) ([]byte, int, error) {
	return src, len(src), nil
}

// AppendElement implements codec.ElementEncoder.
func (RawCodec) AppendElement(dst []byte, v []byte, _ format.Oid) ([]byte, bool, error) {
	if v == nil {
		return dst, true, nil
	}

	return append(dst, v...), false, nil
}

// Printable reports whether a raw payload is valid UTF-8 without control characters,
// which is how text-like payloads of unknown types are recognised for display.
func Printable(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	for _, r := range string(b) {
		if r < 0x20 || r == 0x7f {
			return false
		}
	}

	return true
}
