package cmd

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/arloliu/pgarray/array"
	"github.com/arloliu/pgarray/codec"
	"github.com/arloliu/pgarray/elem"
	"github.com/arloliu/pgarray/format"
)

// renderArray decodes data with the element codec for oid and returns its text form.
// Unknown element types are shown as text when printable and as \x hex otherwise.
func renderArray(data []byte, oid format.Oid) (string, error) {
	switch oid {
	case format.OidBool:
		return renderWith(data, oid, elem.Bool, strconv.FormatBool)
	case format.OidChar:
		return renderWith(data, oid, elem.Char, func(v int8) string { return string(rune(uint8(v))) }) //nolint:gosec
	case format.OidInt2:
		return renderWith(data, oid, elem.Int2, func(v int16) string { return strconv.FormatInt(int64(v), 10) })
	case format.OidInt4:
		return renderWith(data, oid, elem.Int4, func(v int32) string { return strconv.FormatInt(int64(v), 10) })
	case format.OidInt8:
		return renderWith(data, oid, elem.Int8, func(v int64) string { return strconv.FormatInt(v, 10) })
	case format.OidFloat4:
		return renderWith(data, oid, elem.Float4, func(v float32) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) })
	case format.OidFloat8:
		return renderWith(data, oid, elem.Float8, func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) })
	case format.OidText, format.OidVarchar, format.OidName, format.OidBPChar:
		return renderWith(data, oid, elem.Text, func(v string) string { return v })
	case format.OidBytea:
		return renderWith(data, oid, elem.Bytea, hexLiteral)
	case format.OidUUID:
		return renderWith(data, oid, elem.UUID, uuid.UUID.String)
	case format.OidJSON, format.OidJSONB:
		return renderWith(data, oid, elem.JSON, func(v json.RawMessage) string { return string(v) })
	case format.OidTimestamp, format.OidTimestampTZ:
		return renderWith(data, oid, elem.Timestamp, func(v time.Time) string { return v.Format(time.RFC3339Nano) })
	default:
		return renderWith(data, oid, elem.Raw, func(v []byte) string {
			if elem.Printable(v) {
				return string(v)
			}

			return hexLiteral(v)
		})
	}
}

func renderWith[T any](data []byte, oid format.Oid, dec codec.ElementDecoder[T], show func(T) string) (string, error) {
	a, err := codec.Decode(data, oid, dec)
	if err != nil {
		return "", err
	}

	text := array.Map(a, func(v sql.Null[T]) sql.Null[string] {
		if !v.Valid {
			return sql.Null[string]{}
		}

		return sql.Null[string]{V: show(v.V), Valid: true}
	})

	return text.String(), nil
}

func hexLiteral(b []byte) string {
	return `\x` + hex.EncodeToString(b)
}
