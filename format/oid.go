package format

import "strconv"

// Oid is the element-type handle carried in the array wire header.
//
// The codec never interprets it beyond writing it to, and optionally checking it
// against, the header; element codecs may use it to pick a representation.
type Oid uint32

// Well-known PostgreSQL element type OIDs.
const (
	OidBool        Oid = 16
	OidBytea       Oid = 17
	OidChar        Oid = 18
	OidName        Oid = 19
	OidInt8        Oid = 20
	OidInt2        Oid = 21
	OidInt4        Oid = 23
	OidText        Oid = 25
	OidJSON        Oid = 114
	OidFloat4      Oid = 700
	OidFloat8      Oid = 701
	OidBPChar      Oid = 1042
	OidVarchar     Oid = 1043
	OidTimestamp   Oid = 1114
	OidTimestampTZ Oid = 1184
	OidUUID        Oid = 2950
	OidJSONB       Oid = 3802
)

var oidNames = map[Oid]string{
	OidBool:        "bool",
	OidBytea:       "bytea",
	OidChar:        "char",
	OidName:        "name",
	OidInt8:        "int8",
	OidInt2:        "int2",
	OidInt4:        "int4",
	OidText:        "text",
	OidJSON:        "json",
	OidFloat4:      "float4",
	OidFloat8:      "float8",
	OidBPChar:      "bpchar",
	OidVarchar:     "varchar",
	OidTimestamp:   "timestamp",
	OidTimestampTZ: "timestamptz",
	OidUUID:        "uuid",
	OidJSONB:       "jsonb",
}

// String returns the type name for well-known OIDs and the decimal value otherwise.
func (o Oid) String() string {
	if name, ok := oidNames[o]; ok {
		return name
	}

	return strconv.FormatUint(uint64(o), 10)
}

// ParseOid accepts either a well-known type name or a decimal OID.
func ParseOid(s string) (Oid, bool) {
	for oid, name := range oidNames {
		if name == s {
			return oid, true
		}
	}

	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}

	return Oid(v), true
}
