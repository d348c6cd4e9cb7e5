package elem

import (
	"fmt"
	"math"
	"time"

	"github.com/arloliu/pgarray/endian"
	"github.com/arloliu/pgarray/errs"
	"github.com/arloliu/pgarray/format"
)

// postgresEpoch is the zero point of timestamp payloads.
var postgresEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

const (
	infinityMicros         = math.MaxInt64
	negativeInfinityMicros = math.MinInt64
)

// Timestamp encodes timestamp and timestamptz as microseconds since 2000-01-01 UTC.
//
// Decoded values are in UTC. Sub-microsecond precision is truncated on encode.
// The special values infinity and -infinity are rejected with
// errs.ErrInvalidElementPayload since time.Time cannot represent them.
var Timestamp = Fixed[time.Time]{
	name: "timestamp",
	size: 8,
	oids: []format.Oid{format.OidTimestamp, format.OidTimestampTZ},
	decode: func(engine endian.EndianEngine, src []byte) (time.Time, error) {
		us := int64(engine.Uint64(src)) //nolint:gosec
		if us == infinityMicros || us == negativeInfinityMicros {
			return time.Time{}, fmt.Errorf("%w: infinite timestamp", errs.ErrInvalidElementPayload)
		}

		return time.Unix(postgresEpoch.Unix()+us/1e6, (us%1e6)*1e3).UTC(), nil
	},
	encode: func(engine endian.EndianEngine, dst []byte, v time.Time) []byte {
		sec := v.Unix() - postgresEpoch.Unix()
		us := sec*1e6 + int64(v.Nanosecond()/1e3)

		return engine.AppendUint64(dst, uint64(us)) //nolint:gosec
	},
}
