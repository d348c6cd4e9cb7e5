package codec

import (
	"bytes"
	"database/sql"
	"testing"

	"github.com/arloliu/pgarray/array"
	"github.com/arloliu/pgarray/elem"
	"github.com/arloliu/pgarray/format"
)

func FuzzDecode(f *testing.F) {
	seeds := []*array.Array[sql.Null[[]byte]]{
		array.Empty[sql.Null[[]byte]](),
		array.FromSlice([]sql.Null[[]byte]{{V: []byte("a"), Valid: true}, {}}, -2),
		array.MustFromParts(
			[]sql.Null[[]byte]{{V: []byte{1}, Valid: true}, {V: []byte{}, Valid: true}, {}, {V: []byte{2, 3}, Valid: true}},
			[]array.Dimension{{Len: 2, LowerBound: 1}, {Len: 2, LowerBound: 0}},
		),
	}
	for _, a := range seeds {
		data, err := Encode(a, format.OidBytea, Nullable(elem.Raw))
		if err != nil {
			f.Fatal(err)
		}
		f.Add(data)
	}
	f.Add([]byte{0xff, 0xff, 0xff, 0xff})
	f.Add([]byte{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 17, 0x7f, 0xff, 0xff, 0xff, 0, 0, 0, 1})

	eq := func(x, y sql.Null[[]byte]) bool {
		return x.Valid == y.Valid && bytes.Equal(x.V, y.V)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		a, err := Decode(data, format.OidBytea, elem.Raw, WithMaxElements(1<<16))
		if err != nil {
			return
		}

		again, err := Encode(a, format.OidBytea, Nullable(elem.Raw))
		if err != nil {
			t.Fatalf("re-encode: %v", err)
		}

		b, err := Decode(again, format.OidBytea, elem.Raw)
		if err != nil {
			t.Fatalf("decode re-encoded value: %v", err)
		}
		if !a.EqualFunc(b, eq) {
			t.Fatalf("round trip changed %v into %v", a, b)
		}
	})
}
