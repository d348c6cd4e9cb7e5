package pgarray

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pgarray/codec"
	"github.com/arloliu/pgarray/elem"
	"github.com/arloliu/pgarray/errs"
	"github.com/arloliu/pgarray/format"
)

func TestFromSliceWrapPush(t *testing.T) {
	a := FromSlice([]int32{10, 20, 30}, -1)

	v, err := a.Get(0)
	require.NoError(t, err)
	require.Equal(t, int32(20), v)

	a.Wrap(1)
	require.NoError(t, a.Push(FromSlice([]int32{40, 50, 60}, -1)))
	require.Equal(t, "[1:2][-1:1]={{10,20,30},{40,50,60}}", a.String())
	require.Equal(t, int32(60), a.At(2, 1))
}

func TestFromParts(t *testing.T) {
	_, err := FromParts([]int{1, 2, 3}, []Dimension{{Len: 2, LowerBound: 1}})
	require.ErrorIs(t, err, errs.ErrShapeMismatch)

	a, err := FromParts([]int{1, 2}, []Dimension{{Len: 2, LowerBound: 1}})
	require.NoError(t, err)
	require.Equal(t, "{1,2}", a.String())
}

func TestEncodeDecode(t *testing.T) {
	a := FromSlice([]sql.Null[float64]{{V: 1.5, Valid: true}, {}}, 3)

	data, err := Encode(a, format.OidFloat8, codec.Nullable(elem.Float8))
	require.NoError(t, err)

	got, err := Decode(data, format.OidFloat8, elem.Float8)
	require.NoError(t, err)
	require.Equal(t, "[3:4]={1.5,NULL}", got.String())

	empty, err := Encode(Empty[int32](), format.OidInt4, elem.Int4)
	require.NoError(t, err)
	require.Len(t, empty, 12)
}

func ExampleDecode() {
	data, _ := Encode(FromSlice([]string{"a", "b"}, 0), format.OidText, elem.Text)

	a, err := Decode(data, format.OidText, elem.Text)
	if err != nil {
		panic(err)
	}
	fmt.Println(a)
	// Output: [0:1]={a,b}
}
