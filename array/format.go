package array

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
)

// String renders the array in PostgreSQL's text form.
//
// When every lower bound is 1 the output is only the nested braces, e.g. {0,1,2}.
// Otherwise one [lower:upper] pair per dimension and "=" precede the braces, e.g.
// [-3:1]={0,1,2,3,4}. The empty array renders as {}.
//
// Elements implementing driver.Valuer that report a nil value render as NULL.
func (a *Array[T]) String() string {
	var sb strings.Builder
	render(&sb, a.dims, a.data)

	return sb.String()
}

func render[T any](sb *strings.Builder, dims []Dimension, data []T) {
	if len(dims) == 0 {
		sb.WriteString("{}")
		return
	}

	for _, d := range dims {
		if d.LowerBound != 1 {
			writeBounds(sb, dims)
			sb.WriteByte('=')

			break
		}
	}

	pos := 0
	renderLevel(sb, dims, data, &pos)
}

func writeBounds(sb *strings.Builder, dims []Dimension) {
	for _, d := range dims {
		sb.WriteByte('[')
		sb.WriteString(strconv.FormatInt(int64(d.LowerBound), 10))
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatInt(d.Upper(), 10))
		sb.WriteByte(']')
	}
}

func renderLevel[T any](sb *strings.Builder, dims []Dimension, data []T, pos *int) {
	if len(dims) == 0 {
		sb.WriteString(formatElement(data[*pos]))
		*pos++

		return
	}

	sb.WriteByte('{')
	for i := int32(0); i < dims[0].Len; i++ {
		if i != 0 {
			sb.WriteByte(',')
		}
		renderLevel(sb, dims[1:], data, pos)
	}
	sb.WriteByte('}')
}

func formatElement(v any) string {
	if valuer, ok := v.(driver.Valuer); ok {
		val, err := valuer.Value()
		if err == nil && val == nil {
			return "NULL"
		}
		if err == nil {
			return fmt.Sprint(val)
		}
	}

	return fmt.Sprint(v)
}
