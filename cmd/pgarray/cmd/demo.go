package cmd

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/pgarray/array"
	"github.com/arloliu/pgarray/codec"
	"github.com/arloliu/pgarray/elem"
	"github.com/arloliu/pgarray/format"
)

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write a sample array value",
		Long: `Write a sample array value of the given element type, for trying the
other commands.

Example:
  pgarray demo --hex --type text | pgarray inspect --hex`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			typeName, _ := cmd.Flags().GetString("type")

			data, err := demoValue(typeName)
			if err != nil {
				return err
			}

			output, _ := cmd.Flags().GetString("output")

			return writeOutput(cmd, output, data)
		},
	}

	cmd.Flags().StringP("type", "t", "int4", "Element type: int4, float8 or text")
	cmd.Flags().StringP("output", "o", "-", "Output file")

	return cmd
}

func demoValue(typeName string) ([]byte, error) {
	switch typeName {
	case "int4":
		a := array.FromSlice([]int32{1, 2, 3}, 1)
		a.Wrap(1)
		if err := a.Push(array.FromSlice([]int32{4, 5, 6}, 1)); err != nil {
			return nil, err
		}

		return codec.Encode(a, format.OidInt4, elem.Int4)
	case "float8":
		a := array.FromSlice([]float64{0.5, -1.25, 1e10}, -1)
		return codec.Encode(a, format.OidFloat8, elem.Float8)
	case "text":
		a := array.FromSlice([]sql.Null[string]{{V: "hello", Valid: true}, {}, {V: "world", Valid: true}}, 0)
		return codec.Encode(a, format.OidText, codec.Nullable(elem.Text))
	default:
		return nil, fmt.Errorf("no demo value for type %q", typeName)
	}
}
