package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/pgarray/format"
	"github.com/arloliu/pgarray/frame"
	"github.com/arloliu/pgarray/wire"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print the header and elements of an array value",
		Long: `Print the header and elements of an encoded array value.

Framed input is detected and unpacked first. Elements are decoded with the codec
for the element type in the header, or for --type when given.

Example:
  pgarray inspect --hex value.hex
  pgarray inspect --type text value.bin`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			typeName, _ := cmd.Flags().GetString("type")

			return inspect(cmd, data, typeName)
		},
	}

	cmd.Flags().StringP("type", "t", "", "Element type name or OID used to decode elements")

	return cmd
}

func inspect(cmd *cobra.Command, data []byte, typeName string) error {
	out := cmd.OutOrStdout()

	if fh, err := frame.ParseHeader(data); err == nil {
		raw, err := frame.Unpack(data)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "frame:         %s, %d payload bytes, checksum %#016x\n",
			fh.Compression, fh.PayloadLen, fh.Checksum)
		data = raw
	}

	header, headerLen, err := wire.ParseHeader(data)
	if err != nil {
		return err
	}
	count, err := header.ElementCount()
	if err != nil {
		return err
	}

	oid := header.ElementType
	if typeName != "" {
		var ok bool
		if oid, ok = format.ParseOid(typeName); !ok {
			return fmt.Errorf("unknown element type %q", typeName)
		}
	}

	var dims strings.Builder
	for _, d := range header.Dims {
		dims.WriteString(d.String())
	}

	fmt.Fprintf(out, "size:          %d bytes (%d header)\n", len(data), headerLen)
	fmt.Fprintf(out, "dimensions:    %d %s\n", header.NDim(), dims.String())
	fmt.Fprintf(out, "has_null:      %d\n", header.HasNull)
	fmt.Fprintf(out, "element type:  %s (%d)\n", header.ElementType, uint32(header.ElementType))
	fmt.Fprintf(out, "elements:      %d\n", count)

	value, err := renderArray(data, oid)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "value:         %s\n", value)

	return nil
}
