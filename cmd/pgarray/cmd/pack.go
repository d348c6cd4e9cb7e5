package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/pgarray/codec"
	"github.com/arloliu/pgarray/format"
	"github.com/arloliu/pgarray/frame"
)

func newPackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack [file]",
		Short: "Wrap an array value in a compressed, checksummed frame",
		Long: `Wrap an encoded array value in a frame.

The value is checked to be a well-formed array before it is packed.

Example:
  pgarray pack --compression zstd -o value.frame value.bin`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			name, _ := cmd.Flags().GetString("compression")
			ct, ok := format.ParseCompressionType(name)
			if !ok {
				return fmt.Errorf("unknown compression %q", name)
			}

			if err := validateArray(data); err != nil {
				return err
			}

			packed, err := frame.Pack(data, frame.WithCompression(ct))
			if err != nil {
				return err
			}

			output, _ := cmd.Flags().GetString("output")

			return writeOutput(cmd, output, packed)
		},
	}

	cmd.Flags().StringP("compression", "c", "zstd", "Compression: none, zstd, s2 or lz4")
	cmd.Flags().StringP("output", "o", "-", "Output file")

	return cmd
}

func newUnpackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpack [file]",
		Short: "Verify a frame and write the array value it carries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			raw, err := frame.Unpack(data)
			if err != nil {
				return err
			}
			if err := validateArray(raw); err != nil {
				return err
			}

			output, _ := cmd.Flags().GetString("output")

			return writeOutput(cmd, output, raw)
		},
	}

	cmd.Flags().StringP("output", "o", "-", "Output file")

	return cmd
}

// validateArray checks framing of the whole value without interpreting elements.
func validateArray(data []byte) error {
	_, err := codec.Decode(data, 0, rawElements{})
	if err != nil {
		return fmt.Errorf("input is not a valid array value: %w", err)
	}

	return nil
}

type rawElements struct{}

func (rawElements) DecodeElement(_ format.Oid, src []byte) (struct{}, int, error) {
	return struct{}{}, len(src), nil
}
