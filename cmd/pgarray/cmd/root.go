package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/pgarray/codec"
	"github.com/arloliu/pgarray/frame"
)

// NewRootCmd builds the pgarray command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pgarray",
		Short: "Inspect and convert PostgreSQL binary array values",
		Long: `pgarray works with array values in PostgreSQL's binary wire format.

It prints the header and elements of an encoded value, wraps values in
compressed and checksummed frames, and unwraps them again.

Input is read from a file, or from stdin when the file is "-" or omitted.
With --hex, input and output are hexadecimal text instead of raw bytes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if !verbose {
				return nil
			}

			logger, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			codec.SetLogger(logger)
			frame.SetLogger(logger)

			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = codec.Logger().Sync()
			codec.SetLogger(nil)
			frame.SetLogger(nil)
		},
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Log decoding and framing details to stderr")
	root.PersistentFlags().Bool("hex", false, "Read and write hexadecimal text instead of raw bytes")

	root.AddCommand(newInspectCmd(), newPackCmd(), newUnpackCmd(), newDemoCmd())

	return root
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	if useHex, _ := cmd.Flags().GetBool("hex"); useHex {
		text := strings.Join(strings.Fields(string(data)), "")
		text = strings.TrimPrefix(strings.TrimPrefix(text, `\x`), "0x")
		decoded, err := hex.DecodeString(text)
		if err != nil {
			return nil, fmt.Errorf("invalid hex input: %w", err)
		}

		return decoded, nil
	}

	return data, nil
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if useHex, _ := cmd.Flags().GetBool("hex"); useHex {
		data = []byte(hex.EncodeToString(data) + "\n")
	}

	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
