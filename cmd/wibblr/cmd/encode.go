package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ssargent/wibblr/pkg/base32"
	"go.uber.org/zap"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Encode bytes as base-32",
	Long: `Encode the argument, or standard input when no argument is given, as base-32.

Examples:
  wibblr encode hello
  wibblr encode --hex deadbeef
  echo -n hi | wibblr encode --ignore-partial`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFrom(cmd)
		isHex, _ := cmd.Flags().GetBool("hex")

		ignorePartial := cfg.Codec.IgnorePartialSymbol
		if cmd.Flags().Changed("ignore-partial") {
			ignorePartial, _ = cmd.Flags().GetBool("ignore-partial")
		}

		input, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		if isHex {
			input, err = hex.DecodeString(strings.TrimSpace(string(input)))
			if err != nil {
				return fmt.Errorf("invalid hex input: %w", err)
			}
		}

		encoded := base32.Encode(input, ignorePartial)
		loggerFrom(cmd).Debug("encoded",
			zap.Int("bytes", len(input)),
			zap.Int("symbols", len(encoded)),
			zap.Bool("ignore_partial_symbol", ignorePartial),
		)

		fmt.Fprintln(cmd.OutOrStdout(), encoded)
		return nil
	},
}

// readInput returns the single argument, or all of standard input
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 {
		return []byte(args[0]), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().Bool("hex", false, "Treat the input as hex-encoded bytes")
	encodeCmd.Flags().Bool("ignore-partial", false, "Drop the leading symbol that is partly zero fill")
}
