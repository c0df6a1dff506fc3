package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ssargent/wibblr/pkg/base32"
	"go.uber.org/zap"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode [symbols]",
	Short: "Decode base-32 text to bytes",
	Long: `Decode the argument, or standard input when no argument is given, from base-32.
Surrounding whitespace is ignored. Raw bytes are written unless --hex is set.

Examples:
  wibblr decode e1kqsv3g
  wibblr decode --hex 0u39
  wibblr decode --ignore-partial 0u39`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFrom(cmd)
		asHex, _ := cmd.Flags().GetBool("hex")

		ignorePartial := cfg.Codec.IgnorePartialByte
		if cmd.Flags().Changed("ignore-partial") {
			ignorePartial, _ = cmd.Flags().GetBool("ignore-partial")
		}

		input, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		decoded, err := base32.Decode(strings.TrimSpace(string(input)), ignorePartial)
		if err != nil {
			return fmt.Errorf("failed to decode: %w", err)
		}
		loggerFrom(cmd).Debug("decoded",
			zap.Int("bytes", len(decoded)),
			zap.Bool("ignore_partial_byte", ignorePartial),
		)

		out := cmd.OutOrStdout()
		if asHex {
			fmt.Fprintln(out, hex.EncodeToString(decoded))
			return nil
		}
		_, err = out.Write(decoded)
		return err
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().Bool("hex", false, "Print the decoded bytes as hex")
	decodeCmd.Flags().Bool("ignore-partial", false, "Drop the leading byte that is partly zero fill")
}
