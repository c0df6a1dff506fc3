package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ssargent/wibblr/pkg/base32"
)

// symbolsCmd represents the symbols command
var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "Print the alphabet with each symbol's value",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for i, symbol := range base32.Symbols {
			fmt.Fprintf(out, "%2d  %c  %05b\n", i, symbol, i)
		}
	},
}

func init() {
	rootCmd.AddCommand(symbolsCmd)
}
