package cmd

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// execute runs the root command with args and returns what it printed
func execute(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	// Keep tests away from the user's real configuration.
	if !hasFlag(args, "--config") {
		args = append(args, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	if stdin == nil {
		stdin = bytes.NewReader(nil)
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func hasFlag(args []string, name string) bool {
	for _, a := range args {
		if a == name {
			return true
		}
	}
	return false
}
