package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ssargent/wibblr/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with a generated API key",
	Long: `Write a default configuration file, including a freshly generated API key for
the REST API, to the path given by --config.

Examples:
  wibblr init
  wibblr init --config ./wibblr.yaml --force`,
	Args: cobra.NoArgs,
	// A broken existing file must not block rewriting it.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		force, _ := cmd.Flags().GetBool("force")

		if config.ConfigExists(configPath) && !force {
			return fmt.Errorf("config file already exists: %s (use --force to overwrite)", configPath)
		}

		cfg, err := config.BootstrapConfig(configPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Wrote configuration to %s\n", configPath)
		fmt.Fprintf(out, "API key: %s\n", cfg.Security.APIKey)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration file")
}
