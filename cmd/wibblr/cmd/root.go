/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ssargent/wibblr/pkg/config"
	"github.com/ssargent/wibblr/pkg/di"
	"github.com/ssargent/wibblr/pkg/logging"
	"go.uber.org/zap"
)

type contextKey string

const (
	configKey contextKey = "config"
	loggerKey contextKey = "logger"
)

var container *di.Container

// SetContainer injects the dependency container used by the commands
func SetContainer(c *di.Container) {
	container = c
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wibblr",
	Short: "wibblr - readable base-32 codec",
	Long: `wibblr converts between bytes and base-32 text written with the digits and
the lowercase letters except b, i, l and o.

The configuration file is optional; defaults apply when it does not exist.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		cfg := config.DefaultConfig()
		if config.ConfigExists(configPath) {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
		}

		logger, err := logging.New(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx = context.WithValue(ctx, configKey, cfg)
		ctx = context.WithValue(ctx, loggerKey, logger)
		cmd.SetContext(ctx)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", config.GetDefaultConfigPath(), "Path to the configuration file")
}

// configFrom returns the configuration loaded by the root command
func configFrom(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey).(*config.Config); ok {
		return cfg
	}
	return config.DefaultConfig()
}

// loggerFrom returns the logger built by the root command
func loggerFrom(cmd *cobra.Command) *zap.Logger {
	if logger, ok := cmd.Context().Value(loggerKey).(*zap.Logger); ok {
		return logger
	}
	return logging.Nop()
}
