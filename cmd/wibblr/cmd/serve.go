/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ssargent/wibblr/pkg/api"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the wibblr REST API server exposing encode and decode over HTTP.

Settings come from the configuration file; flags override them.
Authentication is disabled when no API key is configured.

Examples:
  wibblr serve
  wibblr serve --port=9000 --api-key=mysecretkey`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if container == nil {
			return fmt.Errorf("dependency container not initialized")
		}

		cfg := configFrom(cmd)
		serverConfig := api.ServerConfig{
			Bind:                cfg.Bind,
			Port:                cfg.Port,
			APIKey:              cfg.Security.APIKey,
			IgnorePartialSymbol: cfg.Codec.IgnorePartialSymbol,
			IgnorePartialByte:   cfg.Codec.IgnorePartialByte,
			MaxInputBytes:       cfg.Codec.MaxInputBytes,
		}
		if cmd.Flags().Changed("port") {
			serverConfig.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("bind") {
			serverConfig.Bind, _ = cmd.Flags().GetString("bind")
		}
		if cmd.Flags().Changed("api-key") {
			serverConfig.APIKey, _ = cmd.Flags().GetString("api-key")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		starter := container.GetServerFactory().CreateServerStarter()
		if err := starter.StartServer(ctx, serverConfig, loggerFrom(cmd)); err != nil {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8032, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind to")
	serveCmd.Flags().String("api-key", "", "API key required in the X-API-Key header")
}
