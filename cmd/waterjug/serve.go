package main

import (
	"github.com/aretw0/waterjug/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the solver in server mode, exposing POST /solution plus health, info,
OpenAPI and metrics endpoints. Stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		o := overrides(cmd)
		o.Port, _ = cmd.Flags().GetString("port")
		return cli.RunServer(o)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (default from config, 8080)")
}
