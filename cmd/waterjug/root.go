package main

import (
	"fmt"
	"os"

	"github.com/aretw0/waterjug/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "waterjug",
	Short: "Waterjug solves the two-jug water measuring puzzle",
	Long: `Waterjug finds the shortest sequence of fill, empty and transfer actions that
leaves an exact amount of water in one of two jugs. Run it as an HTTP service, an MCP
tool server, or straight from the command line.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// overrides collects the persistent flags shared by every command.
func overrides(cmd *cobra.Command) cli.Overrides {
	configPath, _ := cmd.Flags().GetString("config")
	logLevel, _ := cmd.Flags().GetString("log-level")
	return cli.Overrides{ConfigPath: configPath, LogLevel: logLevel}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
}
