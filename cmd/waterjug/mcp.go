package main

import (
	"github.com/aretw0/waterjug/internal/cli"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the solver as an MCP Server over Standard Input/Output.
This allows AI agents to call the solve_water_jug tool.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunMCP(overrides(cmd))
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
