package main

import (
	"github.com/aretw0/waterjug/internal/cli"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve X Y Z",
	Short: "Solve a single puzzle and print the steps",
	Example: `  waterjug solve 2 10 4
  waterjug solve 3 5 4 --json
  waterjug solve 3 5 4 --mermaid`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts cli.SolveOptions
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.Verify, _ = cmd.Flags().GetBool("verify")
		opts.Mermaid, _ = cmd.Flags().GetBool("mermaid")
		return cli.RunSolveCommand(overrides(cmd), args, opts)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().Bool("json", false, "Print the HTTP response body instead of a table")
	solveCmd.Flags().Bool("verify", false, "Replay the trace and fail if any step is inconsistent")
	solveCmd.Flags().Bool("mermaid", false, "Print a Mermaid flowchart of the trace")
}
