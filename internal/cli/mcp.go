package cli

import (
	"log"
	"os"

	"github.com/aretw0/waterjug/pkg/adapters/mcp"
)

// RunMCP serves the solver as an MCP tool over Stdin/Stdout.
func RunMCP(o Overrides) error {
	// Stdout carries JSON-RPC; every log line must go to Stderr.
	rt, err := NewRuntime(o, os.Stderr)
	if err != nil {
		return err
	}
	log.SetOutput(os.Stderr)

	rt.Logger.Info("Starting Water Jug MCP Server (Stdio)...")
	if err := mcp.NewServer(rt.Engine).ServeStdio(); err != nil {
		rt.Logger.Error("MCP Server execution failed", "error", err)
		return err
	}
	return nil
}
