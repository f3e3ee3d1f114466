// Package mcp exposes the solver as a Model Context Protocol tool server.
package mcp
