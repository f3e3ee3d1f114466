/*
Package ports defines the interfaces between the waterjug core and its adapters.

# Key Interfaces

  - Solver: Answers a Puzzle with a Result. Implemented by waterjug.Engine and consumed by
    the HTTP, MCP and CLI adapters.
*/
package ports
