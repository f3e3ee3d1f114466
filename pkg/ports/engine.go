package ports

import (
	"context"

	"github.com/aretw0/waterjug/pkg/domain"
)

// Solver is the driving port used by adapters (HTTP, MCP, CLI).
// Implementations must be safe for concurrent use: adapters call it once per request.
type Solver interface {
	// Solve returns the result for p, or an error wrapping domain.ErrInvalidInput when
	// p holds a non-positive value. An unreachable target is a successful result with an
	// empty trace.
	Solve(ctx context.Context, p domain.Puzzle) (domain.Result, error)
}

// SolverFunc adapts a function to the Solver interface.
type SolverFunc func(ctx context.Context, p domain.Puzzle) (domain.Result, error)

// Solve calls f.
func (f SolverFunc) Solve(ctx context.Context, p domain.Puzzle) (domain.Result, error) {
	return f(ctx, p)
}
