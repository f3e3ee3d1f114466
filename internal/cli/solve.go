package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/aretw0/waterjug/internal/presentation/graph"
	"github.com/aretw0/waterjug/internal/presentation/tui"
	"github.com/aretw0/waterjug/pkg/domain"
	"github.com/aretw0/waterjug/pkg/ports"
	"golang.org/x/term"
)

// SolveOptions controls how RunSolve prints the result.
type SolveOptions struct {
	// JSON prints the same body the HTTP adapter returns.
	JSON bool
	// Pretty renders a markdown table with glamour. Ignored when JSON is set.
	Pretty bool
	// Verify replays the trace before printing it.
	Verify bool
	// Mermaid prints a flowchart of the trace instead of a table.
	Mermaid bool
}

// ParsePuzzle reads X, Y and Z from command-line arguments.
func ParsePuzzle(args []string) (domain.Puzzle, error) {
	if len(args) != 3 {
		return domain.Puzzle{}, fmt.Errorf("expected 3 arguments (X Y Z), got %d", len(args))
	}
	var vals [3]int
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return domain.Puzzle{}, fmt.Errorf("%q: %w", a, domain.ErrInvalidInput)
		}
		vals[i] = v
	}
	p := domain.Puzzle{X: vals[0], Y: vals[1], Z: vals[2]}
	return p, p.Validate()
}

// RunSolve solves p and writes the answer to w.
func RunSolve(ctx context.Context, w io.Writer, solver ports.Solver, p domain.Puzzle, opts SolveOptions) error {
	res, err := solver.Solve(ctx, p)
	if err != nil {
		return err
	}

	if opts.Verify {
		if err := res.Trace.Verify(p); err != nil {
			return err
		}
	}

	switch {
	case opts.Mermaid:
		_, err := io.WriteString(w, graph.GenerateMermaid(res))
		return err

	case opts.JSON:
		var body any = domain.NoSolution
		if res.Solved() {
			body = res.Trace
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"solution": body})

	case opts.Pretty:
		render, err := tui.NewRenderer()
		if err != nil {
			return err
		}
		out, err := render(tui.TraceMarkdown(res))
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	}

	_, err = io.WriteString(w, tui.TraceMarkdown(res))
	return err
}

// RunSolveCommand wires RunSolve for the CLI, rendering tables with glamour on a terminal.
func RunSolveCommand(o Overrides, args []string, opts SolveOptions) error {
	p, err := ParsePuzzle(args)
	if err != nil {
		return err
	}

	rt, err := NewRuntime(o, os.Stderr)
	if err != nil {
		return err
	}

	opts.Pretty = term.IsTerminal(int(os.Stdout.Fd()))
	return RunSolve(context.Background(), os.Stdout, rt.Engine, p, opts)
}
