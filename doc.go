/*
Package waterjug solves the two-jug water measuring puzzle.

Given the capacities of jugs X and Y and a wanted amount Z, the engine searches the states
reachable from two empty jugs with six actions (fill X, fill Y, empty X, empty Y, pour X into
Y, pour Y into X) and returns the shortest trace that leaves exactly Z units in either jug.

# Architecture

The breadth-first search lives in internal/solver and is pure: every call owns its frontier
and visited set. The Engine in this package is the collaborator around it, rejecting
non-positive input, answering targets larger than both jugs without searching, and
reporting every solve through lifecycle hooks. Adapters under pkg/adapters expose the
Engine over HTTP and MCP, and cmd/waterjug wires everything into a CLI.

# Usage

	eng := waterjug.New(waterjug.WithLogger(slog.Default()))

	res, err := eng.Solve(ctx, domain.Puzzle{X: 2, Y: 10, Z: 4})
	if errors.Is(err, domain.ErrInvalidInput) {
		// reject the request
	}
	if !res.Solved() {
		fmt.Println(domain.NoSolution)
	}
	for _, step := range res.Trace {
		fmt.Println(step.Number, step.Action, step.BucketX, step.BucketY)
	}
*/
package waterjug
