package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/aretw0/waterjug"
	"github.com/aretw0/waterjug/pkg/domain"
	"github.com/aretw0/waterjug/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePuzzle(t *testing.T) {
	p, err := ParsePuzzle([]string{"2", "10", "4"})
	require.NoError(t, err)
	assert.Equal(t, domain.Puzzle{X: 2, Y: 10, Z: 4}, p)

	_, err = ParsePuzzle([]string{"2", "10"})
	assert.Error(t, err)

	_, err = ParsePuzzle([]string{"2", "ten", "4"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ParsePuzzle([]string{"2", "10", "-4"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRunSolve_JSON(t *testing.T) {
	var out bytes.Buffer
	err := RunSolve(context.Background(), &out, waterjug.New(), domain.Puzzle{X: 2, Y: 100, Z: 96}, SolveOptions{JSON: true, Verify: true})
	require.NoError(t, err)

	assert.JSONEq(t, `{"solution": [
		{"step":1,"bucketX":0,"bucketY":100,"action":"Fill bucket Y"},
		{"step":2,"bucketX":2,"bucketY":98,"action":"Transfer from bucket Y to X"},
		{"step":3,"bucketX":0,"bucketY":98,"action":"Empty bucket X"},
		{"step":4,"bucketX":2,"bucketY":96,"action":"Transfer from bucket Y to X","status":"Solved"}
	]}`, out.String())
}

func TestRunSolve_NoSolution(t *testing.T) {
	var out bytes.Buffer
	err := RunSolve(context.Background(), &out, waterjug.New(), domain.Puzzle{X: 2, Y: 6, Z: 5}, SolveOptions{JSON: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"solution":"No solution possible"}`, out.String())

	out.Reset()
	err = RunSolve(context.Background(), &out, waterjug.New(), domain.Puzzle{X: 2, Y: 6, Z: 5}, SolveOptions{})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "No solution possible")
}

func TestRunSolve_Markdown(t *testing.T) {
	var out bytes.Buffer
	err := RunSolve(context.Background(), &out, waterjug.New(), domain.Puzzle{X: 2, Y: 10, Z: 4}, SolveOptions{})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "| 4 | Transfer from bucket X to Y | 0 | 4 | Solved |")
}

func TestRunSolve_VerifyRejectsBrokenTrace(t *testing.T) {
	broken := ports.SolverFunc(func(_ context.Context, p domain.Puzzle) (domain.Result, error) {
		return domain.Result{
			Puzzle:  p,
			Trace:   domain.Trace{{Number: 1, BucketX: 1, BucketY: 0, Action: domain.FillX}},
			Outcome: domain.OutcomeSolved,
		}, nil
	})

	err := RunSolve(context.Background(), &bytes.Buffer{}, broken, domain.Puzzle{X: 2, Y: 10, Z: 4}, SolveOptions{Verify: true})
	assert.ErrorIs(t, err, domain.ErrInvalidTrace)
}

func TestRunSolve_Mermaid(t *testing.T) {
	var out bytes.Buffer
	err := RunSolve(context.Background(), &out, waterjug.New(), domain.Puzzle{X: 2, Y: 10, Z: 4}, SolveOptions{Mermaid: true, JSON: true})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "graph TD")
	assert.Contains(t, out.String(), "class s0_4 solved;")
}
