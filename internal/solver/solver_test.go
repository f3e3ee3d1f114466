package solver

import (
	"sync"
	"testing"

	"github.com/aretw0/waterjug/pkg/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func step(n, x, y int, a domain.Action) domain.Step {
	return domain.Step{Number: n, BucketX: x, BucketY: y, Action: a}
}

func solvedStep(n, x, y int, a domain.Action) domain.Step {
	s := step(n, x, y, a)
	status := domain.StatusSolved
	s.Status = &status
	return s
}

func TestSolve_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		puzzle domain.Puzzle
		want   domain.Trace
	}{
		{
			name:   "X=2 Y=10 Z=4",
			puzzle: domain.Puzzle{X: 2, Y: 10, Z: 4},
			want: domain.Trace{
				step(1, 2, 0, domain.FillX),
				step(2, 0, 2, domain.TransferXY),
				step(3, 2, 2, domain.FillX),
				solvedStep(4, 0, 4, domain.TransferXY),
			},
		},
		{
			name:   "X=2 Y=100 Z=96",
			puzzle: domain.Puzzle{X: 2, Y: 100, Z: 96},
			want: domain.Trace{
				step(1, 0, 100, domain.FillY),
				step(2, 2, 98, domain.TransferYX),
				step(3, 0, 98, domain.EmptyX),
				solvedStep(4, 2, 96, domain.TransferYX),
			},
		},
		{
			name:   "gcd does not divide target",
			puzzle: domain.Puzzle{X: 2, Y: 6, Z: 5},
			want:   domain.Trace{},
		},
		{
			name:   "target exceeds both jugs",
			puzzle: domain.Puzzle{X: 2, Y: 3, Z: 5},
			want:   domain.Trace{},
		},
		{
			name:   "target equals a capacity",
			puzzle: domain.Puzzle{X: 3, Y: 5, Z: 5},
			want: domain.Trace{
				solvedStep(1, 0, 5, domain.FillY),
			},
		},
		{
			name:   "classic 3 and 5 measuring 4",
			puzzle: domain.Puzzle{X: 3, Y: 5, Z: 4},
			want: domain.Trace{
				step(1, 0, 5, domain.FillY),
				step(2, 3, 2, domain.TransferYX),
				step(3, 0, 2, domain.EmptyX),
				step(4, 2, 0, domain.TransferYX),
				step(5, 2, 5, domain.FillY),
				solvedStep(6, 3, 4, domain.TransferYX),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Solve(tt.puzzle)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Solve(%+v) mismatch (-want +got):\n%s", tt.puzzle, diff)
			}
		})
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func TestSolve_Properties(t *testing.T) {
	const limit = 12

	for x := 1; x <= limit; x++ {
		for y := 1; y <= limit; y++ {
			for z := 1; z <= limit+2; z++ {
				p := domain.Puzzle{X: x, Y: y, Z: z}
				trace := Solve(p)

				reachable := z <= max(x, y) && z%gcd(x, y) == 0
				require.Equal(t, reachable, len(trace) > 0, "puzzle %+v", p)
				require.NoError(t, trace.Verify(p), "puzzle %+v", p)

				if len(trace) > 0 {
					assert.True(t, p.IsGoal(trace.Final()), "puzzle %+v", p)
				}
			}
		}
	}
}

func TestSolve_Deterministic(t *testing.T) {
	p := domain.Puzzle{X: 7, Y: 11, Z: 6}
	first := Solve(p)
	require.NotEmpty(t, first)

	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Solve(p))
	}
}

func TestSolve_Concurrent(t *testing.T) {
	puzzles := []domain.Puzzle{
		{X: 2, Y: 10, Z: 4},
		{X: 2, Y: 100, Z: 96},
		{X: 3, Y: 5, Z: 4},
		{X: 2, Y: 6, Z: 5},
	}
	want := make([]domain.Trace, len(puzzles))
	for i, p := range puzzles {
		want[i] = Solve(p)
	}

	var wg sync.WaitGroup
	for round := 0; round < 8; round++ {
		for i, p := range puzzles {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, want[i], Solve(p))
			}()
		}
	}
	wg.Wait()
}

func TestSolve_TracesAreIndependent(t *testing.T) {
	p := domain.Puzzle{X: 3, Y: 5, Z: 4}
	trace := Solve(p)
	require.NotEmpty(t, trace)

	trace[0].BucketX = 99
	assert.NoError(t, Solve(p).Verify(p))
}

func BenchmarkSolve(b *testing.B) {
	p := domain.Puzzle{X: 97, Y: 89, Z: 45}
	for i := 0; i < b.N; i++ {
		Solve(p)
	}
}
