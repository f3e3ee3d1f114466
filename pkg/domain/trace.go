package domain

import "fmt"

// Status marks a step of a trace. Only the last step of a solved trace carries one.
type Status string

// StatusSolved is attached to the step that leaves the wanted amount in a jug.
const StatusSolved Status = "Solved"

// Step is one action of a trace together with the jug levels it produced.
type Step struct {
	Number  int     `json:"step"`
	BucketX int     `json:"bucketX"`
	BucketY int     `json:"bucketY"`
	Action  Action  `json:"action"`
	Status  *Status `json:"status,omitempty"`
}

// State returns the jug levels after the step.
func (s Step) State() State {
	return State{X: s.BucketX, Y: s.BucketY}
}

// Solved reports whether the step carries the terminal marker.
func (s Step) Solved() bool {
	return s.Status != nil && *s.Status == StatusSolved
}

// Trace is the ordered list of steps from the empty jugs to a goal.
// An empty trace means no goal was reachable.
type Trace []Step

// Final returns the state after the last step, or the empty jugs for an empty trace.
func (t Trace) Final() State {
	if len(t) == 0 {
		return State{}
	}
	return t[len(t)-1].State()
}

// Verify replays t against p from (0, 0) and reports the first broken rule:
// numbering must be contiguous from 1, every step must match its action applied to the
// previous state, levels must stay within capacity, only the last step may be marked
// solved, and the last state must be a goal. An empty trace is always valid.
func (t Trace) Verify(p Puzzle) error {
	if len(t) == 0 {
		return nil
	}

	prev := State{}
	for i, step := range t {
		if step.Number != i+1 {
			return fmt.Errorf("%w: step %d is numbered %d", ErrInvalidTrace, i+1, step.Number)
		}
		got := step.State()
		if !p.Contains(got) {
			return fmt.Errorf("%w: step %d leaves %s outside capacities (%d, %d)", ErrInvalidTrace, step.Number, got, p.X, p.Y)
		}
		if want := step.Action.Apply(p, prev); want != got {
			return fmt.Errorf("%w: step %d %q from %s yields %s, recorded %s", ErrInvalidTrace, step.Number, step.Action, prev, want, got)
		}
		last := i == len(t)-1
		if step.Solved() != last {
			return fmt.Errorf("%w: step %d has terminal marker %v", ErrInvalidTrace, step.Number, step.Solved())
		}
		prev = got
	}

	if !p.IsGoal(prev) {
		return fmt.Errorf("%w: final state %s does not hold %d", ErrInvalidTrace, prev, p.Z)
	}
	return nil
}

// Outcome classifies how a solve ended.
type Outcome string

const (
	OutcomeSolved       Outcome = "solved"
	OutcomeUnsolvable   Outcome = "unsolvable"    // Search space exhausted
	OutcomeShortCircuit Outcome = "short_circuit" // Wanted amount exceeds both jugs
)

// Result is what the engine hands back to adapters.
type Result struct {
	Puzzle  Puzzle  `json:"puzzle"`
	Trace   Trace   `json:"trace"`
	Outcome Outcome `json:"outcome"`
}

// Solved reports whether the result carries a non-empty trace.
func (r Result) Solved() bool {
	return len(r.Trace) > 0
}
