// Package solver finds the shortest sequence of jug actions that measures a wanted amount.
package solver

import "github.com/aretw0/waterjug/pkg/domain"

// node is a frontier entry: a state and the steps taken to reach it.
type node struct {
	state domain.State
	trace domain.Trace
}

// Solve runs a breadth-first search from the empty jugs and returns the trace of the first
// state holding p.Z in either jug, with its last step marked solved. It returns an empty
// trace when every reachable state has been explored without reaching the goal.
//
// Solve does not validate p; callers reject non-positive values before calling it.
// States are marked visited when dequeued rather than when enqueued, so the same state may
// sit in the frontier more than once; later copies are dropped when they reach the head.
func Solve(p domain.Puzzle) domain.Trace {
	queue := []node{{state: domain.State{}}}
	visited := make(map[domain.State]struct{})

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		// Goal check precedes the visited check.
		if p.IsGoal(current.state) {
			return markSolved(current.trace)
		}

		if _, seen := visited[current.state]; seen {
			continue
		}
		visited[current.state] = struct{}{}

		for _, action := range domain.Actions {
			next := action.Apply(p, current.state)
			if _, seen := visited[next]; seen {
				continue
			}
			queue = append(queue, node{
				state: next,
				trace: extend(current.trace, action, next),
			})
		}
	}

	return domain.Trace{}
}

// extend returns a new trace with one more step; the parent trace is never shared.
func extend(trace domain.Trace, action domain.Action, state domain.State) domain.Trace {
	out := make(domain.Trace, len(trace), len(trace)+1)
	copy(out, trace)
	return append(out, domain.Step{
		Number:  len(trace) + 1,
		BucketX: state.X,
		BucketY: state.Y,
		Action:  action,
	})
}

func markSolved(trace domain.Trace) domain.Trace {
	out := make(domain.Trace, len(trace))
	copy(out, trace)
	if len(out) > 0 {
		status := domain.StatusSolved
		out[len(out)-1].Status = &status
	}
	return out
}
