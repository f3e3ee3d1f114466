package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSolveStart  EventType = "solve_start"
	EventSolveFinish EventType = "solve_finish"
)

// SolveEvent describes a single solve as it starts and finishes.
// Outcome, Steps and Duration are only set on EventSolveFinish.
type SolveEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Type      EventType     `json:"type"`
	Puzzle    Puzzle        `json:"puzzle"`
	Outcome   Outcome       `json:"outcome,omitempty"`
	Steps     int           `json:"steps,omitempty"`
	Duration  time.Duration `json:"duration,omitempty"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnSolveStart  func(context.Context, *SolveEvent)
	OnSolveFinish func(context.Context, *SolveEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnSolveStart:  chain(h.OnSolveStart, other.OnSolveStart),
		OnSolveFinish: chain(h.OnSolveFinish, other.OnSolveFinish),
	}
}

func chain(a, b func(context.Context, *SolveEvent)) func(context.Context, *SolveEvent) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *SolveEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
