package waterjug

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/waterjug/internal/solver"
	"github.com/aretw0/waterjug/pkg/domain"
	"github.com/aretw0/waterjug/pkg/ports"
)

// SearchFunc is the signature of the breadth-first solver.
type SearchFunc func(domain.Puzzle) domain.Trace

// Engine is the high-level entry point for the waterjug library.
// It validates puzzles, answers the trivially impossible ones directly and delegates the
// rest to the breadth-first solver. An Engine holds no per-solve state and is safe for
// concurrent use.
type Engine struct {
	search SearchFunc
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	now    func() time.Time
}

// Ensure Engine satisfies the port consumed by the adapters.
var _ ports.Solver = (*Engine)(nil)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithSearch replaces the breadth-first solver.
func WithSearch(search SearchFunc) Option {
	return func(e *Engine) {
		if search != nil {
			e.search = search
		}
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{
		search: solver.Solve,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return eng
}

// Solve answers a puzzle.
//
// It returns an error wrapping domain.ErrInvalidInput when any value is not positive, and
// the context error if ctx is already done. Unreachable targets are not errors: the result
// carries an empty trace and an Outcome telling whether the search ran.
func (e *Engine) Solve(ctx context.Context, p domain.Puzzle) (domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return domain.Result{}, err
	}
	if err := p.Validate(); err != nil {
		e.logger.Debug("puzzle rejected", "error", err)
		return domain.Result{}, err
	}

	start := e.now()
	e.emit(ctx, e.hooks.OnSolveStart, &domain.SolveEvent{
		Timestamp: start,
		Type:      domain.EventSolveStart,
		Puzzle:    p,
	})
	e.logger.Debug("solve started", "x", p.X, "y", p.Y, "z", p.Z)

	res := domain.Result{Puzzle: p, Trace: domain.Trace{}}
	switch {
	case p.Unreachable():
		res.Outcome = domain.OutcomeShortCircuit
	default:
		res.Trace = e.search(p)
		res.Outcome = domain.OutcomeSolved
		if len(res.Trace) == 0 {
			res.Outcome = domain.OutcomeUnsolvable
		}
	}

	end := e.now()
	e.emit(ctx, e.hooks.OnSolveFinish, &domain.SolveEvent{
		Timestamp: end,
		Type:      domain.EventSolveFinish,
		Puzzle:    p,
		Outcome:   res.Outcome,
		Steps:     len(res.Trace),
		Duration:  end.Sub(start),
	})
	e.logger.Info("solve finished",
		"x", p.X, "y", p.Y, "z", p.Z,
		"outcome", res.Outcome,
		"steps", len(res.Trace),
		"duration", end.Sub(start),
	)

	return res, nil
}

func (e *Engine) emit(ctx context.Context, hook func(context.Context, *domain.SolveEvent), ev *domain.SolveEvent) {
	if hook != nil {
		hook(ctx, ev)
	}
}
