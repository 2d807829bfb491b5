package ports

import (
	"context"

	"github.com/aretw0/espalier/pkg/domain"
)

// Subtask is the read-only view of the memo store handed to a running
// task. It turns "goal not solved yet" into a structured suspension
// signal (*domain.Dependency) instead of an error the task would have
// to interpret; the task is expected to propagate the signal with an
// early return rather than catch and retry it.
type Subtask[G comparable, S any] interface {
	// Solve returns the stored solution for a goal, or a
	// *domain.Dependency carrying the goal when it is not solved yet.
	Solve(ctx context.Context, goal G) (S, error)

	// Precheck scans the goals in order and fails fast with a
	// *domain.Dependency for the first one that has no solution,
	// touching nothing after the first miss. Useful for tasks that want
	// all prerequisites in place before doing any other work, to avoid
	// redoing partial computation on every resumption.
	Precheck(ctx context.Context, goals ...G) error
}

// Task is the user-supplied decomposition strategy. Given a goal and
// access to subgoal solutions, it either produces a final solution
// (nil error), requests a subgoal (*domain.Dependency, normally by
// propagating the error from sub.Solve), requests a tail redirect
// (domain.Tail), or fails with any other error.
//
// The first call for a goal receives an empty state cell; the strategy
// may populate it with whatever intermediate result it wants preserved
// across suspension. Every later call for that same goal (after a
// requested subgoal resolved) receives the same cell, so the strategy
// can continue where it left off. Strategies without internal state can
// use NoState and ignore the cell.
type Task[G comparable, S any, St any] interface {
	Solve(ctx context.Context, goal G, sub Subtask[G, S], state *domain.State[St]) (S, error)
}

// NoState is the state type for tasks that carry nothing across
// suspensions.
type NoState = struct{}

// TaskFunc adapts a plain function into a stateless Task.
type TaskFunc[G comparable, S any] func(ctx context.Context, goal G, sub Subtask[G, S]) (S, error)

// Solve implements Task with NoState.
func (f TaskFunc[G, S]) Solve(ctx context.Context, goal G, sub Subtask[G, S], _ *domain.State[NoState]) (S, error) {
	return f(ctx, goal, sub)
}
