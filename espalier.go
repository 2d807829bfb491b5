package espalier

import (
	"context"
	"log/slog"

	"github.com/aretw0/espalier/internal/solver"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/ports"
)

// Version is the current release of the Espalier library.
var Version = "0.1.0"

// Aliases re-exporting the core contracts, so that most consumers only
// need to import the root package.
type (
	// Task is the decomposition strategy callers implement per problem.
	Task[G comparable, S any, St any] = ports.Task[G, S, St]

	// TaskFunc adapts a plain function into a stateless Task.
	TaskFunc[G comparable, S any] = ports.TaskFunc[G, S]

	// NoState is the state type for tasks with nothing to resume.
	NoState = ports.NoState

	// Subtask is the accessor a running task uses to read subgoal solutions.
	Subtask[G comparable, S any] = ports.Subtask[G, S]

	// SubtaskStore is the goal-to-solution memo store contract.
	SubtaskStore[G comparable, S any] = ports.SubtaskStore[G, S]

	// State is the resumable-state cell carried by an in-flight goal.
	State[T any] = domain.State[T]

	// Dependency is the structured "goal not solved yet" signal.
	Dependency[G comparable] = domain.Dependency[G]

	// CircularDependencyError reports a subgoal that is already suspended.
	CircularDependencyError[G comparable] = domain.CircularDependencyError[G]

	// TaskError wraps a domain error produced by the strategy.
	TaskError[G comparable] = domain.TaskError[G]

	// CommitEvent is emitted when a solved goal is written to the store.
	CommitEvent = domain.CommitEvent

	// LifecycleHooks defines observability callbacks for the solver.
	LifecycleHooks = domain.LifecycleHooks
)

// Option configures a solver run.
type Option = solver.Option

// WithLogger sets a custom structured logger for the run.
func WithLogger(logger *slog.Logger) Option {
	return solver.WithLogger(logger)
}

// WithHooks registers observability hooks for the run.
func WithHooks(hooks LifecycleHooks) Option {
	return solver.WithHooks(hooks)
}

// Tail signals that the current goal's solution is whatever the given
// goal resolves to. Return it as the error from a Task.Solve.
func Tail[G comparable](goal G) error {
	return domain.Tail(goal)
}

// Execute evaluates a recursively-defined goal without using the native
// call stack for the recursion.
//
// The solver runs task.Solve on the root goal. The task can request
// subgoal solutions through the Subtask accessor; when a subgoal is not
// solved yet, the accessor returns a dependency signal, the current goal
// is parked on an explicit dependency stack, and the solver switches to
// the subgoal. Solutions are committed to the store as goals resolve, so
// each distinct goal is computed at most once no matter how many other
// goals depend on it. Cyclic goal dependencies terminate the run with a
// *domain.CircularDependencyError instead of looping.
//
// The solver has exclusive use of the store for the whole run; do not
// read or write it concurrently mid-run.
//
// Note that every time a subgoal is requested but unavailable, the task
// is restarted for its goal once the subgoal resolves. Tasks that want
// to avoid redoing partial work can record progress in the state cell,
// or call sub.Precheck with all expected subgoals up front.
func Execute[G comparable, S any, St any](ctx context.Context, goal G, task Task[G, S, St], store SubtaskStore[G, S], opts ...Option) (S, error) {
	return solver.New(task, store, opts...).Run(ctx, goal)
}

// ExecuteFunc is Execute for stateless strategies expressed as a plain
// function. Type parameters are inferred from the function signature.
func ExecuteFunc[G comparable, S any](ctx context.Context, goal G, fn TaskFunc[G, S], store SubtaskStore[G, S], opts ...Option) (S, error) {
	return Execute[G, S, NoState](ctx, goal, fn, store, opts...)
}
