package solver

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aretw0/espalier/internal/logging"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/ports"
)

// frame is a suspended computation: a goal parked on the dependency
// stack together with its resumable state, waiting for a subgoal to be
// solved. The stack of frames is the explicit, heap-resident substitute
// for the native call stack; its depth equals the nesting depth of
// pending subgoal requests, not the total amount of work done.
type frame[G comparable, St any] struct {
	goal  G
	state *domain.State[St]
}

// Solver is the trampoline driver. It repeatedly invokes the task
// strategy on a current goal and reacts to the outcome: a solution pops
// the next waiting goal, a dependency suspends the current one, a tail
// redirect replaces it, an error aborts the run.
//
// A Solver holds exclusive access to its store for the duration of a
// run. It is single-threaded and fully synchronous; "suspension" means
// only an explicit return-and-resume within one control loop.
type Solver[G comparable, S any, St any] struct {
	task   ports.Task[G, S, St]
	sub    *subtasker[G, S]
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	stack  []frame[G, St]
}

// Option configures a Solver.
type Option func(*settings)

type settings struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// WithLogger sets a custom structured logger for the solver.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(s *settings) {
		s.hooks = hooks
	}
}

// New creates a solver for the given task strategy and memo store.
func New[G comparable, S any, St any](task ports.Task[G, S, St], store ports.SubtaskStore[G, S], opts ...Option) *Solver[G, S, St] {
	cfg := settings{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Solver[G, S, St]{
		task:   task,
		sub:    &subtasker[G, S]{store: store},
		logger: cfg.logger,
		hooks:  cfg.hooks,
	}
}

// Run evaluates the root goal to completion. Each distinct goal is
// handed to the task with empty state exactly once; solved subgoals are
// committed to the store so later requests hit the memo instead of
// recomputing.
//
// The run terminates with the root solution, a
// *domain.CircularDependencyError when a requested subgoal is already
// suspended, a *domain.TaskError when the strategy fails, or a
// *domain.StoreError when the backing store does.
func (s *Solver[G, S, St]) Run(ctx context.Context, root G) (S, error) {
	var zero S

	// NOTE: We could check whether the root is already in the store, but
	// for every other goal that is impossible: the only way into the
	// store is through a commit, and the only way a goal gets evaluated
	// is after the store reported it absent. We assume the caller does
	// not pre-seed the root.
	current := root
	state := &domain.State[St]{}
	resumed := false

	for {
		s.emitEvaluate(ctx, current, resumed)

		solution, err := s.task.Solve(ctx, current, s.sub, state)
		if err == nil {
			if len(s.stack) == 0 {
				s.logger.Debug("root goal solved", "goal", current)
				return solution, nil
			}

			if _, _, err := s.sub.store.Add(ctx, current, solution); err != nil {
				return zero, &domain.StoreError{Op: "add", Err: err}
			}
			s.emitCommit(ctx, current)

			top := s.stack[len(s.stack)-1]
			s.stack = s.stack[:len(s.stack)-1]
			current, state = top.goal, top.state
			resumed = true
			continue
		}

		var dep *domain.Dependency[G]
		var tail *domain.TailRedirect[G]
		var storeErr *domain.StoreError

		switch {
		case errors.As(err, &dep):
			if s.wouldCycle(current, dep.Goal) {
				s.emitFault(ctx, dep.Goal, err, true)
				return zero, &domain.CircularDependencyError[G]{Goal: dep.Goal}
			}
			s.stack = append(s.stack, frame[G, St]{goal: current, state: state})
			s.emitSuspend(ctx, current, dep.Goal)
			s.logger.Debug("goal suspended", "goal", current, "subgoal", dep.Goal, "depth", len(s.stack))
			current = dep.Goal
			state = &domain.State[St]{}
			resumed = false

		case errors.As(err, &tail):
			// Same cycle check as a dependency, but the current frame is
			// abandoned instead of parked, so pure tail recursion costs
			// no stack depth. A goal redirecting to itself is reported
			// as circular rather than looping forever.
			if s.wouldCycle(current, tail.Goal) {
				s.emitFault(ctx, tail.Goal, err, true)
				return zero, &domain.CircularDependencyError[G]{Goal: tail.Goal}
			}
			s.emitTail(ctx, current, tail.Goal)
			s.logger.Debug("goal redirected", "goal", current, "target", tail.Goal)
			current = tail.Goal
			state = &domain.State[St]{}
			resumed = false

		case errors.As(err, &storeErr):
			s.emitFault(ctx, current, err, false)
			return zero, storeErr

		default:
			s.emitFault(ctx, current, err, false)
			s.logger.Debug("task failed", "goal", current, "err", err)
			return zero, &domain.TaskError[G]{Goal: current, Err: err}
		}
	}
}

// wouldCycle reports whether switching to subgoal would revisit a goal
// that is still in flight: the one being evaluated right now, or any
// goal suspended on the dependency stack.
//
// TODO: index suspended goals in a set so the check is sub-linear in
// stack depth. The linear scan is fine for the depths seen so far.
func (s *Solver[G, S, St]) wouldCycle(current, subgoal G) bool {
	if subgoal == current {
		return true
	}
	for i := range s.stack {
		if s.stack[i].goal == subgoal {
			return true
		}
	}
	return false
}

func (s *Solver[G, S, St]) emitEvaluate(ctx context.Context, goal G, resumed bool) {
	if s.hooks.OnEvaluate != nil {
		s.hooks.OnEvaluate(ctx, &domain.EvalEvent{Goal: goal, Resumed: resumed, Depth: len(s.stack)})
	}
}

func (s *Solver[G, S, St]) emitSuspend(ctx context.Context, goal, subgoal G) {
	if s.hooks.OnSuspend != nil {
		s.hooks.OnSuspend(ctx, &domain.SuspendEvent{Goal: goal, Subgoal: subgoal, Depth: len(s.stack)})
	}
}

func (s *Solver[G, S, St]) emitTail(ctx context.Context, goal, target G) {
	if s.hooks.OnTailRedirect != nil {
		s.hooks.OnTailRedirect(ctx, &domain.SuspendEvent{Goal: goal, Subgoal: target, Depth: len(s.stack)})
	}
}

func (s *Solver[G, S, St]) emitCommit(ctx context.Context, goal G) {
	if s.hooks.OnCommit != nil {
		s.hooks.OnCommit(ctx, &domain.CommitEvent{Goal: goal})
	}
}

func (s *Solver[G, S, St]) emitFault(ctx context.Context, goal G, err error, cycle bool) {
	if s.hooks.OnFault != nil {
		s.hooks.OnFault(ctx, &domain.FaultEvent{Goal: goal, Err: err, Cycle: cycle})
	}
}
