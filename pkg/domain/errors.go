package domain

import (
	"fmt"
)

// Dependency is the structured suspension signal. It is returned (as an
// error) by the Subtask accessor when a requested goal has no stored
// solution yet. Task implementations are expected to propagate it
// immediately with an early return; the solver reacts by suspending the
// current goal and switching to the requested one.
//
// A Dependency is transient: it only ever flows from a task back to the
// solver within a single evaluation step. Never store one.
type Dependency[G comparable] struct {
	Goal G
}

func (d *Dependency[G]) Error() string {
	return fmt.Sprintf("goal %v has no solution yet", d.Goal)
}

// TailRedirect signals that the current goal's solution is whatever the
// target goal resolves to. Unlike a Dependency, the solver does not keep
// the current frame waiting on the stack; it is abandoned.
type TailRedirect[G comparable] struct {
	Goal G
}

func (t *TailRedirect[G]) Error() string {
	return fmt.Sprintf("goal redirects to %v", t.Goal)
}

// Tail builds a TailRedirect signal for the given goal. Intended usage
// from a Task:
//
//	var zero Solution
//	return zero, domain.Tail(nextGoal)
func Tail[G comparable](goal G) error {
	return &TailRedirect[G]{Goal: goal}
}

// CircularDependencyError is returned when a requested (or
// tail-redirected) subgoal is already suspended on the dependency stack.
// The offending goal is surfaced verbatim for diagnostics.
type CircularDependencyError[G comparable] struct {
	Goal G
}

func (e *CircularDependencyError[G]) Error() string {
	return fmt.Sprintf("goal %v has a circular dependency on itself", e.Goal)
}

// TaskError wraps an unrecoverable error produced by the task strategy
// itself. It records the goal that was being evaluated when the strategy
// failed. The run is aborted; goals committed before the fault stay in
// the store, but no cleanup or retry is attempted.
type TaskError[G comparable] struct {
	Goal G
	Err  error
}

func (e *TaskError[G]) Error() string {
	return fmt.Sprintf("task failed solving goal %v: %v", e.Goal, e.Err)
}

func (e *TaskError[G]) Unwrap() error {
	return e.Err
}

// StoreError wraps a failure of the backing SubtaskStore. In-memory
// stores never produce one; networked backings (e.g. Redis) can.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("subtask store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
