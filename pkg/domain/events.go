package domain

import (
	"context"
)

// EvalEvent is emitted every time the solver hands a goal to the task.
type EvalEvent struct {
	Goal    any  `json:"goal"`
	Resumed bool `json:"resumed"` // true when the goal already carries state from a previous suspension
	Depth   int  `json:"depth"`   // current dependency stack depth
}

// SuspendEvent is emitted when a goal requests a subgoal and gets parked
// on the dependency stack, or (without parking) when it tail-redirects.
type SuspendEvent struct {
	Goal    any `json:"goal"`
	Subgoal any `json:"subgoal"`
	Depth   int `json:"depth"` // stack depth after the suspension
}

// CommitEvent is emitted when a solved goal is written to the store.
type CommitEvent struct {
	Goal any `json:"goal"`
}

// FaultEvent is emitted when a run terminates with an error.
type FaultEvent struct {
	Goal  any   `json:"goal"`
	Err   error `json:"-"`
	Cycle bool  `json:"cycle"`
}

// LifecycleHooks defines callbacks for solver observability. Goal values
// are passed as `any` so the hooks stay free of the solver's type
// parameters; adapters that need the concrete goal type can assert it.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnEvaluate     func(context.Context, *EvalEvent)
	OnSuspend      func(context.Context, *SuspendEvent)
	OnTailRedirect func(context.Context, *SuspendEvent)
	OnCommit       func(context.Context, *CommitEvent)
	OnFault        func(context.Context, *FaultEvent)
}
