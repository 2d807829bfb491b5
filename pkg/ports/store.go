package ports

import (
	"context"
)

// SubtaskStore is the memo store: a mapping from goal to solution,
// owned exclusively by the solver for the duration of a run. A goal is
// written at most once, and only after it has been fully solved; there
// is no eviction and no update-in-place beyond "insert wins".
//
// The solver depends on the backing structure only through these three
// operations, so callers can pick whatever associative container suits
// their goal type: a hash map for hashable goals, an ordered tree when
// goals only carry a total order or when deterministic iteration
// matters, or a networked backing shared between runs.
//
// Methods carry a context and an error return so that remote backings
// (e.g. Redis) can satisfy the contract honestly. In-memory
// implementations always return nil errors.
type SubtaskStore[G comparable, S any] interface {
	// Add records a solution for a goal. It returns the previous
	// solution and whether one was replaced.
	Add(ctx context.Context, goal G, solution S) (previous S, replaced bool, err error)

	// Get fetches a known solution for a goal, if present.
	Get(ctx context.Context, goal G) (S, bool, error)

	// Contains reports whether a goal has a known solution.
	Contains(ctx context.Context, goal G) (bool, error)
}
