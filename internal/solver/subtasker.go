package solver

import (
	"context"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/ports"
)

// subtasker wraps the read side of the memo store for consumption by a
// running task. It is the only ports.Subtask implementation; tasks never
// see the store directly.
type subtasker[G comparable, S any] struct {
	store ports.SubtaskStore[G, S]
}

// Solve returns the stored solution, or a *domain.Dependency carrying
// the goal when it has not been solved yet.
func (t *subtasker[G, S]) Solve(ctx context.Context, goal G) (S, error) {
	solution, ok, err := t.store.Get(ctx, goal)
	if err != nil {
		var zero S
		return zero, &domain.StoreError{Op: "get", Err: err}
	}
	if !ok {
		var zero S
		return zero, &domain.Dependency[G]{Goal: goal}
	}
	return solution, nil
}

// Precheck scans goals in order and fails fast on the first one without
// a solution. Goals after the first miss are not touched.
func (t *subtasker[G, S]) Precheck(ctx context.Context, goals ...G) error {
	for _, goal := range goals {
		ok, err := t.store.Contains(ctx, goal)
		if err != nil {
			return &domain.StoreError{Op: "contains", Err: err}
		}
		if !ok {
			return &domain.Dependency[G]{Goal: goal}
		}
	}
	return nil
}
