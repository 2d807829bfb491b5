package espalier_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/internal/logging"
	"github.com/aretw0/espalier/pkg/adapters/memory"
)

func fib(ctx context.Context, n int, sub espalier.Subtask[int, int]) (int, error) {
	if n < 2 {
		return n, nil
	}
	a, err := sub.Solve(ctx, n-1)
	if err != nil {
		return 0, err
	}
	b, err := sub.Solve(ctx, n-2)
	if err != nil {
		return 0, err
	}
	return a + b, nil
}

func TestExecuteFunc_Fibonacci(t *testing.T) {
	result, err := espalier.ExecuteFunc(context.Background(), 10, fib, memory.New[int, int]())
	require.NoError(t, err)
	assert.Equal(t, 55, result)
}

func TestExecuteFunc_BaseCasesShortCircuit(t *testing.T) {
	for n, want := range map[int]int{0: 0, 1: 1} {
		store := memory.New[int, int]()
		result, err := espalier.ExecuteFunc(context.Background(), n, fib, store)
		require.NoError(t, err)
		assert.Equal(t, want, result)
		// No subgoal was ever requested, so nothing was memoized.
		assert.Equal(t, 0, store.Len())
	}
}

func TestExecute_WithHooksAndLogger(t *testing.T) {
	commits := 0
	hooks := espalier.LifecycleHooks{
		OnCommit: func(ctx context.Context, e *espalier.CommitEvent) { commits++ },
	}

	result, err := espalier.ExecuteFunc(context.Background(), 10, fib, memory.New[int, int](),
		espalier.WithLogger(logging.NewNop()),
		espalier.WithHooks(hooks),
	)
	require.NoError(t, err)
	assert.Equal(t, 55, result)
	// Goals 0..9 get committed; the root solution is returned, not stored.
	assert.Equal(t, 10, commits)
}

func TestExecute_CircularDependencySurfacesGoal(t *testing.T) {
	task := espalier.TaskFunc[string, int](func(ctx context.Context, goal string, sub espalier.Subtask[string, int]) (int, error) {
		if goal == "A" {
			return sub.Solve(ctx, "B")
		}
		return sub.Solve(ctx, "A")
	})

	_, err := espalier.ExecuteFunc(context.Background(), "A", task, memory.New[string, int]())

	var cycleErr *espalier.CircularDependencyError[string]
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, "A", cycleErr.Goal)
}

func TestExecute_DomainErrorAborts(t *testing.T) {
	sentinel := errors.New("boom")
	task := espalier.TaskFunc[int, int](func(ctx context.Context, n int, sub espalier.Subtask[int, int]) (int, error) {
		return 0, sentinel
	})

	_, err := espalier.ExecuteFunc(context.Background(), 1, task, memory.New[int, int]())
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
}

func TestTail_RedirectsWithoutParking(t *testing.T) {
	task := espalier.TaskFunc[int, int](func(ctx context.Context, n int, sub espalier.Subtask[int, int]) (int, error) {
		if n == 0 {
			return 42, nil
		}
		return 0, espalier.Tail(n - 1)
	})

	result, err := espalier.ExecuteFunc(context.Background(), 50000, task, memory.New[int, int]())
	require.NoError(t, err)
	assert.Equal(t, 42, result)
}
