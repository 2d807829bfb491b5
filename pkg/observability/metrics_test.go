package observability_test

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/pkg/adapters/memory"
	"github.com/aretw0/espalier/pkg/observability"
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

func TestMetrics_CountsLifecycle(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	result, err := espalier.ExecuteFunc(context.Background(), 10, fib, memory.New[int, int](),
		espalier.WithHooks(metrics.Hooks()),
	)
	require.NoError(t, err)
	require.Equal(t, 55, result)

	// Goals 0..9 get committed, the root does not.
	families, err := reg.Gather()
	require.NoError(t, err)
	byName := map[string]float64{}
	for _, f := range families {
		total := 0.0
		for _, m := range f.GetMetric() {
			if m.GetCounter() != nil {
				total += m.GetCounter().GetValue()
			}
		}
		byName[f.GetName()] = total
	}

	assert.Equal(t, 10.0, byName["espalier_commits_total"])
	assert.Equal(t, byName["espalier_suspensions_total"], byName["espalier_commits_total"],
		"every suspension waits for exactly one committed subgoal in this strategy")
	assert.Greater(t, byName["espalier_evaluations_total"], 10.0)
}

func TestMetrics_CountsCycleFaults(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	task := espalier.TaskFunc[string, int](func(ctx context.Context, goal string, sub espalier.Subtask[string, int]) (int, error) {
		return sub.Solve(ctx, goal) // immediate self-cycle
	})

	_, err := espalier.ExecuteFunc(context.Background(), "A", task, memory.New[string, int](),
		espalier.WithHooks(metrics.Hooks()),
	)
	require.Error(t, err)

	expected := `
		# HELP espalier_faults_total Runs terminated with an error.
		# TYPE espalier_faults_total counter
		espalier_faults_total{kind="cycle"} 1
	`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "espalier_faults_total"))
}
