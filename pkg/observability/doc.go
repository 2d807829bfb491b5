/*
Package observability bridges the solver's lifecycle hooks to Prometheus.

Metrics registers counters for evaluations, suspensions, commits and
faults plus a dependency-stack depth gauge, and hands them to a run as
domain.LifecycleHooks:

	m := observability.NewMetrics(prometheus.DefaultRegisterer)
	result, err := espalier.Execute(ctx, goal, task, store, espalier.WithHooks(m.Hooks()))
*/
package observability
