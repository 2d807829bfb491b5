package observability

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/espalier/pkg/domain"
)

// Metrics exposes solver lifecycle counters to Prometheus. Attach it to
// a run via Hooks().
type Metrics struct {
	evaluations *prometheus.CounterVec
	suspensions prometheus.Counter
	commits     prometheus.Counter
	faults      *prometheus.CounterVec
	stackDepth  prometheus.Gauge
}

// NewMetrics creates and registers the solver metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "espalier",
				Name:      "evaluations_total",
				Help:      "Task invocations, split by whether the goal was resumed after a suspension.",
			},
			[]string{"resumed"},
		),
		suspensions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "espalier",
			Name:      "suspensions_total",
			Help:      "Goals parked on the dependency stack waiting for a subgoal.",
		}),
		commits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "espalier",
			Name:      "commits_total",
			Help:      "Solved goals written to the memo store.",
		}),
		faults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "espalier",
				Name:      "faults_total",
				Help:      "Runs terminated with an error.",
			},
			[]string{"kind"},
		),
		stackDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "espalier",
			Name:      "stack_depth",
			Help:      "Current dependency stack depth.",
		}),
	}

	reg.MustRegister(m.evaluations, m.suspensions, m.commits, m.faults, m.stackDepth)
	return m
}

// Hooks returns lifecycle hooks that update the metrics.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnEvaluate: func(_ context.Context, e *domain.EvalEvent) {
			m.evaluations.WithLabelValues(strconv.FormatBool(e.Resumed)).Inc()
			m.stackDepth.Set(float64(e.Depth))
		},
		OnSuspend: func(_ context.Context, e *domain.SuspendEvent) {
			m.suspensions.Inc()
			m.stackDepth.Set(float64(e.Depth))
		},
		OnCommit: func(_ context.Context, _ *domain.CommitEvent) {
			m.commits.Inc()
		},
		OnFault: func(_ context.Context, e *domain.FaultEvent) {
			kind := "task"
			if e.Cycle {
				kind = "cycle"
			}
			m.faults.WithLabelValues(kind).Inc()
		},
	}
}
