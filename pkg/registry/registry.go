package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// ErrNotFound is returned when a solver name has no registration.
var ErrNotFound = fmt.Errorf("solver not found")

// SolveFunc defines the signature for a registered solver.
// It receives a context and a map of arguments, and returns a result or error.
type SolveFunc func(ctx context.Context, args map[string]any) (any, error)

// Registry manages the available named solvers. It keeps puzzle-specific
// tasks an external collaborator of the core: adapters (HTTP, CLI) only
// ever see names and loosely-typed args.
type Registry struct {
	mu      sync.RWMutex
	solvers map[string]SolveFunc
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		solvers: make(map[string]SolveFunc),
	}
}

// Register adds a solver to the registry.
// If a solver with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn SolveFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.solvers[name] = fn
}

// Solve looks up a solver by name and executes it.
func (r *Registry) Solve(ctx context.Context, name string, args map[string]any) (any, error) {
	r.mu.RLock()
	fn, ok := r.solvers[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	return fn(ctx, args)
}

// Names returns the registered solver names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.solvers))
	for name := range r.solvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
