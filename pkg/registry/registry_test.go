package registry_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aretw0/espalier/pkg/registry"
)

func TestRegistry_RegisterAndSolve(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Register("double", func(ctx context.Context, args map[string]any) (any, error) {
		n, ok := args["n"].(float64)
		if !ok {
			return nil, fmt.Errorf("missing n")
		}
		return n * 2, nil
	})

	result, err := reg.Solve(context.Background(), "double", map[string]any{"n": float64(21)})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if result != float64(42) {
		t.Errorf("got %v, want 42", result)
	}
}

func TestRegistry_NotFound(t *testing.T) {
	reg := registry.NewRegistry()

	_, err := reg.Solve(context.Background(), "missing", nil)
	if !errors.Is(err, registry.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRegistry_Names(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Register("b", func(ctx context.Context, args map[string]any) (any, error) { return nil, nil })
	reg.Register("a", func(ctx context.Context, args map[string]any) (any, error) { return nil, nil })

	names := reg.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("expected sorted names [a b], got %v", names)
	}
}
