package tests

import (
	"context"
	"testing"

	"github.com/aretw0/espalier/pkg/ports"
)

// SubtaskStoreContractTest is a reusable test suite that verifies an
// adapter complies with ports.SubtaskStore semantics. Adapters
// instantiate their store with string goals and int solutions and hand
// it here.
func SubtaskStoreContractTest(t *testing.T, store ports.SubtaskStore[string, int]) {
	t.Helper()
	ctx := context.Background()

	t.Run("Get_Missing", func(t *testing.T) {
		_, ok, err := store.Get(ctx, "missing")
		if err != nil {
			t.Fatalf("unexpected error getting missing goal: %v", err)
		}
		if ok {
			t.Error("expected missing goal to report absent")
		}
	})

	t.Run("Contains_Missing", func(t *testing.T) {
		ok, err := store.Contains(ctx, "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected missing goal to not be contained")
		}
	})

	t.Run("Add_Then_Get", func(t *testing.T) {
		_, replaced, err := store.Add(ctx, "a", 1)
		if err != nil {
			t.Fatalf("unexpected error adding: %v", err)
		}
		if replaced {
			t.Error("first add should not replace anything")
		}

		got, ok, err := store.Get(ctx, "a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatal("expected goal to be present after add")
		}
		if got != 1 {
			t.Errorf("solution mismatch. got %d, want 1", got)
		}

		contained, err := store.Contains(ctx, "a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !contained {
			t.Error("expected Contains to report true after add")
		}
	})

	t.Run("Add_Returns_Previous", func(t *testing.T) {
		_, _, err := store.Add(ctx, "b", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		prev, replaced, err := store.Add(ctx, "b", 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !replaced {
			t.Error("second add should report a replacement")
		}
		if prev != 10 {
			t.Errorf("previous solution mismatch. got %d, want 10", prev)
		}

		got, _, err := store.Get(ctx, "b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 20 {
			t.Errorf("insert wins: got %d, want 20", got)
		}
	})

	t.Run("Independent_Goals", func(t *testing.T) {
		if _, _, err := store.Add(ctx, "c", 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, _, err := store.Add(ctx, "d", 4); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for goal, want := range map[string]int{"c": 3, "d": 4} {
			got, ok, err := store.Get(ctx, goal)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !ok || got != want {
				t.Errorf("goal %s: got (%d, %v), want (%d, true)", goal, got, ok, want)
			}
		}
	})
}
