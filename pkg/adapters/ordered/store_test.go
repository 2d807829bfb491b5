package ordered_test

import (
	"context"
	"testing"

	"github.com/aretw0/espalier/pkg/adapters/ordered"
	"github.com/aretw0/espalier/pkg/ports/tests"
)

func TestOrderedStore_Contract(t *testing.T) {
	tests.SubtaskStoreContractTest(t, ordered.NewOrdered[string, int]())
}

func TestOrderedStore_FloatGoals(t *testing.T) {
	// The whole point of the tree backing: goals that only need a total
	// order, like floating keys.
	ctx := context.Background()
	store := ordered.NewOrdered[float64, string]()

	for _, g := range []float64{2.5, 0.5, 1.5} {
		if _, _, err := store.Add(ctx, g, "solved"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got, ok, err := store.Get(ctx, 1.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || got != "solved" {
		t.Errorf("got (%q, %v), want (solved, true)", got, ok)
	}
}

func TestOrderedStore_AscendIsDeterministic(t *testing.T) {
	ctx := context.Background()
	store := ordered.NewOrdered[int, int]()

	for _, g := range []int{5, 1, 4, 2, 3} {
		if _, _, err := store.Add(ctx, g, g*10); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	var goals []int
	store.Ascend(func(goal int, solution int) bool {
		goals = append(goals, goal)
		return true
	})

	want := []int{1, 2, 3, 4, 5}
	if len(goals) != len(want) {
		t.Fatalf("got %v, want %v", goals, want)
	}
	for i := range want {
		if goals[i] != want[i] {
			t.Fatalf("iteration order: got %v, want %v", goals, want)
		}
	}

	if store.Len() != 5 {
		t.Errorf("expected 5 entries, got %d", store.Len())
	}
}

func TestOrderedStore_CustomLess(t *testing.T) {
	type goal struct {
		Key float64
	}

	ctx := context.Background()
	store := ordered.New[goal, int](func(a, b goal) bool { return a.Key < b.Key })

	if _, _, err := store.Add(ctx, goal{Key: 3.14}, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := store.Contains(ctx, goal{Key: 3.14})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected goal to be found via the custom order")
	}
}
