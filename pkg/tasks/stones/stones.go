// Package stones implements the stone-splitting puzzle as an Espalier
// task: each blink turns a stone of 0 into 1, splits a stone with an
// even digit count into its two halves, and otherwise multiplies the
// stone by 2024. The goal is the number of stones a single stone becomes
// after a given number of blinks, a branching recursion that reaches
// nominal depth 75, which is exactly the shape the solver exists for.
package stones

import (
	"context"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/pkg/ports"
)

// Goal identifies one unit of work: a stone value observed for a number
// of remaining blinks.
type Goal struct {
	Value int64 `json:"value"`
	Depth int   `json:"depth"`
}

// Split is the resumable state of a goal: the outcome of blinking its
// stone once, computed a single time and reused on every resumption.
type Split struct {
	Stones [2]int64
	Pair   bool // when false, only Stones[0] is meaningful
}

// CountDigits returns the number of base-10 digits of v (1 for 0).
func CountDigits(v int64) int {
	if v < 0 {
		v = -v
	}
	digits := 1
	for v >= 10 {
		v /= 10
		digits++
	}
	return digits
}

// Blink applies one blink to a single stone.
func Blink(value int64) Split {
	if value == 0 {
		return Split{Stones: [2]int64{1}}
	}

	digits := CountDigits(value)
	if digits%2 == 0 {
		power := int64(1)
		for i := 0; i < digits/2; i++ {
			power *= 10
		}
		return Split{Stones: [2]int64{value / power, value % power}, Pair: true}
	}

	return Split{Stones: [2]int64{value * 2024}}
}

// Task counts the stones a goal expands into. It implements
// ports.Task[Goal, int64, Split].
type Task struct{}

// Solve decomposes a goal into at most two subgoals one blink deeper.
// The decomposition is recorded in the state cell on first visit so a
// resumption does not redo it.
func (Task) Solve(ctx context.Context, goal Goal, sub ports.Subtask[Goal, int64], state *espalier.State[Split]) (int64, error) {
	split, ok := state.Get()
	if !ok {
		if goal.Depth == 0 {
			return 1, nil
		}
		split = Blink(goal.Value)
		state.Set(split)
	}

	if !split.Pair {
		// TODO: turn this into a tail redirect once the solver reuses
		// frames for tail calls; today a redirect would skip memoizing
		// this goal under its own key.
		return sub.Solve(ctx, Goal{Value: split.Stones[0], Depth: goal.Depth - 1})
	}

	first, err := sub.Solve(ctx, Goal{Value: split.Stones[0], Depth: goal.Depth - 1})
	if err != nil {
		return 0, err
	}
	second, err := sub.Solve(ctx, Goal{Value: split.Stones[1], Depth: goal.Depth - 1})
	if err != nil {
		return 0, err
	}
	return first + second, nil
}

// Count evaluates every initial stone to the given depth against one
// shared store, so subproblems common to several stones are solved once,
// and returns the total stone count.
func Count(ctx context.Context, values []int64, depth int, store ports.SubtaskStore[Goal, int64], opts ...espalier.Option) (int64, error) {
	var total int64
	for _, value := range values {
		n, err := espalier.Execute[Goal, int64, Split](ctx, Goal{Value: value, Depth: depth}, Task{}, store, opts...)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
