package stones_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier/pkg/adapters/memory"
	"github.com/aretw0/espalier/pkg/tasks/stones"
)

// naiveCount is the direct recursive (non-memoized) computation, used
// as the reference for small depths.
func naiveCount(value int64, depth int) int64 {
	if depth == 0 {
		return 1
	}
	split := stones.Blink(value)
	if !split.Pair {
		return naiveCount(split.Stones[0], depth-1)
	}
	return naiveCount(split.Stones[0], depth-1) + naiveCount(split.Stones[1], depth-1)
}

func TestCountDigits(t *testing.T) {
	cases := map[int64]int{0: 1, 9: 1, 10: 2, 99: 2, 100: 3, 125: 3, 1000: 4, 253000: 6}
	for value, want := range cases {
		assert.Equal(t, want, stones.CountDigits(value), "digits of %d", value)
	}
}

func TestBlink(t *testing.T) {
	t.Run("ZeroBecomesOne", func(t *testing.T) {
		split := stones.Blink(0)
		assert.False(t, split.Pair)
		assert.Equal(t, int64(1), split.Stones[0])
	})

	t.Run("EvenDigitsSplit", func(t *testing.T) {
		split := stones.Blink(17)
		assert.True(t, split.Pair)
		assert.Equal(t, [2]int64{1, 7}, split.Stones)

		split = stones.Blink(1000)
		assert.True(t, split.Pair)
		assert.Equal(t, [2]int64{10, 0}, split.Stones)
	})

	t.Run("OddDigitsMultiply", func(t *testing.T) {
		split := stones.Blink(125)
		assert.False(t, split.Pair)
		assert.Equal(t, int64(253000), split.Stones[0])
	})
}

func TestCount_SingleTransform(t *testing.T) {
	// 125 never splits at depth 1: one stone in, one stone out.
	got, err := stones.Count(context.Background(), []int64{125}, 1, memory.New[stones.Goal, int64]())
	require.NoError(t, err)
	assert.Equal(t, naiveCount(125, 1), got)
	assert.Equal(t, int64(1), got)
}

func TestCount_MatchesBruteForce(t *testing.T) {
	values := []int64{125, 17, 0, 99, 1}
	for depth := 0; depth <= 6; depth++ {
		store := memory.New[stones.Goal, int64]()
		got, err := stones.Count(context.Background(), values, depth, store)
		require.NoError(t, err, "depth %d", depth)

		var want int64
		for _, v := range values {
			want += naiveCount(v, depth)
		}
		assert.Equal(t, want, got, "depth %d", depth)
	}
}

func TestCount_KnownAnswers(t *testing.T) {
	ctx := context.Background()

	got, err := stones.Count(ctx, []int64{125, 17}, 6, memory.New[stones.Goal, int64]())
	require.NoError(t, err)
	assert.Equal(t, int64(22), got)

	got, err = stones.Count(ctx, []int64{125, 17}, 25, memory.New[stones.Goal, int64]())
	require.NoError(t, err)
	assert.Equal(t, int64(55312), got)
}

func TestCount_DeepRecursion(t *testing.T) {
	// Depth 75 is the nominal production depth; it only terminates in
	// reasonable time because subgoals are memoized.
	got, err := stones.Count(context.Background(), []int64{125, 17}, 75, memory.New[stones.Goal, int64]())
	require.NoError(t, err)
	assert.Greater(t, got, int64(55312))
}

func TestParse(t *testing.T) {
	values, err := stones.Parse("125 17\n")
	require.NoError(t, err)
	assert.Equal(t, []int64{125, 17}, values)

	_, err = stones.Parse("")
	assert.Error(t, err)

	_, err = stones.Parse("125 x")
	assert.Error(t, err)

	_, err = stones.Parse("-3")
	assert.Error(t, err)
}

func TestSolver_RegistryArgs(t *testing.T) {
	solve := stones.Solver()
	ctx := context.Background()

	t.Run("Values", func(t *testing.T) {
		// JSON-decoded args arrive as []any of float64.
		result, err := solve(ctx, map[string]any{
			"values": []any{float64(125), float64(17)},
			"depth":  float64(6),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(22), result)
	})

	t.Run("RawInput", func(t *testing.T) {
		result, err := solve(ctx, map[string]any{"input": "125 17", "depth": 6})
		require.NoError(t, err)
		assert.Equal(t, int64(22), result)
	})

	t.Run("MissingValues", func(t *testing.T) {
		_, err := solve(ctx, map[string]any{"depth": 6})
		assert.Error(t, err)
	})

	t.Run("NegativeDepth", func(t *testing.T) {
		_, err := solve(ctx, map[string]any{"values": []any{float64(1)}, "depth": -1})
		assert.Error(t, err)
	})
}
