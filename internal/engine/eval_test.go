package engine

import (
	"testing"

	"github.com/google/cel-go/cel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suderio/greed/internal/greed"
)

func TestEvaluator(t *testing.T) {
	ev, err := NewEvaluator()
	require.NoError(t, err)

	ctx := BuildContext(greed.NewRoll([]int{6, 6, 6, 6, 2}))

	t.Run("Counts by face", func(t *testing.T) {
		out, err := ev.Eval("counts[6] >= 4", ctx)
		require.NoError(t, err)
		assert.Equal(t, true, out)
	})

	t.Run("Points start at zero", func(t *testing.T) {
		out, err := ev.Eval("points", ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), out)
	})

	t.Run("Leftover dice", func(t *testing.T) {
		out, err := ev.Eval("leftover.size()", ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(5), out)
	})

	t.Run("Triplet points function", func(t *testing.T) {
		out, err := ev.Eval("triplet_points(1) + triplet_points(6)", ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1600), out)
	})

	t.Run("Map results become native maps", func(t *testing.T) {
		out, err := ev.Eval("{6: 4}", ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"6": int64(4)}, out)
	})

	t.Run("Compile errors are reported", func(t *testing.T) {
		_, err := ev.Eval("counts[", ctx)
		assert.ErrorContains(t, err, "CEL compile error")
	})

	t.Run("Runtime errors are reported", func(t *testing.T) {
		_, err := ev.Eval("counts[9] > 0", ctx)
		assert.ErrorContains(t, err, "CEL eval error")
	})
}

func TestEvaluatorCompileChecksOutputType(t *testing.T) {
	ev, err := NewEvaluator()
	require.NoError(t, err)

	_, err = ev.Compile("counts[1] >= 3", cel.BoolType)
	assert.NoError(t, err)

	_, err = ev.Compile("counts[1] * 100", cel.BoolType)
	assert.Error(t, err)

	_, err = ev.Compile("counts[1] * 100", cel.IntType)
	assert.NoError(t, err)
}

func TestBuildContext(t *testing.T) {
	roll := greed.NewRoll([]int{1, 5, 7})
	roll.AddPoints(150)

	ctx := BuildContext(roll)
	assert.Equal(t, []int64{0, 1, 0, 0, 0, 1, 0}, ctx["counts"])
	assert.Equal(t, int64(150), ctx["points"])
	assert.Equal(t, []int64{1, 5, 7}, ctx["leftover"])
}
