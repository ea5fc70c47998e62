package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trongkhoidev/JDice-Team3/internal/dice"
)

func TestRegistry(t *testing.T) {
	registry, err := NewRegistry(dice.NewSequenceSource(3, 4, 6, 6, 6, 6, 2, 5), nil)
	require.NoError(t, err)

	t.Run("Roll Sums Every Term", func(t *testing.T) {
		// 1d6+1 twice: (3+1) + (4+1)
		out, err := registry.Eval("roll('2x1d6+1')", nil)
		require.NoError(t, err)
		assert.Equal(t, int64(9), out)
	})

	t.Run("Dice Returns One Total Per Term", func(t *testing.T) {
		out, err := registry.Eval("dice('4x1d6')", nil)
		require.NoError(t, err)
		assert.Equal(t, []any{int64(6), int64(6), int64(6), int64(6)}, out)
	})

	t.Run("Variables", func(t *testing.T) {
		ctx := map[string]any{
			"actor": map[string]any{"str": 16},
			"dc":    10,
		}
		out, err := registry.Eval("roll('d20') + mod(actor.str) >= dc", ctx)
		require.NoError(t, err)
		// 2 + 3 < 10
		assert.Equal(t, false, out)
	})

	t.Run("Ability Modifier", func(t *testing.T) {
		for score, want := range map[int]int64{10: 0, 11: 0, 18: 4, 9: -1, 1: -5} {
			out, err := registry.Eval("mod(score)", map[string]any{"score": score})
			require.NoError(t, err)
			assert.Equal(t, want, out, "score %d", score)
		}
	})
}

func TestRegistryErrors(t *testing.T) {
	registry, err := NewRegistry(dice.NewSeededSource(1), dice.NewParser(dice.WithMaxRepeat(2)))
	require.NoError(t, err)

	t.Run("Bad Notation", func(t *testing.T) {
		_, err := registry.Eval("roll('4d4d4')", nil)
		assert.ErrorIs(t, err, ErrFormula)
		assert.Contains(t, err.Error(), "invalid dice notation")
	})

	t.Run("Parser Limit", func(t *testing.T) {
		_, err := registry.Eval("roll('3xd6')", nil)
		assert.ErrorIs(t, err, ErrFormula)
		assert.Contains(t, err.Error(), "dice limit exceeded")
	})

	t.Run("Compile Error", func(t *testing.T) {
		_, err := registry.Eval("roll(", nil)
		assert.ErrorIs(t, err, ErrFormula)
	})

	t.Run("Type Error", func(t *testing.T) {
		_, err := registry.Eval("roll(6)", nil)
		assert.ErrorIs(t, err, ErrFormula)
	})
}
