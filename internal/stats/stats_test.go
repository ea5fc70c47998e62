package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trongkhoidev/JDice-Team3/internal/dice"
)

func TestBounds(t *testing.T) {
	tests := []struct {
		notation string
		lo, hi   int
	}{
		{"d6", 1, 6},
		{"3d8-5", -2, 19},
		{"12d10+5 & 4d6+2", 23, 151},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			lo, hi := Bounds(dice.MustParse(tt.notation)[0])
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)
		})
	}
}

func TestExpected(t *testing.T) {
	assert.InDelta(t, 3.5, Expected(dice.MustParse("d6")[0]), 1e-9)
	assert.InDelta(t, 10.5+2, Expected(dice.MustParse("3d6+2")[0]), 1e-9)
}

func TestSimulate(t *testing.T) {
	spec := dice.MustParse("2d6")[0]
	var reported int
	s, err := Simulate(spec, dice.NewSeededSource(3), 20000, func(done int) { reported += done })
	require.NoError(t, err)

	assert.Equal(t, 20000, reported)
	assert.Equal(t, "2d6", s.Notation)
	assert.Equal(t, 2, s.Min)
	assert.Equal(t, 12, s.Max)
	assert.InDelta(t, 7.0, s.Mean, 0.1)
	assert.InDelta(t, 2.415, s.StdDev, 0.1)
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, s.Totals())

	count := 0
	for _, n := range s.Histogram {
		count += n
	}
	assert.Equal(t, 20000, count)
}

func TestSimulateDeterministic(t *testing.T) {
	spec := dice.MustParse("d20 & d4-1")[0]
	s, err := Simulate(spec, dice.NewSequenceSource(20, 4), 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 23, s.Min)
	assert.Equal(t, 23, s.Max)
	assert.Equal(t, 23.0, s.Mean)
	assert.Equal(t, 0.0, s.StdDev)
}

func TestSimulateNoTrials(t *testing.T) {
	_, err := Simulate(dice.MustParse("d6")[0], dice.NewSeededSource(1), 0, nil)
	assert.ErrorIs(t, err, ErrNoTrials)
}
