package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		spec RollSpec
		want string
	}{
		{NewSingleRoll(1, 6, 0), "1d6"},
		{NewSingleRoll(3, 8, 5), "3d8+5"},
		{NewSingleRoll(3, 8, -5), "3d8-5"},
		{NewSumRoll(NewSingleRoll(12, 10, 5), NewSingleRoll(4, 6, 2)), "12d10+5 & 4d6+2"},
		{NewSumRoll(NewSumRoll(NewSingleRoll(1, 4, 0), NewSingleRoll(1, 6, -1)), NewSingleRoll(2, 8, 0)), "1d4 & 1d6-1 & 2d8"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spec.Describe())
		})
	}
}

func TestNewSingleRollInvariant(t *testing.T) {
	assert.PanicsWithValue(t, "dice: invalid single roll 0d6: count and sides must be > 0", func() { NewSingleRoll(0, 6, 0) })
	assert.Panics(t, func() { NewSingleRoll(2, 0, 0) })
	assert.Panics(t, func() { NewSingleRoll(-1, 6, 0) })
	assert.Panics(t, func() { NewSumRoll(nil, NewSingleRoll(1, 6, 0)) })
	assert.NotPanics(t, func() { NewSingleRoll(1, 1, -10) })
}

func TestEqual(t *testing.T) {
	a := NewSumRoll(NewSingleRoll(1, 6, 0), NewSingleRoll(2, 4, 1))
	b := NewSumRoll(NewSingleRoll(1, 6, 0), NewSingleRoll(2, 4, 1))
	c := NewSumRoll(NewSingleRoll(2, 4, 1), NewSingleRoll(1, 6, 0))

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.False(t, Equal(a, NewSingleRoll(1, 6, 0)))
	assert.False(t, Equal(nil, a))
}

func TestDice(t *testing.T) {
	spec := MustParse("d4 & 2d6 & 3d8")[0]
	var got []string
	for _, d := range spec.Dice() {
		got = append(got, d.Describe())
	}
	assert.Equal(t, []string{"1d4", "2d6", "3d8"}, got)
}
