// Package stats estimates the distribution of a roll specification by simulation.
package stats

import (
	"errors"
	"math"
	"sort"

	"github.com/trongkhoidev/JDice-Team3/internal/dice"
)

// ErrNoTrials is returned when Simulate is asked for fewer than one trial.
var ErrNoTrials = errors.New("at least one trial is required")

// Summary describes the totals observed over Trials rolls.
type Summary struct {
	Notation  string
	Trials    int
	Min       int
	Max       int
	Mean      float64
	StdDev    float64
	Histogram map[int]int
}

// Bounds returns the smallest and largest total spec can produce.
func Bounds(spec dice.RollSpec) (lo, hi int) {
	for _, d := range spec.Dice() {
		lo += d.Count() + d.Modifier()
		hi += d.Count()*d.Sides() + d.Modifier()
	}
	return lo, hi
}

// Expected returns the exact mean total of spec.
func Expected(spec dice.RollSpec) float64 {
	var mean float64
	for _, d := range spec.Dice() {
		mean += float64(d.Count())*float64(d.Sides()+1)/2 + float64(d.Modifier())
	}
	return mean
}

// Simulate rolls spec trials times. progress, when non-nil, is called with the
// number of trials completed since the previous call.
func Simulate(spec dice.RollSpec, src dice.Source, trials int, progress func(done int)) (Summary, error) {
	if trials < 1 {
		return Summary{}, ErrNoTrials
	}

	s := Summary{
		Notation:  spec.Describe(),
		Trials:    trials,
		Min:       math.MaxInt,
		Max:       math.MinInt,
		Histogram: make(map[int]int),
	}

	step := trials / 100
	if step == 0 {
		step = 1
	}

	var sum, sumSq float64
	pending := 0
	for i := 0; i < trials; i++ {
		total := spec.Roll(src).Total
		s.Histogram[total]++
		s.Min = min(s.Min, total)
		s.Max = max(s.Max, total)
		sum += float64(total)
		sumSq += float64(total) * float64(total)

		pending++
		if progress != nil && pending == step {
			progress(pending)
			pending = 0
		}
	}
	if progress != nil && pending > 0 {
		progress(pending)
	}

	n := float64(trials)
	s.Mean = sum / n
	s.StdDev = math.Sqrt(math.Max(sumSq/n-s.Mean*s.Mean, 0))
	return s, nil
}

// Totals returns the observed totals in ascending order.
func (s Summary) Totals() []int {
	keys := make([]int, 0, len(s.Histogram))
	for k := range s.Histogram {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
