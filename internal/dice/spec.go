// Package dice parses tabletop dice notation such as "4x3d8-5" or
// "12d10+5 & 4d6+2 ; d20" into roll specifications and rolls them.
package dice

import (
	"fmt"
	"strconv"
)

// RollSpec is an immutable description of a dice computation.
// Specs are safe to share between goroutines; each Roll draws fresh randomness.
type RollSpec interface {
	// Describe renders the spec in dice notation, e.g. "3d8-5" or "1d6 & 2d4".
	Describe() string
	// Roll evaluates the spec against src.
	Roll(src Source) RollResult
	// Dice returns the single rolls that make up the spec, left to right.
	Dice() []*SingleRoll
}

// SingleRoll rolls Count dice of Sides faces and adds Modifier.
type SingleRoll struct {
	count    int
	sides    int
	modifier int
}

// NewSingleRoll builds a SingleRoll. It panics when count or sides is not
// positive: the parser never produces such a value, so reaching it is a bug.
func NewSingleRoll(count, sides, modifier int) *SingleRoll {
	if count <= 0 || sides <= 0 {
		panic(fmt.Sprintf("dice: invalid single roll %dd%d: count and sides must be > 0", count, sides))
	}
	return &SingleRoll{count: count, sides: sides, modifier: modifier}
}

func (s *SingleRoll) Count() int    { return s.count }
func (s *SingleRoll) Sides() int    { return s.sides }
func (s *SingleRoll) Modifier() int { return s.modifier }

func (s *SingleRoll) Describe() string {
	out := strconv.Itoa(s.count) + "d" + strconv.Itoa(s.sides)
	switch {
	case s.modifier > 0:
		out += "+" + strconv.Itoa(s.modifier)
	case s.modifier < 0:
		out += strconv.Itoa(s.modifier)
	}
	return out
}

func (s *SingleRoll) String() string { return s.Describe() }

func (s *SingleRoll) Dice() []*SingleRoll { return []*SingleRoll{s} }

// SumRoll adds the totals of two specs.
type SumRoll struct {
	left  RollSpec
	right RollSpec
}

// NewSumRoll combines left and right. Both must be non-nil.
func NewSumRoll(left, right RollSpec) *SumRoll {
	if left == nil || right == nil {
		panic("dice: sum roll operands must be non-nil")
	}
	return &SumRoll{left: left, right: right}
}

func (s *SumRoll) Left() RollSpec  { return s.left }
func (s *SumRoll) Right() RollSpec { return s.right }

func (s *SumRoll) Describe() string {
	return s.left.Describe() + " & " + s.right.Describe()
}

func (s *SumRoll) String() string { return s.Describe() }

func (s *SumRoll) Dice() []*SingleRoll {
	return append(s.left.Dice(), s.right.Dice()...)
}

// Equal reports whether a and b describe the same tree of rolls.
func Equal(a, b RollSpec) bool {
	switch x := a.(type) {
	case *SingleRoll:
		y, ok := b.(*SingleRoll)
		return ok && x != nil && y != nil && *x == *y
	case *SumRoll:
		y, ok := b.(*SumRoll)
		return ok && Equal(x.left, y.left) && Equal(x.right, y.right)
	}
	return false
}
