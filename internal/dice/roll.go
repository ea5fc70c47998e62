package dice

import (
	"fmt"
	"strings"
)

// RollResult holds the individual die faces of one evaluation.
//
// Total == sum(Rolls) + Modifier always holds.
type RollResult struct {
	Rolls    []int
	Modifier int
	Total    int
}

// String renders the result as "[4 2 7] -5 = 8".
func (r RollResult) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprint(r.Rolls))
	if r.Modifier != 0 {
		sb.WriteString(fmt.Sprintf(" %+d", r.Modifier))
	}
	sb.WriteString(fmt.Sprintf(" = %d", r.Total))
	return sb.String()
}

// Roll evaluates spec against src.
func Roll(spec RollSpec, src Source) RollResult {
	return spec.Roll(src)
}

// RollAll evaluates every spec in order.
func RollAll(specs []RollSpec, src Source) []RollResult {
	out := make([]RollResult, len(specs))
	for i, spec := range specs {
		out[i] = spec.Roll(src)
	}
	return out
}

func (s *SingleRoll) Roll(src Source) RollResult {
	res := RollResult{
		Rolls:    make([]int, s.count),
		Modifier: s.modifier,
		Total:    s.modifier,
	}
	for i := range res.Rolls {
		face := src.Intn(s.sides) + 1
		res.Rolls[i] = face
		res.Total += face
	}
	return res
}

// Roll evaluates the left operand, then the right one, each with fresh draws.
func (s *SumRoll) Roll(src Source) RollResult {
	left := s.left.Roll(src)
	right := s.right.Roll(src)

	rolls := make([]int, 0, len(left.Rolls)+len(right.Rolls))
	rolls = append(rolls, left.Rolls...)
	rolls = append(rolls, right.Rolls...)
	return RollResult{
		Rolls:    rolls,
		Modifier: left.Modifier + right.Modifier,
		Total:    left.Total + right.Total,
	}
}
