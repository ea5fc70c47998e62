package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/trongkhoidev/JDice-Team3/internal/dice"
	"gopkg.in/yaml.v3"
)

// Format selects how outcomes are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// Line is one rolled term.
type Line struct {
	Notation string `json:"notation" yaml:"notation"`
	Rolls    []int  `json:"rolls" yaml:"rolls,flow"`
	Modifier int    `json:"modifier" yaml:"modifier"`
	Total    int    `json:"total" yaml:"total"`
}

// Outcome is everything rolled for one input string.
type Outcome struct {
	Actor   string `json:"actor,omitempty" yaml:"actor,omitempty"`
	Input   string `json:"input" yaml:"input"`
	Results []Line `json:"results" yaml:"results"`
}

// NewOutcome rolls every spec against src and records the result.
func NewOutcome(actor, input string, specs []dice.RollSpec, src dice.Source) Outcome {
	out := Outcome{Actor: actor, Input: input, Results: make([]Line, 0, len(specs))}
	for _, spec := range specs {
		res := spec.Roll(src)
		out.Results = append(out.Results, Line{
			Notation: spec.Describe(),
			Rolls:    res.Rolls,
			Modifier: res.Modifier,
			Total:    res.Total,
		})
	}
	return out
}

// GrandTotal sums the totals of every line.
func (o Outcome) GrandTotal() int {
	total := 0
	for _, l := range o.Results {
		total += l.Total
	}
	return total
}

// Text renders the outcome the way the console front end prints it:
//
//	Results for 2x3d8-5:
//	3d8-5: [4 2 7] -5 = 8
//	3d8-5: [1 1 6] -5 = 3
func (o Outcome) Text() string {
	var sb strings.Builder
	if o.Actor != "" {
		sb.WriteString(o.Actor + " rolls ")
	} else {
		sb.WriteString("Results for ")
	}
	sb.WriteString(o.Input + ":\n")
	for _, l := range o.Results {
		res := dice.RollResult{Rolls: l.Rolls, Modifier: l.Modifier, Total: l.Total}
		sb.WriteString(fmt.Sprintf("%s: %s\n", l.Notation, res))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// Write renders outcomes to w in the given format.
func Write(w io.Writer, format Format, outcomes ...Outcome) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(outcomes)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(outcomes); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		for _, o := range outcomes {
			if _, err := fmt.Fprintln(w, o.Text()); err != nil {
				return err
			}
		}
		return nil
	}
}
