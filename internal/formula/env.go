package formula

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/ext"
	"github.com/trongkhoidev/JDice-Team3/internal/dice"
)

// ErrFormula wraps every compile or evaluation failure.
var ErrFormula = errors.New("formula error")

// Registry wraps a CEL environment with dice functions bound to a Source.
type Registry struct {
	env    *cel.Env
	parser *dice.Parser
	src    dice.Source
}

// NewRegistry creates a CEL environment exposing:
//
//	roll(string) int        sum of the totals of every term, e.g. roll('2x1d6+1')
//	dice(string) list(int)  one total per term, e.g. dice('4x3d6')
//	mod(int) int            ability modifier, (score - 10) / 2 rounded down
func NewRegistry(src dice.Source, parser *dice.Parser) (*Registry, error) {
	if src == nil {
		src = dice.CryptoSource{}
	}
	if parser == nil {
		parser = dice.NewParser()
	}
	r := &Registry{parser: parser, src: src}

	env, err := cel.NewEnv(
		ext.Strings(),
		ext.Lists(),

		cel.Function("roll",
			cel.Overload("roll_string",
				[]*cel.Type{cel.StringType},
				cel.IntType,
				cel.UnaryBinding(func(val ref.Val) ref.Val {
					totals, err := r.totals(val)
					if err != nil {
						return types.NewErr("roll: %v", err)
					}
					sum := 0
					for _, t := range totals {
						sum += t
					}
					return types.Int(sum)
				}),
			),
		),
		cel.Function("dice",
			cel.Overload("dice_string",
				[]*cel.Type{cel.StringType},
				cel.ListType(cel.IntType),
				cel.UnaryBinding(func(val ref.Val) ref.Val {
					totals, err := r.totals(val)
					if err != nil {
						return types.NewErr("dice: %v", err)
					}
					out := make([]ref.Val, len(totals))
					for i, t := range totals {
						out[i] = types.Int(t)
					}
					return types.DefaultTypeAdapter.NativeToValue(out)
				}),
			),
		),
		cel.Function("mod",
			cel.Overload("mod_int",
				[]*cel.Type{cel.IntType},
				cel.IntType,
				cel.UnaryBinding(func(val ref.Val) ref.Val {
					score := val.Value().(int64)
					return types.Int(floorDiv(score-10, 2))
				}),
			),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	r.env = env
	return r, nil
}

func (r *Registry) totals(val ref.Val) ([]int, error) {
	notation, ok := val.Value().(string)
	if !ok {
		return nil, fmt.Errorf("expected a string, got %v", val.Type())
	}
	specs, err := r.parser.Parse(notation)
	if err != nil {
		return nil, err
	}
	totals := make([]int, len(specs))
	for i, spec := range specs {
		totals[i] = spec.Roll(r.src).Total
	}
	return totals, nil
}

// Eval compiles and evaluates a CEL expression. Every key of vars is declared
// as a dynamically typed variable.
func (r *Registry) Eval(expression string, vars map[string]any) (any, error) {
	env := r.env
	if len(vars) > 0 {
		opts := make([]cel.EnvOption, 0, len(vars))
		for key := range vars {
			opts = append(opts, cel.Variable(key, cel.DynType))
		}
		extended, err := env.Extend(opts...)
		if err != nil {
			return nil, fmt.Errorf("%w: extend environment: %v", ErrFormula, err)
		}
		env = extended
	}

	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("%w: compile: %v", ErrFormula, issues.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("%w: program: %v", ErrFormula, err)
	}

	if vars == nil {
		vars = map[string]any{}
	}
	out, _, err := prg.Eval(vars)
	if err != nil {
		return nil, fmt.Errorf("%w: eval: %v", ErrFormula, err)
	}
	return convertRefVal(out), nil
}

// convertRefVal converts a CEL value to plain Go values, recursing into lists and maps.
func convertRefVal(val ref.Val) any {
	native := val.Value()
	switch v := native.(type) {
	case map[ref.Val]ref.Val:
		result := make(map[string]any, len(v))
		for mk, mv := range v {
			result[fmt.Sprintf("%v", mk.Value())] = convertRefVal(mv)
		}
		return result
	case []ref.Val:
		result := make([]any, len(v))
		for i, rv := range v {
			result[i] = convertRefVal(rv)
		}
		return result
	default:
		return native
	}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
