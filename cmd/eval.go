package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/trongkhoidev/JDice-Team3/internal/formula"

	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <formula>",
	Short: "Evaluate a CEL formula with dice functions",
	Long: `Evaluates a CEL expression. Available functions:

  roll('2d6+1')   sum of the totals of every term
  dice('4x3d6')   list with one total per term
  mod(16)         ability modifier

Usage:
	jdice eval "roll('d20') + mod(str) >= dc" --var str=16 --var dc=15`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetStringToString("var")
		vars := make(map[string]any, len(raw))
		for k, v := range raw {
			vars[k] = typedValue(v)
		}

		src, _ := newSource()
		registry, err := formula.NewRegistry(src, newParser())
		if err != nil {
			return err
		}

		out, err := registry.Eval(strings.Join(args, " "), vars)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

// typedValue turns a --var value into an int, bool or string.
func typedValue(v string) any {
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return v
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringToString("var", nil, "Variable available to the formula, as name=value (repeatable)")
}
