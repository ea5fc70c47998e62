package cmd

import (
	"github.com/trongkhoidev/JDice-Team3/internal/render"

	"github.com/spf13/cobra"
)

var rollCmd = &cobra.Command{
	Use:   "roll <dice>...",
	Short: "Roll dice notation and print every die",
	Long: `Parses the notation and rolls each term.
Usage:
	jdice roll 4x3d8-5
	jdice roll "12d10+5 & 4d6+2 ; d20" --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat()
		if err != nil {
			return err
		}

		notation, specs, err := parseNotation(cmd, args)
		if err != nil {
			return err
		}

		times, _ := cmd.Flags().GetInt("times")
		if times < 1 {
			times = 1
		}

		src, _ := newSource()
		outcomes := make([]render.Outcome, 0, times)
		for i := 0; i < times; i++ {
			outcomes = append(outcomes, render.NewOutcome("", notation, specs, src))
		}
		return render.Write(cmd.OutOrStdout(), format, outcomes...)
	},
}

func init() {
	rootCmd.AddCommand(rollCmd)
	rollCmd.Flags().IntP("times", "n", 1, "Roll the whole notation this many times")
}
