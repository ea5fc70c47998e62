package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/trongkhoidev/JDice-Team3/internal/dice"
	"github.com/trongkhoidev/JDice-Team3/internal/stats"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const histogramWidth = 50

var statsCmd = &cobra.Command{
	Use:   "stats <dice>...",
	Short: "Estimate the distribution of totals by rolling many times",
	Long: `Rolls every distinct term of the notation --trials times and prints the
observed range, mean and standard deviation next to the exact values, followed
by a histogram of totals.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, specs, err := parseNotation(cmd, args)
		if err != nil {
			return err
		}

		trials := viper.GetInt("trials")
		quiet, _ := cmd.Flags().GetBool("quiet")
		src, _ := newSource()
		out := cmd.OutOrStdout()

		for i, spec := range distinct(specs) {
			if i > 0 {
				fmt.Fprintln(out)
			}

			var progress func(int)
			if !quiet {
				bar := progressbar.NewOptions64(int64(trials),
					progressbar.OptionSetWriter(cmd.ErrOrStderr()),
					progressbar.OptionSetDescription(fmt.Sprintf("Rolling %s", spec.Describe())),
					progressbar.OptionShowCount(),
					progressbar.OptionClearOnFinish(),
				)
				progress = func(done int) { bar.Add(done) }
			}

			summary, err := stats.Simulate(spec, src, trials, progress)
			if err != nil {
				return err
			}
			printSummary(out, spec, summary)
		}
		return nil
	},
}

// distinct drops repeated entries of the same spec, as produced by "NxDICE".
func distinct(specs []dice.RollSpec) []dice.RollSpec {
	var out []dice.RollSpec
	for i, spec := range specs {
		if i > 0 && specs[i-1] == spec {
			continue
		}
		out = append(out, spec)
	}
	return out
}

func printSummary(w io.Writer, spec dice.RollSpec, s stats.Summary) {
	lo, hi := stats.Bounds(spec)
	fmt.Fprintf(w, "%s over %d trials\n", s.Notation, s.Trials)
	fmt.Fprintf(w, "  range    %d..%d (observed %d..%d)\n", lo, hi, s.Min, s.Max)
	fmt.Fprintf(w, "  mean     %.3f (exact %.3f)\n", s.Mean, stats.Expected(spec))
	fmt.Fprintf(w, "  std dev  %.3f\n", s.StdDev)

	peak := 0
	for _, n := range s.Histogram {
		peak = max(peak, n)
	}
	for _, total := range s.Totals() {
		n := s.Histogram[total]
		bar := strings.Repeat("#", n*histogramWidth/peak)
		fmt.Fprintf(w, "  %6d %6.2f%% %s\n", total, 100*float64(n)/float64(s.Trials), bar)
	}
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().Int("trials", 10000, "Number of rolls per term")
	statsCmd.Flags().BoolP("quiet", "q", false, "Hide the progress bar")
	cobra.CheckErr(viper.BindPFlag("trials", statsCmd.Flags().Lookup("trials")))
}
