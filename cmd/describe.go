package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <dice>...",
	Short: "Check dice notation without rolling it",
	Long:  `Parses the notation and prints the canonical form of every term, one per line.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, specs, err := parseNotation(cmd, args)
		if err != nil {
			return err
		}
		for _, spec := range specs {
			fmt.Fprintln(cmd.OutOrStdout(), spec.Describe())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
