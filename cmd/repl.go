/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trongkhoidev/JDice-Team3/internal/session"

	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive dice shell",
	Long: `Starts the read-eval-print loop for rolling dice.
Usage:
	> 4d6+3 ; d20
	> roll by: Somebody 2x d8 & d6
	> describe 12d10+5 & 4d6+2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := newSession()

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		if withBot, _ := cmd.Flags().GetBool("bot"); withBot {
			if err := maybeStartBot(ctx, app); err != nil {
				return err
			}
		}

		if err := RunTUI(app); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	},
}

// newSession builds a session from the configured source and parser limits.
func newSession() *session.Session {
	src, label := newSource()
	return session.New(session.Config{
		Source:      src,
		Parser:      newParser(),
		Logger:      slog.Default(),
		SourceLabel: label,
	})
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().Bool("bot", false, "Also answer the configured Telegram chat while the shell runs")
}
