/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/trongkhoidev/JDice-Team3/internal/dice"
	"github.com/trongkhoidev/JDice-Team3/internal/render"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jdice",
	Short: "Roll tabletop dice notation",
	Long: `jdice parses dice notation such as "4d6+3 ; 8d12-15 ; 9d10 & 3d6 & 4d12+17"
and rolls it.

  NdS+M      roll N dice of S sides and add M (N defaults to 1)
  a & b      add the totals of two rolls
  KxDICE     roll DICE K times
  a ; b      roll several terms in one go`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(viper.GetBool("verbose"))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.jdice.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().Int64("seed", 0, "Seed for reproducible rolls (0 uses crypto/rand)")
	rootCmd.PersistentFlags().StringP("format", "f", string(render.FormatText), "Output format: text, json or yaml")
	rootCmd.PersistentFlags().Int("max_repeat", 100, "Largest N accepted in NxDICE (0 for no limit)")
	rootCmd.PersistentFlags().Int("max_dice", 1000, "Largest dice count accepted in a single roll (0 for no limit)")

	cobra.CheckErr(viper.BindPFlags(rootCmd.PersistentFlags()))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".jdice")
	}

	viper.SetEnvPrefix("jdice")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "file", viper.ConfigFileUsed())
	}
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// newParser builds a dice parser with the configured limits.
func newParser() *dice.Parser {
	return dice.NewParser(
		dice.WithMaxRepeat(viper.GetInt("max_repeat")),
		dice.WithMaxDice(viper.GetInt("max_dice")),
	)
}

// newSource returns a seeded source when a seed is configured and crypto/rand otherwise,
// along with a label for display.
func newSource() (dice.Source, string) {
	if seed := viper.GetInt64("seed"); seed != 0 {
		return dice.NewSeededSource(seed), fmt.Sprintf("seed %d", seed)
	}
	return dice.CryptoSource{}, "crypto"
}

func outputFormat() (render.Format, error) {
	return render.ParseFormat(viper.GetString("format"))
}

// explain points at the offending part of the notation for syntax errors.
//
//	4d6 + xyzzy
//	    ^
func explain(err error) string {
	var synErr *dice.SyntaxError
	if !errors.As(err, &synErr) {
		return ""
	}
	offset := min(synErr.Offset, len(synErr.Input))
	return synErr.Input + "\n" + strings.Repeat(" ", utf8.RuneCountInString(synErr.Input[:offset])) + "^"
}

// parseNotation parses args joined as one notation, printing a caret hint on syntax errors.
func parseNotation(cmd *cobra.Command, args []string) (string, []dice.RollSpec, error) {
	notation := strings.Join(args, " ")
	specs, err := newParser().Parse(notation)
	if err != nil {
		if hint := explain(err); hint != "" {
			cmd.PrintErrln(hint)
		}
		return notation, nil, err
	}
	slog.Debug("parsed notation", "notation", notation, "terms", len(specs))
	return notation, specs, nil
}
