package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var botToken string

// botCmd represents the bot command
var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Manage and run the Telegram dice bot",
}

// telegramBotCmd represents the telegram subcommand of bot
var telegramBotCmd = &cobra.Command{
	Use:   "telegram",
	Short: "Register a global Telegram bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		if botToken == "" {
			fmt.Println("---")
			fmt.Println("Create your Telegram Bot & Get Token")
			fmt.Println("Open Telegram and search for the official @BotFather.")
			fmt.Println("Send the /newbot command and follow the prompts to name your bot and choose a unique username.")
			fmt.Println("BotFather will provide you with an HTTP API token. Store this token securely, as it is required for all API interactions.")
			fmt.Println("For testing in a group, add the bot to a group and ensure its privacy settings allow it to read all messages (this can be configured in BotFather's settings).")
			fmt.Println("---")
			fmt.Print("token: ")

			scanner := bufio.NewScanner(os.Stdin)
			if scanner.Scan() {
				botToken = strings.TrimSpace(scanner.Text())
			}
		}

		if botToken == "" {
			return fmt.Errorf("no token given")
		}

		if err := saveSettings(map[string]any{"telegram_token": botToken}); err != nil {
			return fmt.Errorf("saving configuration: %w", err)
		}
		fmt.Println("Telegram bot token saved successfully.")
		return nil
	},
}

var runBotCmd = &cobra.Command{
	Use:   "run",
	Short: "Answer /roll commands in Telegram until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		bot, err := newBot(newSession())
		if err != nil {
			return err
		}
		fmt.Printf("[Telegram Bot] Listening (chat %d). Press Ctrl+C to stop.\n", viper.GetInt64("telegram_chat_id"))
		if err := bot.Start(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	},
}

// configPath is the config file in use, or $HOME/.jdice.yaml when none was found.
func configPath() (string, error) {
	if path := viper.ConfigFileUsed(); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".jdice.yaml"), nil
}

// saveSettings stores values in the config file and in the running config.
func saveSettings(values map[string]any) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	for k, v := range values {
		viper.Set(k, v)
	}
	return writeSettings(path, values)
}

// writeSettings rewrites the file at path with values merged into what it
// already holds. Flags and environment of the running process are not written,
// so "--seed 42 bot run" does not leave "seed: 42" behind.
func writeSettings(path string, values map[string]any) error {
	v := viper.New()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read %s: %w", path, err)
	}
	for k, val := range values {
		v.Set(k, val)
	}
	return v.WriteConfigAs(path)
}

func init() {
	rootCmd.AddCommand(botCmd)
	botCmd.AddCommand(telegramBotCmd)
	botCmd.AddCommand(runBotCmd)

	telegramBotCmd.Flags().StringVarP(&botToken, "token", "t", "", "Telegram bot API token")
	runBotCmd.Flags().Int64("chat", 0, "Only answer this chat ID (0 answers every chat)")
	cobra.CheckErr(viper.BindPFlag("telegram_chat_id", runBotCmd.Flags().Lookup("chat")))
}
