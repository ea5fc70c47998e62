package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/trongkhoidev/JDice-Team3/internal/session"
	"github.com/trongkhoidev/JDice-Team3/internal/telegram"

	"github.com/spf13/viper"
)

// errNoToken is returned when the bot is asked to run without a configured token.
var errNoToken = errors.New("telegram token not configured, run 'jdice bot telegram' first")

// newBot builds a bot from the configured token and chat, resuming after the
// last update ID saved in the config file.
func newBot(app *session.Session) (*telegram.Bot, error) {
	token := viper.GetString("telegram_token")
	if token == "" {
		return nil, errNoToken
	}

	client := telegram.NewClient(token)
	bot := telegram.NewBot(client, viper.GetInt64("telegram_chat_id"), viper.GetInt("tg_last_update_id"), &botAdapter{app})
	bot.OnOffset = func(id int) {
		if err := saveSettings(map[string]any{"tg_last_update_id": id}); err != nil {
			slog.Debug("telegram: offset not persisted", "error", err)
		}
	}
	return bot, nil
}

// maybeStartBot starts the bot in the background when a token is configured.
func maybeStartBot(ctx context.Context, app *session.Session) error {
	bot, err := newBot(app)
	if errors.Is(err, errNoToken) {
		slog.Warn("telegram bot not started", "error", err)
		return nil
	}
	if err != nil {
		return err
	}

	go func() {
		if err := bot.Start(ctx); err != nil && ctx.Err() == nil {
			slog.Error("telegram bot stopped", "error", err)
		}
	}()
	fmt.Printf("[Telegram Bot] Active for chat %d\n", viper.GetInt64("telegram_chat_id"))
	return nil
}

// botAdapter bridges session.Session to the telegram.Executor interface.
type botAdapter struct {
	session *session.Session
}

func (a *botAdapter) Execute(input string) (*telegram.CommandResult, error) {
	reply, err := a.session.Execute(input)
	if err != nil {
		return nil, err
	}
	result := &telegram.CommandResult{}
	for _, msg := range reply.Messages {
		if msg != "" {
			result.Messages = append(result.Messages, msg)
		}
	}
	return result, nil
}
