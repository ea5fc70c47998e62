package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// CommandResult holds the output of a command execution.
type CommandResult struct {
	Messages []string
}

// Executor defines the interface for running command lines.
type Executor interface {
	Execute(input string) (*CommandResult, error)
}

// Bot answers dice commands sent to a Telegram chat.
type Bot struct {
	client       *Client
	executor     Executor
	chatID       int64 // 0 answers every chat
	lastUpdateID int

	// PollTimeout is the long-poll timeout in seconds.
	PollTimeout int
	// RetryDelay is how long to wait after a failed poll.
	RetryDelay time.Duration
	// OnOffset, when set, is called each time the last seen update ID advances.
	OnOffset func(lastUpdateID int)
}

// NewBot initializes a bot that resumes after lastUpdateID.
func NewBot(client *Client, chatID int64, lastUpdateID int, exec Executor) *Bot {
	return &Bot{
		client:       client,
		executor:     exec,
		chatID:       chatID,
		lastUpdateID: lastUpdateID,
		PollTimeout:  25,
		RetryDelay:   5 * time.Second,
	}
}

// LastUpdateID returns the highest update ID handled so far.
func (b *Bot) LastUpdateID() int {
	return b.lastUpdateID
}

// Start runs the long-polling loop until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	slog.Info("telegram bot started", "chat", b.chatID)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := b.Poll(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			slog.Warn("telegram: fetch updates", "error", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(b.RetryDelay):
			}
		}
	}
}

// Poll fetches one batch of updates and handles them.
func (b *Bot) Poll(ctx context.Context) error {
	updates, err := b.client.GetUpdates(ctx, b.lastUpdateID+1, b.PollTimeout)
	if err != nil {
		return err
	}

	for _, update := range updates {
		if update.UpdateID > b.lastUpdateID {
			b.lastUpdateID = update.UpdateID
			if b.OnOffset != nil {
				b.OnOffset(b.lastUpdateID)
			}
		}

		if update.Message != nil {
			b.handleMessage(ctx, update.Message)
		}
	}
	return nil
}

func (b *Bot) handleMessage(ctx context.Context, msg *Message) {
	if b.chatID != 0 && msg.Chat.ID != b.chatID {
		return
	}

	input, ok := Translate(msg)
	if !ok {
		return
	}

	result, err := b.executor.Execute(input)
	if err != nil {
		b.sendText(ctx, msg.Chat.ID, fmt.Sprintf("Error: %v", err))
		return
	}

	for _, text := range result.Messages {
		if text != "" {
			b.send(ctx, msg.Chat.ID, "```\n"+text+"\n```")
		}
	}
}

func (b *Bot) send(ctx context.Context, chatID int64, text string) {
	if err := b.client.SendMessage(ctx, chatID, text); err != nil {
		slog.Warn("telegram: send message", "chat", chatID, "error", err)
	}
}

// sendText is used for errors, which echo user input and must not be parsed as Markdown.
func (b *Bot) sendText(ctx context.Context, chatID int64, text string) {
	if err := b.client.SendText(ctx, chatID, text); err != nil {
		slog.Warn("telegram: send message", "chat", chatID, "error", err)
	}
}

// Translate turns a slash command into a command line.
//
//	"/roll 2d6"        -> "roll by: Elara 2d6"
//	"/r@dice_bot d20"  -> "roll by: Elara d20"
//	"/describe 4x3d8"  -> "describe 4x3d8"
//
// Messages that are not commands, or are commands the bot does not serve, are skipped.
func Translate(msg *Message) (string, bool) {
	if !strings.HasPrefix(msg.Text, "/") {
		return "", false
	}
	parts := strings.Fields(strings.TrimPrefix(msg.Text, "/"))
	if len(parts) == 0 {
		return "", false
	}

	name := strings.ToLower(parts[0])
	if i := strings.Index(name, "@"); i >= 0 {
		name = name[:i]
	}
	args := strings.Join(parts[1:], " ")

	switch name {
	case "roll", "r":
		if args == "" {
			return "roll", true
		}
		return "roll by: " + actorName(msg.From) + " " + args, true
	case "describe", "help", "history":
		return strings.TrimSpace(name + " " + args), true
	}
	return "", false
}

// actorName picks a single-word display name for the sender.
func actorName(u User) string {
	for _, candidate := range []string{u.FirstName, u.Username} {
		if fields := strings.Fields(strings.ReplaceAll(candidate, ":", "")); len(fields) > 0 {
			return fields[0]
		}
	}
	return fmt.Sprintf("user%d", u.ID)
}
