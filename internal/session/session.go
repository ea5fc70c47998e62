package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/trongkhoidev/JDice-Team3/internal/command"
	"github.com/trongkhoidev/JDice-Team3/internal/dice"
	"github.com/trongkhoidev/JDice-Team3/internal/render"
)

// ErrUnknownCommand is returned for help topics and commands the session does not know.
var ErrUnknownCommand = errors.New("unknown command")

// DefaultHistorySize bounds the history when Config.HistorySize is zero.
const DefaultHistorySize = 100

// Config wires a Session to its collaborators.
type Config struct {
	Source      dice.Source
	Parser      *dice.Parser
	HistorySize int
	Logger      *slog.Logger
	// SourceLabel describes Source for display, e.g. "seed 42".
	SourceLabel string
}

// Reply is what one executed command line produced.
type Reply struct {
	Messages []string
	Outcome  *render.Outcome
}

// Session executes command lines against a dice source and remembers what was rolled.
// It is safe for concurrent use, so the TUI and the bot can share one.
type Session struct {
	mu          sync.Mutex
	src         dice.Source
	parser      *dice.Parser
	history     []string
	historySize int
	logger      *slog.Logger
	label       string
}

// New builds a Session, filling in defaults for unset Config fields.
func New(cfg Config) *Session {
	s := &Session{
		src:         cfg.Source,
		parser:      cfg.Parser,
		historySize: cfg.HistorySize,
		logger:      cfg.Logger,
		label:       cfg.SourceLabel,
	}
	if s.src == nil {
		s.src = dice.CryptoSource{}
		s.label = "crypto"
	}
	if s.label == "" {
		s.label = "custom"
	}
	if s.parser == nil {
		s.parser = dice.NewParser()
	}
	if s.historySize <= 0 {
		s.historySize = DefaultHistorySize
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Execute runs one command line. Blank input is a no-op.
func (s *Session) Execute(input string) (Reply, error) {
	if strings.TrimSpace(input) == "" {
		return Reply{}, nil
	}

	cmd, err := command.Parse(input)
	if err != nil {
		s.logger.Debug("command rejected", "input", input, "error", err)
		return Reply{}, command.MapError(input, err)
	}

	switch {
	case cmd.Roll != nil:
		actor := ""
		if cmd.Roll.Actor != nil {
			actor = cmd.Roll.Actor.Name
		}
		return s.roll(actor, cmd.Roll.Text())
	case cmd.Describe != nil:
		return s.describe(cmd.Describe.Text())
	case cmd.Seed != nil:
		s.Reseed(cmd.Seed.Value)
		return Reply{Messages: []string{fmt.Sprintf("Seeded with %d.", cmd.Seed.Value)}}, nil
	case cmd.History != nil:
		return s.showHistory(), nil
	case cmd.Help != nil:
		return help(cmd.Help.Topic)
	}
	return Reply{}, ErrUnknownCommand
}

func (s *Session) roll(actor, notation string) (Reply, error) {
	specs, err := s.parser.Parse(notation)
	if err != nil {
		return Reply{}, fmt.Errorf("roll %q: %w", notation, err)
	}

	s.mu.Lock()
	outcome := render.NewOutcome(actor, notation, specs, s.src)
	s.remember(notation)
	s.mu.Unlock()

	s.logger.Debug("rolled", "actor", actor, "notation", notation, "terms", len(specs), "total", outcome.GrandTotal())
	return Reply{Messages: []string{outcome.Text()}, Outcome: &outcome}, nil
}

func (s *Session) describe(notation string) (Reply, error) {
	specs, err := s.parser.Parse(notation)
	if err != nil {
		return Reply{}, fmt.Errorf("describe %q: %w", notation, err)
	}
	msgs := make([]string, len(specs))
	for i, spec := range specs {
		msgs[i] = spec.Describe()
	}
	return Reply{Messages: msgs}, nil
}

// remember appends to the bounded history. Callers hold s.mu.
func (s *Session) remember(notation string) {
	s.history = append(s.history, notation)
	if over := len(s.history) - s.historySize; over > 0 {
		s.history = append([]string(nil), s.history[over:]...)
	}
}

func (s *Session) showHistory() Reply {
	hist := s.History()
	if len(hist) == 0 {
		return Reply{Messages: []string{"Nothing rolled yet."}}
	}
	msgs := make([]string, len(hist))
	for i, h := range hist {
		msgs[i] = fmt.Sprintf("%d. %s", i+1, h)
	}
	return Reply{Messages: []string{strings.Join(msgs, "\n")}}
}

// History returns the rolled notations, oldest first.
func (s *Session) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.history...)
}

// Reseed replaces the source with a deterministic one.
func (s *Session) Reseed(seed int64) {
	s.mu.Lock()
	s.src = dice.NewSeededSource(seed)
	s.label = fmt.Sprintf("seed %d", seed)
	s.mu.Unlock()
	s.logger.Info("session reseeded", "seed", seed)
}

// SourceLabel describes the current randomness source.
func (s *Session) SourceLabel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.label
}

func help(topic string) (Reply, error) {
	topic = strings.ToLower(topic)
	if topic == "" || topic == "all" {
		lines := make([]string, 0, len(command.Keywords))
		for _, k := range command.Keywords {
			lines = append(lines, command.Usage[k])
		}
		return Reply{Messages: []string{strings.Join(lines, "\n")}}, nil
	}
	usage, ok := command.Usage[topic]
	if !ok {
		return Reply{}, fmt.Errorf("%w: %s", ErrUnknownCommand, topic)
	}
	return Reply{Messages: []string{usage}}, nil
}
