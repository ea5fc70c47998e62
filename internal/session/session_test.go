package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trongkhoidev/JDice-Team3/internal/dice"
)

func TestExecuteRoll(t *testing.T) {
	s := New(Config{Source: dice.NewSequenceSource(4, 2, 7)})

	reply, err := s.Execute("roll by: Elara 3d8-5")
	require.NoError(t, err)
	require.NotNil(t, reply.Outcome)
	assert.Equal(t, "Elara", reply.Outcome.Actor)
	assert.Equal(t, 8, reply.Outcome.GrandTotal())
	assert.Equal(t, []string{"Elara rolls 3d8-5:\n3d8-5: [4 2 7] -5 = 8"}, reply.Messages)
}

func TestExecuteImplicitRoll(t *testing.T) {
	s := New(Config{Source: dice.NewSequenceSource(6, 6)})

	reply, err := s.Execute("2xd6")
	require.NoError(t, err)
	require.NotNil(t, reply.Outcome)
	assert.Len(t, reply.Outcome.Results, 2)
	assert.Equal(t, 12, reply.Outcome.GrandTotal())
}

func TestExecuteSyntaxError(t *testing.T) {
	s := New(Config{})

	_, err := s.Execute("roll 4d4d4")
	require.Error(t, err)
	assert.ErrorIs(t, err, dice.ErrSyntax)
	assert.Empty(t, s.History(), "failed rolls are not remembered")
}

func TestExecuteLimit(t *testing.T) {
	s := New(Config{Parser: dice.NewParser(dice.WithMaxDice(10))})

	_, err := s.Execute("11d6")
	assert.ErrorIs(t, err, dice.ErrLimit)
}

func TestExecuteDescribe(t *testing.T) {
	s := New(Config{})

	reply, err := s.Execute("describe 2X d6 + 0 ; 12d10+5&4d6+2")
	require.NoError(t, err)
	assert.Equal(t, []string{"1d6", "1d6", "12d10+5 & 4d6+2"}, reply.Messages)
	assert.Nil(t, reply.Outcome)
}

func TestExecuteSeedIsReproducible(t *testing.T) {
	s := New(Config{})

	_, err := s.Execute("seed 42")
	require.NoError(t, err)
	first, err := s.Execute("10d20")
	require.NoError(t, err)

	_, err = s.Execute("seed 42")
	require.NoError(t, err)
	second, err := s.Execute("10d20")
	require.NoError(t, err)

	assert.Equal(t, first.Outcome.Results, second.Outcome.Results)
	assert.Equal(t, "seed 42", s.SourceLabel())
}

func TestSourceLabel(t *testing.T) {
	assert.Equal(t, "crypto", New(Config{}).SourceLabel())
	assert.Equal(t, "custom", New(Config{Source: dice.NewSeededSource(1)}).SourceLabel())
	assert.Equal(t, "seed 1", New(Config{Source: dice.NewSeededSource(1), SourceLabel: "seed 1"}).SourceLabel())
}

func TestExecuteHistory(t *testing.T) {
	s := New(Config{HistorySize: 2, Source: dice.NewSeededSource(1)})

	reply, err := s.Execute("history")
	require.NoError(t, err)
	assert.Equal(t, []string{"Nothing rolled yet."}, reply.Messages)

	for _, n := range []string{"d4", "d6", "d8"} {
		_, err := s.Execute(n)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"d6", "d8"}, s.History())

	reply, err = s.Execute("history")
	require.NoError(t, err)
	assert.Equal(t, []string{"1. d6\n2. d8"}, reply.Messages)
}

func TestExecuteHelp(t *testing.T) {
	s := New(Config{})

	reply, err := s.Execute("help")
	require.NoError(t, err)
	require.Len(t, reply.Messages, 1)
	assert.Contains(t, reply.Messages[0], "roll [by: Name] <dice>")
	assert.Contains(t, reply.Messages[0], "seed <number>")

	reply, err = s.Execute("help describe")
	require.NoError(t, err)
	assert.Contains(t, reply.Messages[0], "describe <dice>")

	_, err = s.Execute("help attack")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestExecuteBlank(t *testing.T) {
	s := New(Config{})
	reply, err := s.Execute("   ")
	require.NoError(t, err)
	assert.Empty(t, reply.Messages)
}

func TestExecuteConcurrent(t *testing.T) {
	s := New(Config{Source: dice.NewSeededSource(5), HistorySize: 1000})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Execute(fmt.Sprintf("roll by: p%d 2d6", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	assert.Len(t, s.History(), 50)
}

