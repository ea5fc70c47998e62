package command

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Keywords are the command names understood by the grammar.
var Keywords = []string{"roll", "describe", "seed", "history", "help"}

// Lexer splits a command line into keywords and free-form words.
// Dice notation is carried as Word tokens and handed to the dice parser as is.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `(?i)\b(?:roll|describe|seed|history|help|by)\b`},
	{Name: "Punct", Pattern: `:`},
	{Name: "Int", Pattern: `[0-9]+\b`},
	{Name: "Word", Pattern: `[^\s:]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// Build creates our parser based on the struct tags in `ast.go`
func Build() *participle.Parser[Command] {
	return participle.MustBuild[Command](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace"),
		participle.CaseInsensitive("Keyword"),
	)
}

var defaultParser = Build()

// Parse parses one command line. A line that does not start with a command
// keyword is read as a roll, so "2d6+1" means "roll 2d6+1".
func Parse(input string) (*Command, error) {
	input = strings.TrimSpace(input)
	if !startsWithKeyword(input) {
		input = "roll " + input
	}
	return defaultParser.ParseString("", input)
}

func startsWithKeyword(input string) bool {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return false
	}
	first := strings.ToLower(fields[0])
	for _, k := range Keywords {
		if first == k {
			return true
		}
	}
	return false
}
