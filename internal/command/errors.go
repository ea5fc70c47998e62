package command

import (
	"fmt"
	"strings"
)

// Usage lists the syntax of every command.
var Usage = map[string]string{
	"roll":     "roll [by: Name] <dice>      e.g. roll 4x3d8-5 ; d20+2",
	"describe": "describe <dice>             e.g. describe 12d10+5 & 4d6+2",
	"seed":     "seed <number>               make the following rolls reproducible",
	"history":  "history                     list the notations rolled so far",
	"help":     "help [command]",
}

// MapError takes a raw input and a participle error, and returns a human-friendly guidance message.
func MapError(input string, err error) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("I wasn't able to understand your command")
	}

	cmd := strings.ToLower(strings.Fields(input)[0])
	if usage, ok := Usage[cmd]; ok {
		return fmt.Errorf("The command %s must be: %s", cmd, usage)
	}
	return fmt.Errorf("I wasn't able to understand your command: %v", err)
}
