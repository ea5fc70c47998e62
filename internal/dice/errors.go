package dice

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax marks malformed or incomplete dice notation.
	ErrSyntax = errors.New("invalid dice notation")
	// ErrLimit marks notation that parses but exceeds a configured parser limit.
	ErrLimit = errors.New("dice limit exceeded")
)

// SyntaxError reports where parsing of Input stopped.
type SyntaxError struct {
	Input  string
	Offset int
}

func (e *SyntaxError) Error() string {
	if e.Offset >= len(e.Input) {
		return fmt.Sprintf("%v: %q: unexpected end of input", ErrSyntax, e.Input)
	}
	return fmt.Sprintf("%v: %q at offset %d near %q", ErrSyntax, e.Input, e.Offset, e.Input[e.Offset:])
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// LimitError reports a value above the parser's configured maximum.
type LimitError struct {
	What  string
	Value int
	Max   int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%v: %s %d is above the maximum of %d", ErrLimit, e.What, e.Value, e.Max)
}

func (e *LimitError) Unwrap() error { return ErrLimit }
