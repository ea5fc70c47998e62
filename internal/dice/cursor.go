package dice

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// cursor is a view over the unparsed remainder of the input.
// It is a plain value: copying it takes a snapshot, assigning the copy back restores it.
type cursor struct {
	src string
	pos int
}

func newCursor(s string) cursor {
	return cursor{src: s}
}

// rest returns the unconsumed input.
func (c *cursor) rest() string {
	return c.src[c.pos:]
}

func (c *cursor) skipSpace() {
	for c.pos < len(c.src) {
		r, size := utf8.DecodeRuneInString(c.src[c.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		c.pos += size
	}
}

// exhausted reports whether only whitespace remains.
func (c *cursor) exhausted() bool {
	c.skipSpace()
	return c.pos == len(c.src)
}

// readUint consumes a run of decimal digits. Nothing is consumed when no digit
// is present or when the value does not fit a signed 32-bit integer.
func (c *cursor) readUint() (int, bool) {
	c.skipSpace()
	end := c.pos
	for end < len(c.src) && c.src[end] >= '0' && c.src[end] <= '9' {
		end++
	}
	if end == c.pos {
		return 0, false
	}
	n, err := strconv.ParseInt(c.src[c.pos:end], 10, 32)
	if err != nil {
		return 0, false
	}
	c.pos = end
	return int(n), true
}

// readInt consumes an optionally signed integer. A sign with no digits after
// it is not consumed.
func (c *cursor) readInt() (int, bool) {
	c.skipSpace()
	saved := *c
	if c.consume("+") {
		if n, ok := c.readUint(); ok {
			return n, true
		}
		*c = saved
		return 0, false
	}
	if c.consume("-") {
		if n, ok := c.readUint(); ok {
			return -n, true
		}
		*c = saved
		return 0, false
	}
	return c.readUint()
}

// consume eats tok if the remaining input starts with it.
func (c *cursor) consume(tok string) bool {
	c.skipSpace()
	if !strings.HasPrefix(c.rest(), tok) {
		return false
	}
	c.pos += len(tok)
	return true
}
