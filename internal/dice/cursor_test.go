package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorReadUint(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		ok     bool
		remain string
	}{
		{"digits", "42d6", 42, true, "d6"},
		{"leading space", "  7 x", 7, true, " x"},
		{"no digits", "d6", 0, false, "d6"},
		{"sign is not a digit", "+5", 0, false, "+5"},
		{"max int32", "2147483647", 2147483647, true, ""},
		{"overflow consumes nothing", "2147483648d6", 0, false, "2147483648d6"},
		{"empty", "", 0, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor(tt.input)
			got, ok := c.readUint()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			c.skipSpace()
			assert.Equal(t, trimLeft(tt.remain), c.rest())
		})
	}
}

func TestCursorReadInt(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		ok     bool
		remain string
	}{
		{"plus", "+5", 5, true, ""},
		{"minus", "-15 ;", -15, true, " ;"},
		{"spaced sign", " - 3", -3, true, ""},
		{"unsigned falls through", "17", 17, true, ""},
		{"dangling plus is restored", "+ xyzzy", 0, false, "+ xyzzy"},
		{"dangling minus is restored", "-d", 0, false, "-d"},
		{"nothing", "& 2d4", 0, false, "& 2d4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor(tt.input)
			got, ok := c.readInt()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			c.skipSpace()
			assert.Equal(t, trimLeft(tt.remain), c.rest())
		})
	}
}

func TestCursorConsume(t *testing.T) {
	c := newCursor("  x3d8")
	assert.False(t, c.consume("d"))
	assert.Equal(t, 2, c.pos, "whitespace is skipped even when the token does not match")
	assert.True(t, c.consume("x"))
	assert.Equal(t, "3d8", c.rest())
}

func TestCursorSnapshotRestore(t *testing.T) {
	c := newCursor("12 d4")
	saved := c
	n, ok := c.readUint()
	assert.True(t, ok)
	assert.Equal(t, 12, n)
	assert.False(t, c.consume("x"))

	c = saved
	assert.Equal(t, "12 d4", c.rest())
	assert.Equal(t, "12 d4", saved.rest(), "the snapshot is not affected by later consumption")
}

func TestCursorExhausted(t *testing.T) {
	c := newCursor(" \t\n")
	assert.True(t, c.exhausted())
	assert.True(t, c.exhausted(), "exhausted is idempotent")

	c = newCursor(" ;")
	assert.False(t, c.exhausted())
	assert.Equal(t, ";", c.rest())
}

func trimLeft(s string) string {
	c := newCursor(s)
	c.skipSpace()
	return c.rest()
}
