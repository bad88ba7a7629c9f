package semver

import (
	"errors"
	"unicode/utf8"
)

var errInvalidEncoding = errors.New("invalid UTF-8 encoding")

// cursor is a positioned, forward-only view over the input bytes. Lookahead is limited to one byte via peek1 and there is no rewind, so callers must peek
// before taking whenever a byte may belong to the next production.
type cursor struct {
	input string
	pos   int // byte offset of the next unread byte
}

func newCursor(input string) *cursor {
	return &cursor{input: input}
}

// atEOF reports whether all input has been consumed. It never consumes.
func (c *cursor) atEOF() bool {
	return c.pos >= len(c.input)
}

// take1 consumes and returns the next byte. ok is false at end of input.
func (c *cursor) take1() (b byte, ok bool) {
	if c.atEOF() {
		return 0, false
	}
	b = c.input[c.pos]
	c.pos++
	return b, true
}

// peek1 returns the next byte without consuming it. ok is false at end of input.
func (c *cursor) peek1() (b byte, ok bool) {
	if c.atEOF() {
		return 0, false
	}
	return c.input[c.pos], true
}

// takeWhile consumes the maximal (possibly empty) run of bytes satisfying pred and returns it as text. The first byte failing pred is left unconsumed. The
// consumed run must decode as UTF-8; anything else is a KindIO error.
func (c *cursor) takeWhile(pred func(byte) bool) (string, error) {
	start := c.pos
	for c.pos < len(c.input) && pred(c.input[c.pos]) {
		c.pos++
	}
	run := c.input[start:c.pos]
	if !utf8.ValidString(run) {
		return "", &ParseError{Kind: KindIO, Offset: start, Err: errInvalidEncoding}
	}
	return run, nil
}
