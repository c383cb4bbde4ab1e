package lexer

import "strings"

// EndMarker is returned by Peek and Advance past the end of input. NUL is
// not a valid source character; inputs containing it are rejected by the
// scanner as UnexpectedCharacter.
const EndMarker byte = 0

// Cursor owns the source buffer and the current scan position. Only a line
// feed terminates a line; a carriage return is treated as plain whitespace
// by the classifier, so CRLF sources lex like LF sources.
type Cursor struct {
	source string
	offset int
	line   int
	column int
}

func NewCursor(source string) *Cursor {
	return &Cursor{
		source: source,
		line:   1,
		column: 1,
	}
}

// Peek returns the character ahead characters past the current position
// without consuming anything.
func (c *Cursor) Peek(ahead int) byte {
	if c.offset+ahead >= len(c.source) {
		return EndMarker
	}
	return c.source[c.offset+ahead]
}

// Advance consumes and returns the current character. Advancing past the
// end of input keeps returning EndMarker without moving.
func (c *Cursor) Advance() byte {
	if c.offset >= len(c.source) {
		return EndMarker
	}
	ch := c.source[c.offset]
	c.offset++
	if ch == '\n' {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	return ch
}

func (c *Cursor) Pos() Position {
	return Position{Line: c.line, Column: c.column, Offset: c.offset}
}

func (c *Cursor) AtEnd() bool {
	return c.offset >= len(c.source)
}

// HasPrefix reports whether the unconsumed input starts with s.
func (c *Cursor) HasPrefix(s string) bool {
	return strings.HasPrefix(c.source[c.offset:], s)
}

// Slice returns the source text between two byte offsets.
func (c *Cursor) Slice(from, to int) string {
	return c.source[from:to]
}
