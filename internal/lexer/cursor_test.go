package lexer

import (
	"testing"
)

func TestCursorAdvanceTracksPosition(t *testing.T) {
	c := NewCursor("ab\ncd")

	if got := c.Pos(); got.Line != 1 || got.Column != 1 || got.Offset != 0 {
		t.Fatalf("unexpected start position: %+v", got)
	}

	if ch := c.Advance(); ch != 'a' {
		t.Errorf("expected 'a', got %q", ch)
	}
	if ch := c.Advance(); ch != 'b' {
		t.Errorf("expected 'b', got %q", ch)
	}
	if got := c.Pos(); got.Line != 1 || got.Column != 3 || got.Offset != 2 {
		t.Errorf("unexpected position before newline: %+v", got)
	}

	if ch := c.Advance(); ch != '\n' {
		t.Errorf("expected newline, got %q", ch)
	}
	if got := c.Pos(); got.Line != 2 || got.Column != 1 || got.Offset != 3 {
		t.Errorf("newline should reset column and bump line: %+v", got)
	}
}

func TestCursorPeekDoesNotConsume(t *testing.T) {
	c := NewCursor("xyz")

	if ch := c.Peek(0); ch != 'x' {
		t.Errorf("expected 'x', got %q", ch)
	}
	if ch := c.Peek(2); ch != 'z' {
		t.Errorf("expected 'z', got %q", ch)
	}
	if ch := c.Peek(3); ch != EndMarker {
		t.Errorf("expected EndMarker past the end, got %q", ch)
	}
	if got := c.Pos(); got.Offset != 0 {
		t.Errorf("peek must not move the cursor, offset is %d", got.Offset)
	}
}

func TestCursorAdvancePastEnd(t *testing.T) {
	c := NewCursor("a")
	c.Advance()

	if !c.AtEnd() {
		t.Fatal("cursor should be at end")
	}
	for i := 0; i < 3; i++ {
		if ch := c.Advance(); ch != EndMarker {
			t.Errorf("advance past end should return EndMarker, got %q", ch)
		}
	}
	if got := c.Pos(); got.Offset != 1 {
		t.Errorf("advance past end must not move the cursor, offset is %d", got.Offset)
	}
}

func TestCursorCarriageReturnIsNotALineBreak(t *testing.T) {
	c := NewCursor("a\r\nb")
	c.Advance() // a
	c.Advance() // \r

	if got := c.Pos(); got.Line != 1 {
		t.Errorf("carriage return alone must not bump the line, got line %d", got.Line)
	}

	c.Advance() // \n
	if got := c.Pos(); got.Line != 2 || got.Column != 1 {
		t.Errorf("expected line 2 column 1 after LF, got %+v", got)
	}
}

func TestCursorHasPrefix(t *testing.T) {
	c := NewCursor("(; comment")
	if !c.HasPrefix("(;") {
		t.Error("expected prefix match at start")
	}
	c.Advance()
	if c.HasPrefix("(;") {
		t.Error("prefix must be checked at the current position")
	}
	if !c.HasPrefix(";") {
		t.Error("expected prefix match after advance")
	}
}
