package lexer

import (
	"os"
	"testing"
)

func TestSimpleIndentDedent(t *testing.T) {
	input := "hello\n  cowsay\n"
	tokens, errs := LexSource(input, DefaultConfig())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	expected := []TokenType{
		IDENTIFIER, NEWLINE,
		INDENT, IDENTIFIER, NEWLINE,
		DEDENT, EOF,
	}
	assertTypes(t, tokens, expected)
}

func TestNestedIndentation(t *testing.T) {
	input := "a\n  b\n    c\n  d\ne\n"
	tokens, errs := LexSource(input, DefaultConfig())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	expected := []TokenType{
		IDENTIFIER, NEWLINE,
		INDENT, IDENTIFIER, NEWLINE,
		INDENT, IDENTIFIER, NEWLINE,
		DEDENT, IDENTIFIER, NEWLINE,
		DEDENT, IDENTIFIER, NEWLINE,
		EOF,
	}
	assertTypes(t, tokens, expected)
}

func TestDedentsClosedAtEOF(t *testing.T) {
	// no trailing newline: the scanner still closes every open level
	input := "a\n  b\n    c"
	tokens, errs := LexSource(input, DefaultConfig())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	expected := []TokenType{
		IDENTIFIER, NEWLINE,
		INDENT, IDENTIFIER, NEWLINE,
		INDENT, IDENTIFIER, NEWLINE,
		DEDENT, DEDENT, EOF,
	}
	assertTypes(t, tokens, expected)
}

func TestInitialIndentIsAnError(t *testing.T) {
	tokens, errs := LexSource("  hello\n", DefaultConfig())

	if len(errs) != 1 || errs[0].Kind != InconsistentIndentation {
		t.Fatalf("expected InconsistentIndentation, got %v", errs)
	}
	assertTypes(t, tokens, []TokenType{ERROR, IDENTIFIER, NEWLINE, EOF})
}

func TestDedentMismatch(t *testing.T) {
	input := "hello\n  cowsay\n end\n"
	tokens, errs := LexSource(input, DefaultConfig())

	if len(errs) != 1 || errs[0].Kind != InconsistentIndentation {
		t.Fatalf("expected InconsistentIndentation, got %v", errs)
	}
	if errs[0].Span.Start.Line != 3 {
		t.Errorf("expected the error on line 3, got %d", errs[0].Span.Start.Line)
	}

	expected := []TokenType{
		IDENTIFIER, NEWLINE,
		INDENT, IDENTIFIER, NEWLINE,
		DEDENT, ERROR, IDENTIFIER, NEWLINE,
		EOF,
	}
	assertTypes(t, tokens, expected)
}

func TestMixedTabsAndSpaces(t *testing.T) {
	input := "a\n \tb\n"
	_, errs := LexSource(input, DefaultConfig())

	if len(errs) != 1 || errs[0].Kind != InconsistentIndentation {
		t.Fatalf("expected InconsistentIndentation for mixed tabs and spaces, got %v", errs)
	}
}

func TestBlankAndCommentLinesAreNeutral(t *testing.T) {
	input := "hello\n\n; note\n  sub\n"
	tokens, errs := LexSource(input, DefaultConfig())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	// the empty line emits nothing; the comment line emits its COMMENT but
	// neither contributes to block structure
	expected := []TokenType{
		IDENTIFIER, NEWLINE,
		COMMENT,
		INDENT, IDENTIFIER, NEWLINE,
		DEDENT, EOF,
	}
	assertTypes(t, tokens, expected)
}

func TestNoNewlineOnBlankLines(t *testing.T) {
	tokens, errs := LexSource("\n\na\n\n", DefaultConfig())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	assertTypes(t, tokens, []TokenType{IDENTIFIER, NEWLINE, EOF})
}

func TestNewlineInsignificantStillTracksIndentation(t *testing.T) {
	config := DefaultConfig()
	config.NewlineSignificant = false

	tokens, errs := LexSource("a\n  b\n", config)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	assertTypes(t, tokens, []TokenType{IDENTIFIER, INDENT, IDENTIFIER, DEDENT, EOF})
}

func TestFibExample(t *testing.T) {
	source, err := os.ReadFile("../../examples/fib.koi")
	if err != nil {
		t.Fatalf("failed to read fib.koi: %v", err)
	}

	tokens, errs := LexSource(string(source), DefaultConfig())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	expected := []TokenType{
		COMMENT,
		FN, IDENTIFIER, LEFT_PAREN, IDENTIFIER, RIGHT_PAREN, COLON, NEWLINE,
		INDENT, IF, IDENTIFIER, LESS, INTEGER, COLON, NEWLINE,
		INDENT, RETURN, IDENTIFIER, NEWLINE,
		DEDENT, RETURN, IDENTIFIER, LEFT_PAREN, IDENTIFIER, MINUS, INTEGER, RIGHT_PAREN,
		PLUS, IDENTIFIER, LEFT_PAREN, IDENTIFIER, MINUS, INTEGER, RIGHT_PAREN, NEWLINE,
		DEDENT, LET, IDENTIFIER, EQUAL, IDENTIFIER, LEFT_PAREN, INTEGER, RIGHT_PAREN, NEWLINE,
		EOF,
	}
	assertTypes(t, tokens, expected)
}
