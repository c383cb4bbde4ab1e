package lexer

import "fmt"

type ErrorKind int

const (
	UnterminatedString ErrorKind = iota
	UnterminatedComment
	InvalidEscapeSequence
	InvalidNumericLiteral
	UnexpectedCharacter
	InconsistentIndentation
)

var errorKindMessages = map[ErrorKind]string{
	UnterminatedString:      "unterminated string literal",
	UnterminatedComment:     "unterminated block comment",
	InvalidEscapeSequence:   "invalid escape sequence",
	InvalidNumericLiteral:   "invalid numeric literal",
	UnexpectedCharacter:     "unexpected character",
	InconsistentIndentation: "inconsistent indentation",
}

func (k ErrorKind) String() string {
	if msg, ok := errorKindMessages[k]; ok {
		return msg
	}
	return "unknown lexical error"
}

// LexError describes a single lexical error. Span points at the offending
// text, which for literal errors can be narrower than the token the scanner
// gave up on (an invalid escape is reported at the escape, not at the
// string's opening quote). Lexeme holds the raw text that was attempted.
type LexError struct {
	Kind   ErrorKind
	Span   Span
	Lexeme string
}

func (e *LexError) Error() string {
	if e.Lexeme == "" {
		return fmt.Sprintf("%d:%d: %s", e.Span.Start.Line, e.Span.Start.Column, e.Kind)
	}
	return fmt.Sprintf("%d:%d: %s %q", e.Span.Start.Line, e.Span.Start.Column, e.Kind, e.Lexeme)
}
