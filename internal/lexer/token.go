package lexer

import "fmt"

// Token is an immutable unit of lexical meaning. Lexeme always holds the
// exact source substring the token was scanned from; Value holds the decoded
// semantic value for literal kinds (int64 for INTEGER, float64 for FLOAT,
// the unescaped string for STRING) and is nil otherwise.
type Token struct {
	Type   TokenType
	Lexeme string
	Value  any
	Span   Span
}

func (t Token) String() string {
	if t.Lexeme == "" {
		return fmt.Sprintf("%s %d:%d", t.Type, t.Span.Start.Line, t.Span.Start.Column)
	}
	return fmt.Sprintf("%s %q %d:%d", t.Type, t.Lexeme, t.Span.Start.Line, t.Span.Start.Column)
}

// Is reports whether the token has one of the given types.
func (t Token) Is(types ...TokenType) bool {
	for _, tt := range types {
		if t.Type == tt {
			return true
		}
	}
	return false
}
