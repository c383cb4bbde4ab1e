package lsp

import (
	"strings"

	"koi/internal/lexer"
)

// SemanticToken represents a single LSP semantic token entry.
// Line and StartChar are 0-based positions; TokenType indexes into
// SemanticTokenTypes and TokenModifiers is a bitmask over
// SemanticTokenModifiers.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// The set of semantic token types this server reports (as required by the LSP spec)
var SemanticTokenTypes = []string{
	"keyword",
	"variable",
	"number",
	"string",
	"operator",
	"comment",
}

// Modifiers are advertised for legend completeness; lexical analysis alone
// never assigns any.
var SemanticTokenModifiers = []string{
	"declaration",
	"readonly",
}

var semanticTypeIndex = func() map[string]int {
	index := make(map[string]int, len(SemanticTokenTypes))
	for i, name := range SemanticTokenTypes {
		index[name] = i
	}
	return index
}()

// collectSemanticTokens classifies the scanner's token stream into the LSP
// legend. Structural tokens (NEWLINE, INDENT, DEDENT, EOF) and error
// stand-ins carry no highlight; multi-line block comments are clamped to
// their first line since LSP semantic tokens are single-line.
func collectSemanticTokens(stream []lexer.Token) []SemanticToken {
	var tokens []SemanticToken

	for _, tok := range stream {
		name := semanticTypeFor(tok)
		if name == "" {
			continue
		}

		length := tok.Span.End.Offset - tok.Span.Start.Offset
		if nl := strings.IndexByte(tok.Lexeme, '\n'); nl >= 0 {
			length = nl
		}

		tokens = append(tokens, SemanticToken{
			Line:      uint32(tok.Span.Start.Line - 1),
			StartChar: uint32(tok.Span.Start.Column - 1),
			Length:    uint32(length),
			TokenType: semanticTypeIndex[name],
		})
	}

	return tokens
}

func semanticTypeFor(tok lexer.Token) string {
	switch tok.Type {
	case lexer.IDENTIFIER:
		return "variable"
	case lexer.INTEGER, lexer.FLOAT:
		return "number"
	case lexer.STRING:
		return "string"
	case lexer.COMMENT, lexer.BLOCK_COMMENT:
		return "comment"
	case lexer.FN, lexer.LET, lexer.IF, lexer.ELSE, lexer.WHILE,
		lexer.FOR, lexer.IN, lexer.RETURN, lexer.TRUE, lexer.FALSE:
		return "keyword"
	case lexer.NEWLINE, lexer.INDENT, lexer.DEDENT, lexer.EOF, lexer.ERROR:
		return ""
	default:
		// everything else in the table is an operator or punctuation
		return "operator"
	}
}
