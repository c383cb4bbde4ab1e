package lsp_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"koi/internal/lexer"
	"koi/internal/lsp"
)

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewKoiHandler()

	absPath, err := filepath.Abs(filepath.Join("../../examples", "fib.koi"))
	require.NoError(t, err, "Failed to get absolute path")

	uri := "file://" + filepath.ToSlash(absPath)

	ctx := &glsp.Context{}
	params := &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{
			URI: uri,
		},
	}

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, params)
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")
	require.NotEmpty(t, tokens.Data, "Returned token data should not be empty")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.NotEmpty(t, decoded, "No semantic tokens decoded")

	// first line is the leading comment, second opens with the fn keyword
	assertToken(t, &decoded[0], 0, 0, "comment")
	assertToken(t, &decoded[1], 1, 0, "keyword")
	assertToken(t, &decoded[2], 1, 3, "variable")
}

func TestConvertLexErrors(t *testing.T) {
	lexErrs := []lexer.LexError{
		{
			Kind: lexer.UnterminatedString,
			Span: lexer.Span{
				Start: lexer.Position{Line: 3, Column: 5, Offset: 20},
				End:   lexer.Position{Line: 3, Column: 10, Offset: 25},
			},
			Lexeme: `"open`,
		},
	}

	diagnostics := lsp.ConvertLexErrors(lexErrs)
	require.Len(t, diagnostics, 1)

	diag := diagnostics[0]
	require.Equal(t, uint32(2), diag.Range.Start.Line)
	require.Equal(t, uint32(4), diag.Range.Start.Character)
	require.Equal(t, uint32(9), diag.Range.End.Character)
	require.Equal(t, "koi-lexer", *diag.Source)
	require.Equal(t, "unterminated string literal", diag.Message)
	require.Equal(t, "L0001", diag.Code.Value)
}

func TestConvertLexErrorsEmpty(t *testing.T) {
	diagnostics := lsp.ConvertLexErrors(nil)
	require.NotNil(t, diagnostics, "clean documents must publish an empty list, not nil")
	require.Empty(t, diagnostics)
}

type decodedToken struct {
	line      uint32
	startChar uint32
	length    uint32
	tokenType string
}

func decodeSemanticTokens(data []uint32) ([]decodedToken, error) {
	if len(data)%5 != 0 {
		return nil, fmt.Errorf("semantic token data length %d is not a multiple of 5", len(data))
	}

	var tokens []decodedToken
	var line, start uint32
	for i := 0; i < len(data); i += 5 {
		deltaLine, deltaStart := data[i], data[i+1]
		if deltaLine == 0 {
			start += deltaStart
		} else {
			line += deltaLine
			start = deltaStart
		}
		typeIndex := int(data[i+3])
		if typeIndex >= len(lsp.SemanticTokenTypes) {
			return nil, fmt.Errorf("token type index %d out of range", typeIndex)
		}
		tokens = append(tokens, decodedToken{
			line:      line,
			startChar: start,
			length:    data[i+2],
			tokenType: lsp.SemanticTokenTypes[typeIndex],
		})
	}
	return tokens, nil
}

func assertToken(t *testing.T, tok *decodedToken, line, startChar uint32, tokenType string) {
	t.Helper()
	require.Equal(t, line, tok.line, "token line")
	require.Equal(t, startChar, tok.startChar, "token start")
	require.Equal(t, tokenType, tok.tokenType, "token type")
}
