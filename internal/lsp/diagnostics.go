package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
	"koi/internal/errors"
	"koi/internal/lexer"
)

// ConvertLexErrors transforms scanner errors into LSP diagnostics for IDE
// display: unterminated strings and comments, bad escapes, malformed
// numbers, stray characters, inconsistent indentation.
func ConvertLexErrors(lexErrors []lexer.LexError) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	for _, lexErr := range lexErrors {
		code := protocol.IntegerOrString{Value: errors.CodeFor(lexErr.Kind)}

		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(lexErr.Span.Start.Line - 1),   // Convert to 0-based indexing
					Character: uint32(lexErr.Span.Start.Column - 1), // Convert to 0-based indexing
				},
				End: protocol.Position{
					Line:      uint32(lexErr.Span.End.Line - 1),
					Character: uint32(lexErr.Span.End.Column - 1),
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Code:     &code,
			Source:   ptrString("koi-lexer"),
			Message:  lexErr.Kind.String(),
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
