package errors

import "koi/internal/lexer"

// Error codes for the koi toolchain. Codes appear in diagnostics and
// documentation so tooling can identify errors consistently.
//
// Error code ranges:
// L0001-L0099: Lexical errors
// P0100-P0199: Reserved for parser errors
// W0001-W0099: Warning codes

const (
	// L0001: String literal never closed before end of line or input
	ErrorUnterminatedString = "L0001"

	// L0002: Block comment never closed before end of input
	ErrorUnterminatedComment = "L0002"

	// L0003: Backslash escape not in the escape table
	ErrorInvalidEscapeSequence = "L0003"

	// L0004: Malformed or out-of-range numeric literal
	ErrorInvalidNumericLiteral = "L0004"

	// L0005: Character matching no token rule
	ErrorUnexpectedCharacter = "L0005"

	// L0006: Indentation not matching any open level, or mixed tabs and spaces
	ErrorInconsistentIndentation = "L0006"
)

var lexErrorCodes = map[lexer.ErrorKind]string{
	lexer.UnterminatedString:      ErrorUnterminatedString,
	lexer.UnterminatedComment:     ErrorUnterminatedComment,
	lexer.InvalidEscapeSequence:   ErrorInvalidEscapeSequence,
	lexer.InvalidNumericLiteral:   ErrorInvalidNumericLiteral,
	lexer.UnexpectedCharacter:     ErrorUnexpectedCharacter,
	lexer.InconsistentIndentation: ErrorInconsistentIndentation,
}

// CodeFor returns the diagnostic code for a lexical error kind.
func CodeFor(kind lexer.ErrorKind) string {
	if code, ok := lexErrorCodes[kind]; ok {
		return code
	}
	return ""
}

// GetErrorDescription returns a human-readable description of an error code.
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnterminatedString:
		return "String literal is missing its closing quote"
	case ErrorUnterminatedComment:
		return "Block comment is missing its closing marker"
	case ErrorInvalidEscapeSequence:
		return "Escape sequence is not recognized"
	case ErrorInvalidNumericLiteral:
		return "Numeric literal is malformed or out of range"
	case ErrorUnexpectedCharacter:
		return "Character does not start any token"
	case ErrorInconsistentIndentation:
		return "Indentation does not match any enclosing block"
	default:
		return "Unknown error code"
	}
}

// IsWarning reports whether a code identifies a warning rather than an error.
func IsWarning(code string) bool {
	return len(code) > 0 && code[0] == 'W'
}
