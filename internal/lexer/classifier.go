package lexer

// Character classification helpers. These are the only place scanning logic
// asks "what is this character"; everything grammar-specific lives in the
// Config tables.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') ||
		('a' <= c && c <= 'f') ||
		('A' <= c && c <= 'F')
}

func isIdentStart(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func isIdentContinue(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func hexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}

// isSpace covers inline whitespace only; the line feed is significant and
// handled separately.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

// lookupKeyword resolves a fully scanned identifier-shaped lexeme against
// the keyword table. Identifiers are maximal-munch first, so "iffy" never
// matches "if".
func (cfg *Config) lookupKeyword(lexeme string) TokenType {
	if tt, ok := cfg.Keywords[lexeme]; ok {
		return tt
	}
	return IDENTIFIER
}
