// Package lexer converts koi source text into a stream of classified,
// positioned tokens. The grammar-dependent pieces (keyword, operator and
// escape tables, comment markers, newline/indentation significance) are
// carried by a Config value; DefaultConfig binds the machinery to koi.
package lexer

// LexSource scans a complete in-memory source buffer and returns the token
// sequence terminated by EOF, together with every lexical error collected.
// Under FailFast the returned tokens are the ones produced before the error.
func LexSource(source string, config Config) ([]Token, []LexError) {
	scanner := NewScanner(source, config)
	return scanner.ScanTokens()
}
