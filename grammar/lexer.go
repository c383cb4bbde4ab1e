package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// KoiLexer is the flat, regex-driven twin of the hand-written scanner, used
// by editor tooling that only needs token classes, not indentation
// structure. Block comments and INDENT/DEDENT tracking are deliberately out
// of scope here.
var KoiLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{Name: "Comment", Pattern: `;[^\n]*`, Action: nil},

		// Keywords and Identifiers (keywords resolved downstream)
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`, Action: nil},

		// Numeric literals (order matters: floats before ints)
		{Name: "Float", Pattern: `[0-9]+\.[0-9]+([eE][+-]?[0-9]+)?|[0-9]+[eE][+-]?[0-9]+`, Action: nil},
		{Name: "Int", Pattern: `[0-9]+`, Action: nil},

		// String literals
		{Name: "String", Pattern: `"(\\.|[^"\\\n])*"`, Action: nil},

		// Operators
		{Name: "Operator", Pattern: `(==|!=|<=|>=|->|&&|\|\||[-+*/%<>=!])`, Action: nil},

		// Punctuation (must come after operators)
		{Name: "Punct", Pattern: `[()\[\]{},:.]`, Action: nil},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},
	},
})

// Tokenize runs the editor lexer over source and returns every token up to
// EOF, whitespace included.
func Tokenize(filename, source string) ([]lexer.Token, error) {
	lex, err := KoiLexer.LexString(filename, source)
	if err != nil {
		return nil, err
	}
	var tokens []lexer.Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if tok.EOF() {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
