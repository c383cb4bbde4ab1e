package lexer

// ErrorPolicy selects how the scanner propagates lexical errors.
type ErrorPolicy int

const (
	// FailFast aborts the pass at the first error; NextToken returns it as
	// a *LexError. Tokens produced before the error remain valid.
	FailFast ErrorPolicy = iota
	// CollectAndContinue emits an ERROR token standing in for the offending
	// span, records the error, and resumes scanning.
	CollectAndContinue
)

// Config carries every grammar-dependent table and policy flag so the
// scanning machinery itself stays free of language-specific branching.
type Config struct {
	// NewlineSignificant controls whether line breaks terminate logical
	// lines with a NEWLINE token or are skipped like any other whitespace.
	NewlineSignificant bool

	// IndentationSignificant enables INDENT/DEDENT tracking at the start
	// of each logical line.
	IndentationSignificant bool

	// DigitSeparators permits underscores between digits in numeric
	// literals. Separators are stripped from the decoded value.
	DigitSeparators bool

	// LineComment starts a comment running to end of line. Empty disables.
	LineComment string

	// BlockCommentStart/BlockCommentEnd delimit block comments. Empty
	// start disables block comments. NestedComments controls whether the
	// delimiters nest.
	BlockCommentStart string
	BlockCommentEnd   string
	NestedComments    bool

	// Escapes maps the character after a backslash to its decoded rune.
	// Unicode escapes (\u followed by UnicodeEscapeDigits hex digits) are
	// handled structurally and need no table entry.
	Escapes             map[byte]rune
	UnicodeEscapeDigits int

	// Operators maps each operator and punctuation symbol to its token
	// type. The scanner always tries longer symbols first (maximal munch).
	Operators map[string]TokenType

	// Keywords maps reserved lexemes to keyword token types. Consulted
	// only after a full identifier has been scanned.
	Keywords map[string]TokenType

	Policy ErrorPolicy
}

// DefaultConfig returns the koi language binding: `;` line comments,
// `(;` ... `;)` block comments, significant newlines and indentation,
// double-quoted single-line strings, and no digit separators.
func DefaultConfig() Config {
	return Config{
		NewlineSignificant:     true,
		IndentationSignificant: true,
		DigitSeparators:        false,
		LineComment:            ";",
		BlockCommentStart:      "(;",
		BlockCommentEnd:        ";)",
		NestedComments:         false,
		Escapes: map[byte]rune{
			'n':  '\n',
			't':  '\t',
			'r':  '\r',
			'0':  0,
			'\\': '\\',
			'"':  '"',
		},
		UnicodeEscapeDigits: 4,
		Operators: map[string]TokenType{
			"==": EQUAL_EQUAL,
			"!=": BANG_EQUAL,
			"<=": LESS_EQUAL,
			">=": GREATER_EQUAL,
			"->": ARROW,
			"&&": AND,
			"||": OR,
			"+":  PLUS,
			"-":  MINUS,
			"*":  STAR,
			"/":  SLASH,
			"%":  PERCENT,
			"<":  LESS,
			">":  GREATER,
			"=":  EQUAL,
			"!":  BANG,
			"(":  LEFT_PAREN,
			")":  RIGHT_PAREN,
			"[":  LEFT_BRACKET,
			"]":  RIGHT_BRACKET,
			"{":  LEFT_BRACE,
			"}":  RIGHT_BRACE,
			",":  COMMA,
			":":  COLON,
			".":  DOT,
		},
		Keywords: map[string]TokenType{
			"fn":     FN,
			"let":    LET,
			"if":     IF,
			"else":   ELSE,
			"while":  WHILE,
			"for":    FOR,
			"in":     IN,
			"return": RETURN,
			"true":   TRUE,
			"false":  FALSE,
		},
		Policy: CollectAndContinue,
	}
}
