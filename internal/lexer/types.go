package lexer

type TokenType int

const (
	// Special tokens
	ERROR TokenType = iota
	EOF
	NEWLINE
	INDENT
	DEDENT

	// Identifiers + literals
	IDENTIFIER
	INTEGER
	FLOAT
	STRING

	// Keywords
	FN
	LET
	IF
	ELSE
	WHILE
	FOR
	IN
	RETURN
	TRUE
	FALSE

	// Operators
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	EQUAL
	EQUAL_EQUAL
	BANG
	BANG_EQUAL
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL
	ARROW
	AND
	OR

	// Separators
	COMMA
	COLON
	DOT

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_BRACKET
	RIGHT_BRACKET

	// Comments
	COMMENT
	BLOCK_COMMENT
)

var tokenTypeNames = map[TokenType]string{
	ERROR:         "ERROR",
	EOF:           "EOF",
	NEWLINE:       "NEWLINE",
	INDENT:        "INDENT",
	DEDENT:        "DEDENT",
	IDENTIFIER:    "IDENTIFIER",
	INTEGER:       "INTEGER",
	FLOAT:         "FLOAT",
	STRING:        "STRING",
	FN:            "FN",
	LET:           "LET",
	IF:            "IF",
	ELSE:          "ELSE",
	WHILE:         "WHILE",
	FOR:           "FOR",
	IN:            "IN",
	RETURN:        "RETURN",
	TRUE:          "TRUE",
	FALSE:         "FALSE",
	PLUS:          "PLUS",
	MINUS:         "MINUS",
	STAR:          "STAR",
	SLASH:         "SLASH",
	PERCENT:       "PERCENT",
	EQUAL:         "EQUAL",
	EQUAL_EQUAL:   "EQUAL_EQUAL",
	BANG:          "BANG",
	BANG_EQUAL:    "BANG_EQUAL",
	LESS:          "LESS",
	LESS_EQUAL:    "LESS_EQUAL",
	GREATER:       "GREATER",
	GREATER_EQUAL: "GREATER_EQUAL",
	ARROW:         "ARROW",
	AND:           "AND",
	OR:            "OR",
	COMMA:         "COMMA",
	COLON:         "COLON",
	DOT:           "DOT",
	LEFT_PAREN:    "LEFT_PAREN",
	RIGHT_PAREN:   "RIGHT_PAREN",
	LEFT_BRACE:    "LEFT_BRACE",
	RIGHT_BRACE:   "RIGHT_BRACE",
	LEFT_BRACKET:  "LEFT_BRACKET",
	RIGHT_BRACKET: "RIGHT_BRACKET",
	COMMENT:       "COMMENT",
	BLOCK_COMMENT: "BLOCK_COMMENT",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}

// Span covers [Start, End): End points one past the last consumed character.
type Span struct {
	Start Position
	End   Position
}
