package lexer

import (
	"sort"
	"strconv"
	"strings"
)

// Scanner turns source text into tokens one NextToken call at a time. A
// scanner owns its cursor for the duration of one pass over one buffer and
// must not be shared between goroutines; independent scanners over separate
// buffers are fully independent.
type Scanner struct {
	config Config
	cursor *Cursor

	// operator symbols sorted longest-first for maximal munch
	operators []string

	// queued tokens produced ahead of the caller (indent changes, the
	// end-of-input sequence)
	pending []Token

	// stack of indentation widths, always starting at 0
	indents []int

	atLineStart     bool
	seenLogicalLine bool
	lineHasTokens   bool

	eofEmitted bool
	eofToken   Token

	fatal *LexError
	errs  []LexError
}

func NewScanner(source string, config Config) *Scanner {
	syms := make([]string, 0, len(config.Operators))
	for sym := range config.Operators {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		if len(syms[i]) != len(syms[j]) {
			return len(syms[i]) > len(syms[j])
		}
		return syms[i] < syms[j]
	})

	return &Scanner{
		config:      config,
		cursor:      NewCursor(source),
		operators:   syms,
		indents:     []int{0},
		atLineStart: true,
	}
}

// Errors returns every lexical error recorded so far. Under
// CollectAndContinue this is the full diagnostic list for the pass.
func (s *Scanner) Errors() []LexError {
	return s.errs
}

// NextToken advances the cursor by exactly one token's worth of input and
// returns it. Once EOF has been produced, further calls keep returning the
// same EOF token. Under FailFast the first error aborts the pass and is
// returned on this and every later call.
func (s *Scanner) NextToken() (Token, error) {
	for {
		if len(s.pending) > 0 {
			tok := s.pending[0]
			s.pending = s.pending[1:]
			return tok, nil
		}
		if s.fatal != nil {
			return Token{}, s.fatal
		}
		if s.eofEmitted {
			return s.eofToken, nil
		}
		if s.atLineStart {
			if err := s.startLine(); err != nil {
				return Token{}, err
			}
			continue
		}

		s.skipSpaces()

		if s.cursor.AtEnd() {
			s.finish()
			continue
		}

		c := s.cursor.Peek(0)

		if c == '\n' {
			start := s.cursor.Pos()
			s.cursor.Advance()
			s.atLineStart = true
			emit := s.config.NewlineSignificant && s.lineHasTokens
			s.lineHasTokens = false
			if emit {
				return Token{Type: NEWLINE, Lexeme: "\n", Span: Span{Start: start, End: s.cursor.Pos()}}, nil
			}
			continue
		}

		if s.config.LineComment != "" && s.cursor.HasPrefix(s.config.LineComment) {
			return s.scanLineComment(), nil
		}
		if s.config.BlockCommentStart != "" && s.cursor.HasPrefix(s.config.BlockCommentStart) {
			return s.scanBlockComment()
		}

		switch {
		case c == '"':
			return s.scanString()
		case isDigit(c):
			return s.scanNumber()
		case isIdentStart(c):
			return s.scanIdentifier(), nil
		}

		if tok, ok := s.matchOperator(); ok {
			return tok, nil
		}

		start := s.cursor.Pos()
		s.cursor.Advance()
		return s.fail(UnexpectedCharacter, Span{Start: start, End: s.cursor.Pos()}, start)
	}
}

// ScanTokens drains the scanner into a slice terminated by EOF, together
// with every error collected along the way. Under FailFast the slice holds
// the tokens produced before the error.
func (s *Scanner) ScanTokens() ([]Token, []LexError) {
	var tokens []Token
	for {
		tok, err := s.NextToken()
		if err != nil {
			return tokens, s.errs
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, s.errs
		}
	}
}

// startLine consumes leading whitespace and reconciles the indentation
// stack with the new line's width. Blank lines and lines holding only a
// line comment never touch the stack.
func (s *Scanner) startLine() error {
	s.atLineStart = false
	start := s.cursor.Pos()
	sawSpace, sawTab := false, false
leading:
	for {
		switch s.cursor.Peek(0) {
		case ' ':
			sawSpace = true
		case '\t':
			sawTab = true
		default:
			break leading
		}
		s.cursor.Advance()
	}

	if !s.config.IndentationSignificant {
		return nil
	}
	if s.cursor.AtEnd() || s.cursor.Peek(0) == '\n' || s.cursor.Peek(0) == '\r' {
		return nil
	}
	if s.config.LineComment != "" && s.cursor.HasPrefix(s.config.LineComment) {
		return nil
	}

	end := s.cursor.Pos()
	run := Span{Start: start, End: end}
	width := end.Offset - start.Offset

	if sawSpace && sawTab {
		return s.indentError(run)
	}

	top := s.indents[len(s.indents)-1]
	switch {
	case width > top:
		if !s.seenLogicalLine {
			// a file must not open with an indented line
			s.seenLogicalLine = true
			return s.indentError(run)
		}
		s.indents = append(s.indents, width)
		s.pending = append(s.pending, Token{
			Type:   INDENT,
			Lexeme: s.cursor.Slice(start.Offset, end.Offset),
			Span:   run,
		})
	case width < top:
		for len(s.indents) > 1 && s.indents[len(s.indents)-1] > width {
			s.indents = s.indents[:len(s.indents)-1]
			s.pending = append(s.pending, Token{Type: DEDENT, Span: Span{Start: end, End: end}})
		}
		if s.indents[len(s.indents)-1] != width {
			s.seenLogicalLine = true
			return s.indentError(run)
		}
	}
	s.seenLogicalLine = true
	return nil
}

func (s *Scanner) indentError(run Span) error {
	tok, err := s.fail(InconsistentIndentation, run, run.Start)
	if err != nil {
		return err
	}
	s.pending = append(s.pending, tok)
	return nil
}

// finish queues the end-of-input sequence: a closing NEWLINE if the last
// line never saw one, a DEDENT for every open indentation level, then EOF.
func (s *Scanner) finish() {
	end := s.cursor.Pos()
	if s.config.NewlineSignificant && s.lineHasTokens {
		s.pending = append(s.pending, Token{Type: NEWLINE, Span: Span{Start: end, End: end}})
		s.lineHasTokens = false
	}
	for len(s.indents) > 1 {
		s.indents = s.indents[:len(s.indents)-1]
		s.pending = append(s.pending, Token{Type: DEDENT, Span: Span{Start: end, End: end}})
	}
	s.eofToken = Token{Type: EOF, Span: Span{Start: end, End: end}}
	s.pending = append(s.pending, s.eofToken)
	s.eofEmitted = true
}

func (s *Scanner) skipSpaces() {
	for isSpace(s.cursor.Peek(0)) {
		s.cursor.Advance()
	}
}

func (s *Scanner) advanceBy(n int) {
	for i := 0; i < n; i++ {
		s.cursor.Advance()
	}
}

// fail records a lexical error. errSpan points at the offending text; the
// stand-in ERROR token covers everything consumed since tokStart. Every
// caller has already advanced past at least one character, so scanning
// always makes forward progress.
func (s *Scanner) fail(kind ErrorKind, errSpan Span, tokStart Position) (Token, error) {
	end := s.cursor.Pos()
	lexErr := &LexError{
		Kind:   kind,
		Span:   errSpan,
		Lexeme: s.cursor.Slice(errSpan.Start.Offset, errSpan.End.Offset),
	}
	s.errs = append(s.errs, *lexErr)
	if s.config.Policy == FailFast {
		s.fatal = lexErr
		return Token{}, lexErr
	}
	s.lineHasTokens = true
	return Token{
		Type:   ERROR,
		Lexeme: s.cursor.Slice(tokStart.Offset, end.Offset),
		Value:  kind,
		Span:   Span{Start: tokStart, End: end},
	}, nil
}

func (s *Scanner) scanLineComment() Token {
	start := s.cursor.Pos()
	for !s.cursor.AtEnd() && s.cursor.Peek(0) != '\n' {
		s.cursor.Advance()
	}
	end := s.cursor.Pos()
	return Token{
		Type:   COMMENT,
		Lexeme: s.cursor.Slice(start.Offset, end.Offset),
		Span:   Span{Start: start, End: end},
	}
}

func (s *Scanner) scanBlockComment() (Token, error) {
	start := s.cursor.Pos()
	s.advanceBy(len(s.config.BlockCommentStart))
	depth := 1
	for depth > 0 {
		if s.cursor.AtEnd() {
			return s.fail(UnterminatedComment, Span{Start: start, End: s.cursor.Pos()}, start)
		}
		switch {
		case s.cursor.HasPrefix(s.config.BlockCommentEnd):
			s.advanceBy(len(s.config.BlockCommentEnd))
			depth--
		case s.config.NestedComments && s.cursor.HasPrefix(s.config.BlockCommentStart):
			s.advanceBy(len(s.config.BlockCommentStart))
			depth++
		default:
			s.cursor.Advance()
		}
	}
	end := s.cursor.Pos()
	return Token{
		Type:   BLOCK_COMMENT,
		Lexeme: s.cursor.Slice(start.Offset, end.Offset),
		Span:   Span{Start: start, End: end},
	}, nil
}

func (s *Scanner) scanString() (Token, error) {
	start := s.cursor.Pos()
	s.cursor.Advance() // opening quote
	var value strings.Builder

	// An invalid escape does not stop the scan: the literal is consumed to
	// its closing quote and stands in as one ERROR token, while the recorded
	// error points at the escape itself. Under FailFast the escape aborts
	// the pass on the spot.
	var badEscape *Span

	for {
		switch c := s.cursor.Peek(0); {
		case s.cursor.AtEnd() || c == '\n':
			return s.fail(UnterminatedString, Span{Start: start, End: s.cursor.Pos()}, start)
		case c == '"':
			s.cursor.Advance()
			end := s.cursor.Pos()
			if badEscape != nil {
				return s.fail(InvalidEscapeSequence, *badEscape, start)
			}
			s.lineHasTokens = true
			return Token{
				Type:   STRING,
				Lexeme: s.cursor.Slice(start.Offset, end.Offset),
				Value:  value.String(),
				Span:   Span{Start: start, End: end},
			}, nil
		case c == '\\':
			escStart := s.cursor.Pos()
			s.cursor.Advance()
			if s.cursor.AtEnd() || s.cursor.Peek(0) == '\n' {
				continue // the loop top reports the unterminated string
			}
			e := s.cursor.Advance()
			if e == 'u' {
				valid := true
				var r rune
				for i := 0; i < s.config.UnicodeEscapeDigits; i++ {
					h := s.cursor.Peek(0)
					if !isHexDigit(h) {
						valid = false
						break
					}
					s.cursor.Advance()
					r = r*16 + rune(hexValue(h))
				}
				if valid {
					value.WriteRune(r)
				} else if err := s.badEscapeAt(escStart, &badEscape); err != nil {
					return Token{}, err
				}
			} else if decoded, ok := s.config.Escapes[e]; ok {
				value.WriteRune(decoded)
			} else if err := s.badEscapeAt(escStart, &badEscape); err != nil {
				return Token{}, err
			}
		default:
			value.WriteByte(c)
			s.cursor.Advance()
		}
	}
}

// badEscapeAt notes an invalid escape. Under FailFast it fails immediately;
// otherwise it remembers the first offending span and lets the string scan
// run on to its closing quote.
func (s *Scanner) badEscapeAt(escStart Position, noted **Span) error {
	esc := Span{Start: escStart, End: s.cursor.Pos()}
	if s.config.Policy == FailFast {
		_, err := s.fail(InvalidEscapeSequence, esc, escStart)
		return err
	}
	if *noted == nil {
		*noted = &esc
	}
	return nil
}

func (s *Scanner) scanNumber() (Token, error) {
	start := s.cursor.Pos()
	s.consumeDigits()
	isFloat := false
	malformed := false

	if s.cursor.Peek(0) == '.' {
		if isDigit(s.cursor.Peek(1)) {
			s.cursor.Advance()
			s.consumeDigits()
			isFloat = true
		} else {
			s.cursor.Advance() // a trailing dot joins the malformed run
			malformed = true
		}
	}

	if !malformed && (s.cursor.Peek(0) == 'e' || s.cursor.Peek(0) == 'E') {
		next := s.cursor.Peek(1)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(s.cursor.Peek(2))) {
			s.cursor.Advance()
			if s.cursor.Peek(0) == '+' || s.cursor.Peek(0) == '-' {
				s.cursor.Advance()
			}
			s.consumeDigits()
			isFloat = true
		}
		// a bare exponent marker is caught by the suffix check below
	}

	// identifier characters stuck to the number invalidate the whole run
	if isIdentContinue(s.cursor.Peek(0)) {
		for isIdentContinue(s.cursor.Peek(0)) {
			s.cursor.Advance()
		}
		malformed = true
	}

	end := s.cursor.Pos()
	if malformed {
		return s.fail(InvalidNumericLiteral, Span{Start: start, End: end}, start)
	}

	lexeme := s.cursor.Slice(start.Offset, end.Offset)
	digits := lexeme
	if s.config.DigitSeparators {
		digits = strings.ReplaceAll(digits, "_", "")
	}
	s.lineHasTokens = true
	if isFloat {
		v, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return s.fail(InvalidNumericLiteral, Span{Start: start, End: end}, start)
		}
		return Token{Type: FLOAT, Lexeme: lexeme, Value: v, Span: Span{Start: start, End: end}}, nil
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		// out of range for int64
		return s.fail(InvalidNumericLiteral, Span{Start: start, End: end}, start)
	}
	return Token{Type: INTEGER, Lexeme: lexeme, Value: v, Span: Span{Start: start, End: end}}, nil
}

func (s *Scanner) consumeDigits() {
	for {
		c := s.cursor.Peek(0)
		if isDigit(c) {
			s.cursor.Advance()
			continue
		}
		if c == '_' && s.config.DigitSeparators && isDigit(s.cursor.Peek(1)) {
			s.cursor.Advance()
			continue
		}
		break
	}
}

func (s *Scanner) scanIdentifier() Token {
	start := s.cursor.Pos()
	for isIdentContinue(s.cursor.Peek(0)) {
		s.cursor.Advance()
	}
	end := s.cursor.Pos()
	lexeme := s.cursor.Slice(start.Offset, end.Offset)
	s.lineHasTokens = true
	return Token{
		Type:   s.config.lookupKeyword(lexeme),
		Lexeme: lexeme,
		Span:   Span{Start: start, End: end},
	}
}

func (s *Scanner) matchOperator() (Token, bool) {
	for _, sym := range s.operators {
		if s.cursor.HasPrefix(sym) {
			start := s.cursor.Pos()
			s.advanceBy(len(sym))
			end := s.cursor.Pos()
			s.lineHasTokens = true
			return Token{
				Type:   s.config.Operators[sym],
				Lexeme: sym,
				Span:   Span{Start: start, End: end},
			}, true
		}
	}
	return Token{}, false
}
