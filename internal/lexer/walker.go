package lexer

import "fmt"

// TokenSource yields successive tokens. *Scanner satisfies it; the walker
// works against any implementation.
type TokenSource interface {
	NextToken() (Token, error)
}

// UnexpectedTokenError is returned by Expect when the next token does not
// have the wanted type.
type UnexpectedTokenError struct {
	Token Token
	Want  TokenType
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("%d:%d: expected %s, found %s",
		e.Token.Span.Start.Line, e.Token.Span.Start.Column, e.Want, e.Token.Type)
}

// TokenWalker buffers lookahead over a token source so a consumer can peek
// arbitrarily far before committing. The EOF token guards the end of the
// stream: looking ahead past it just keeps returning it.
type TokenWalker struct {
	source TokenSource
	buffer []Token
}

func NewTokenWalker(source TokenSource) *TokenWalker {
	return &TokenWalker{source: source}
}

// Lookahead returns the token ahead positions past the walker's front
// without consuming anything.
func (w *TokenWalker) Lookahead(ahead int) (Token, error) {
	for len(w.buffer) <= ahead {
		tok, err := w.source.NextToken()
		if err != nil {
			return Token{}, err
		}
		w.buffer = append(w.buffer, tok)
	}
	return w.buffer[ahead], nil
}

// Forward consumes and returns the front token.
func (w *TokenWalker) Forward() (Token, error) {
	tok, err := w.Lookahead(0)
	if err != nil {
		return Token{}, err
	}
	w.buffer = w.buffer[1:]
	return tok, nil
}

// Expect consumes the front token and fails if it is not of the wanted
// type. The token is consumed either way so callers can resynchronize.
func (w *TokenWalker) Expect(want TokenType) (Token, error) {
	tok, err := w.Forward()
	if err != nil {
		return Token{}, err
	}
	if tok.Type != want {
		return tok, &UnexpectedTokenError{Token: tok, Want: want}
	}
	return tok, nil
}
