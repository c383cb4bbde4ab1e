package lexer

import "testing"

func newTestWalker(t *testing.T, input string) *TokenWalker {
	t.Helper()
	return NewTokenWalker(NewScanner(input, flatConfig()))
}

func TestWalkerLookaheadAndForward(t *testing.T) {
	w := newTestWalker(t, "let x = 1")

	tok, err := w.Lookahead(0)
	if err != nil || tok.Type != LET {
		t.Fatalf("expected LET at lookahead 0, got %v %v", tok, err)
	}
	tok, err = w.Lookahead(2)
	if err != nil || tok.Type != EQUAL {
		t.Fatalf("expected EQUAL at lookahead 2, got %v %v", tok, err)
	}

	// lookahead must not consume
	tok, err = w.Forward()
	if err != nil || tok.Type != LET {
		t.Fatalf("expected LET from Forward, got %v %v", tok, err)
	}
	tok, err = w.Forward()
	if err != nil || tok.Type != IDENTIFIER {
		t.Fatalf("expected IDENTIFIER from Forward, got %v %v", tok, err)
	}
}

func TestWalkerLookaheadPastEOF(t *testing.T) {
	w := newTestWalker(t, "x")

	for _, ahead := range []int{1, 2, 10} {
		tok, err := w.Lookahead(ahead)
		if err != nil {
			t.Fatalf("unexpected error at lookahead %d: %v", ahead, err)
		}
		if tok.Type != EOF {
			t.Errorf("lookahead %d past the end should be EOF, got %s", ahead, tok.Type)
		}
	}
}

func TestWalkerExpect(t *testing.T) {
	w := newTestWalker(t, "fn demo")

	tok, err := w.Expect(FN)
	if err != nil || tok.Type != FN {
		t.Fatalf("expected FN, got %v %v", tok, err)
	}

	_, err = w.Expect(LET)
	utErr, ok := err.(*UnexpectedTokenError)
	if !ok {
		t.Fatalf("expected *UnexpectedTokenError, got %v", err)
	}
	if utErr.Want != LET || utErr.Token.Type != IDENTIFIER {
		t.Errorf("unexpected mismatch detail: want %s, got token %v", utErr.Want, utErr.Token)
	}

	// Expect consumes even on mismatch
	tok, err = w.Forward()
	if err != nil || tok.Type != EOF {
		t.Errorf("expected EOF after failed Expect, got %v %v", tok, err)
	}
}
