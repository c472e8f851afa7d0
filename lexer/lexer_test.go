package lexer

import (
	"errors"
	"io"
	"testing"
)

func collect(t *testing.T, input string) ([]Token, error) {
	t.Helper()
	tz := New(input)
	var toks []Token
	for {
		tok, err := tz.Next()
		if err == io.EOF {
			return toks, nil
		}
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
}

func TestNextToken(t *testing.T) {
	input := `io:format("Hello").`

	tests := []struct {
		expectedKind Kind
		expectedText string
	}{
		{KindAtom, "io"},
		{KindSymbol, ":"},
		{KindAtom, "format"},
		{KindSymbol, "("},
		{KindString, `"Hello"`},
		{KindSymbol, ")"},
		{KindSymbol, "."},
	}

	toks, err := collect(t, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != len(tests) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(tests), toks)
	}
	for i, want := range tests {
		got := toks[i]
		if got.Kind() != want.expectedKind {
			t.Errorf("token %d: kind = %s, want %s", i, got.Kind(), want.expectedKind)
		}
		if got.Text() != want.expectedText {
			t.Errorf("token %d: text = %q, want %q", i, got.Text(), want.expectedText)
		}
	}
}

func TestModuleDeclaration(t *testing.T) {
	input := "-module(foo).\n"
	toks, err := collect(t, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := toks[len(toks)-1]
	if last.Kind() != KindWhitespace || last.WhitespaceValue() != Newline {
		t.Errorf("last token = %v, want trailing newline", last)
	}
}

func TestBaseInteger(t *testing.T) {
	toks, err := collect(t, "16#FF")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind() != KindInteger {
		t.Fatalf("got %v, want a single Integer token", toks)
	}
	if toks[0].IntegerValue().Int64() != 255 {
		t.Errorf("value = %s, want 255", toks[0].IntegerValue())
	}
}

func TestBaseIntegerInvalidDigit(t *testing.T) {
	tz := New("2#1012")
	var lastErr error
	for {
		_, err := tz.Next()
		if err != nil {
			lastErr = err
			break
		}
	}
	var lexErr *LexError
	if !errors.As(lastErr, &lexErr) || lexErr.Kind != InvalidDigit {
		t.Fatalf("got error %v, want InvalidDigit", lastErr)
	}
}

func TestFloatAndTrailingDot(t *testing.T) {
	toks, err := collect(t, "3.14e-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind() != KindFloat {
		t.Fatalf("got %v, want a single Float token", toks)
	}
	if got, want := toks[0].FloatValue(), 0.0314; got < want-1e-9 || got > want+1e-9 {
		t.Errorf("value = %v, want ~%v", got, want)
	}

	toks, err = collect(t, "3.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 2 || toks[0].Kind() != KindInteger || toks[1].Kind() != KindSymbol || toks[1].SymbolValue() != Dot {
		t.Fatalf("got %v, want Integer(3) then Symbol(.)", toks)
	}
}

func TestQuotedAtom(t *testing.T) {
	toks, err := collect(t, "'hello world'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind() != KindAtom || toks[0].AtomValue() != "hello world" {
		t.Fatalf("got %v, want Atom(hello world)", toks)
	}
}

func TestUnterminatedAtom(t *testing.T) {
	tz := New("'abc")
	_, err := tz.Next()
	var lexErr *LexError
	if !errors.As(err, &lexErr) || lexErr.Kind != UnterminatedAtom {
		t.Fatalf("got error %v, want UnterminatedAtom", err)
	}
}

func TestStringWithNewline(t *testing.T) {
	toks, err := collect(t, `"a\nb"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind() != KindString {
		t.Fatalf("got %v, want a single String token", toks)
	}
	if got, want := toks[0].StringValue(), "a\nb"; got != want {
		t.Errorf("value = %q, want %q", got, want)
	}
	if len(toks[0].Text()) != 6 {
		t.Errorf("text length = %d, want 6", len(toks[0].Text()))
	}
}

func TestSymbolMaximality(t *testing.T) {
	toks, err := collect(t, "=:=/=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2: %v", len(toks), toks)
	}
	if toks[0].SymbolValue() != ExactEq || toks[1].SymbolValue() != NotEq {
		t.Fatalf("got %v, want ExactEq then NotEq", toks)
	}
}

func TestComment(t *testing.T) {
	toks, err := collect(t, "% comment\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 2 || toks[0].Kind() != KindComment || toks[0].CommentValue() != "% comment" {
		t.Fatalf("got %v, want Comment(%% comment) then Whitespace", toks)
	}
	if toks[1].Kind() != KindWhitespace || toks[1].WhitespaceValue() != Newline {
		t.Fatalf("got %v, want trailing Whitespace(newline)", toks[1])
	}
}

func TestKeywordExclusivity(t *testing.T) {
	toks, err := collect(t, "case andalso foo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Kind() != KindKeyword || toks[0].KeywordValue() != Case {
		t.Fatalf("token 0 = %v, want Keyword(case)", toks[0])
	}
	if toks[2].Kind() != KindKeyword || toks[2].KeywordValue() != Andalso {
		t.Fatalf("token 2 = %v, want Keyword(andalso)", toks[2])
	}
	if toks[4].Kind() != KindAtom {
		t.Fatalf("token 4 = %v, want Atom(foo)", toks[4])
	}
}

func TestRoundTrip(t *testing.T) {
	input := "-module(foo).\n\nmain() ->\n    io:format(\"~p~n\", [16#FF + 2.5]).\n"
	tz := New(input)
	var rebuilt []byte
	for {
		tok, err := tz.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rebuilt = append(rebuilt, tok.Text()...)
	}
	if string(rebuilt) != input {
		t.Errorf("round-trip mismatch:\ngot:  %q\nwant: %q", rebuilt, input)
	}
}

func TestPositionMonotonicity(t *testing.T) {
	input := "foo(Bar, 42) when Bar =:= baz ->\n  ok.\n"
	tz := New(input)
	var prevEnd uint64
	for {
		pos := tz.Position()
		tok, err := tz.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pos.Offset != prevEnd {
			t.Errorf("gap in offsets: token starts at %d, previous ended at %d", pos.Offset, prevEnd)
		}
		prevEnd = pos.Offset + uint64(len(tok.Text()))
	}
}

func TestTokensIterator(t *testing.T) {
	input := "a, b."
	var viaIterator []string
	for tok, err := range New(input).Tokens() {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		viaIterator = append(viaIterator, tok.Text())
	}

	toks, err := collect(t, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(viaIterator) != len(toks) {
		t.Fatalf("iterator produced %d tokens, manual pull produced %d", len(viaIterator), len(toks))
	}
	for i, tok := range toks {
		if viaIterator[i] != tok.Text() {
			t.Errorf("token %d: iterator = %q, manual = %q", i, viaIterator[i], tok.Text())
		}
	}
}

func TestLatchesAfterError(t *testing.T) {
	tz := New(`"unterminated`)
	_, err1 := tz.Next()
	if err1 == nil {
		t.Fatal("expected an error")
	}
	_, err2 := tz.Next()
	if err2 != err1 {
		t.Errorf("second call returned %v, want the same latched error %v", err2, err1)
	}
}

func TestVariableUnderscore(t *testing.T) {
	toks, err := collect(t, "_")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind() != KindVariable || toks[0].VariableValue() != "_" {
		t.Fatalf("got %v, want Variable(_)", toks)
	}
}
