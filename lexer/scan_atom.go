package lexer

// scanAtomOrKeyword consumes a bare atom `[a-z][A-Za-z0-9_@]*` and classifies
// it as a Keyword if its text matches the closed reserved-word set, else an
// Atom whose decoded name equals its text.
func (t *Tokenizer) scanAtomOrKeyword(start Position) (Token, error) {
	t.advance() // first char already validated by the dispatcher
	for !t.atEnd() && isAtomCont(t.ch) {
		t.advance()
	}
	tok := t.makeToken(KindAtom, start)
	if kw, ok := keywords[tok.text]; ok {
		tok.kind = KindKeyword
		tok.kwVal = kw
		return tok, nil
	}
	tok.strVal = tok.text
	return tok, nil
}

// scanQuotedAtom consumes `'...'` with backslash-escapes identical to
// strings. The decoded name excludes the surrounding quotes; text includes
// them. A quoted atom lexically identical to a bare atom is still an Atom,
// never a Keyword.
func (t *Tokenizer) scanQuotedAtom(start Position) (Token, error) {
	t.advance() // consume opening '

	var decoded []rune
	for {
		if t.atEnd() {
			return Token{}, errUnterminatedAtom(start)
		}
		if t.ch == '\'' {
			t.advance()
			break
		}
		if t.ch == '\\' {
			escStart := t.Position()
			t.advance()
			r, err := t.readEscape(escStart)
			if err != nil {
				return Token{}, err
			}
			decoded = append(decoded, r)
			continue
		}
		decoded = append(decoded, t.ch)
		t.advance()
	}

	tok := t.makeToken(KindAtom, start)
	tok.strVal = string(decoded)
	return tok, nil
}
