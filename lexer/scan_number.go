package lexer

import (
	"math/big"
	"strconv"
)

// scanNumber implements §4.4's grammar: a base-N integer (`Base#Digits`), a
// float (`D+.D+` with optional exponent), or a plain decimal integer — tried
// in that order of discovery as the input is read left to right.
func (t *Tokenizer) scanNumber(start Position) (Token, error) {
	for !t.atEnd() && isDigit(t.ch) {
		t.advance()
	}
	firstRun := t.input[start.Offset:t.offset]

	if !t.atEnd() && t.ch == '#' {
		return t.scanBaseInteger(start, firstRun)
	}
	if !t.atEnd() && t.ch == '.' {
		if r, _ := t.peekAt(uint64(t.chWidth)); isDigit(r) {
			return t.scanFloat(start)
		}
	}

	val := new(big.Int)
	val.SetString(firstRun, 10)
	tok := t.makeToken(KindInteger, start)
	tok.intVal = val
	return tok, nil
}

// scanBaseInteger consumes `'#' Digits` given the already-scanned decimal
// base digits in baseText, with the cursor positioned on '#'.
func (t *Tokenizer) scanBaseInteger(start Position, baseText string) (Token, error) {
	baseVal, err := strconv.ParseInt(baseText, 10, 32)
	if err != nil || baseVal < 2 || baseVal > 36 {
		return Token{}, errInvalidBase(start, int(baseVal))
	}
	base := int(baseVal)

	t.advance() // consume '#'

	val := new(big.Int)
	baseBig := big.NewInt(int64(base))
	digits := 0
	for !t.atEnd() {
		d := digitValue(t.ch)
		if d < 0 {
			break
		}
		if d >= base {
			return Token{}, errInvalidDigit(t.Position(), t.ch, base)
		}
		val.Mul(val, baseBig)
		val.Add(val, big.NewInt(int64(d)))
		t.advance()
		digits++
	}
	if digits == 0 {
		return Token{}, errMissingDigits(start, "after '#'")
	}

	tok := t.makeToken(KindInteger, start)
	tok.intVal = val
	return tok, nil
}

// scanFloat consumes the fractional part and optional exponent of a float
// whose integer part has already been scanned, with the cursor positioned on
// the '.' and a digit confirmed to follow it.
func (t *Tokenizer) scanFloat(start Position) (Token, error) {
	t.advance() // consume '.'
	for !t.atEnd() && isDigit(t.ch) {
		t.advance()
	}

	if !t.atEnd() && (t.ch == 'e' || t.ch == 'E') {
		pos := uint64(t.chWidth)
		hasSign := false
		c, w := t.peekAt(pos)
		if c == '+' || c == '-' {
			hasSign = true
			pos += uint64(w)
			c, _ = t.peekAt(pos)
		}
		if isDigit(c) {
			t.advance() // consume e/E
			if hasSign {
				t.advance() // consume sign
			}
			for !t.atEnd() && isDigit(t.ch) {
				t.advance()
			}
		}
	}

	text := t.input[start.Offset:t.offset]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, errFloatOverflow(start, text)
	}

	tok := t.makeToken(KindFloat, start)
	tok.floatVal = value
	return tok, nil
}
