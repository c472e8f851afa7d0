package lexer

import (
	"io"
	"iter"
	"unicode/utf8"
)

// Tokenizer scans Erlang source text into a stream of Tokens. A Tokenizer is
// not safe for concurrent use by multiple goroutines; callers must serialize
// calls to Next.
type Tokenizer struct {
	input    string
	filename string

	offset uint64 // byte offset of ch within input
	line   uint32
	column uint32

	ch      rune // scalar at offset, or 0 at end of input
	chWidth int  // byte width of ch

	afterCR bool // last consumed character was '\r', so a following '\n' is the second half of the same line break

	err error // latched terminal error, once set Next always returns it
}

// New constructs a Tokenizer reading input, starting at offset 0, line 1,
// column 1.
func New(input string) *Tokenizer {
	return NewWithFilename(input, "")
}

// NewWithFilename is like New but carries filename opaquely into every
// Position the tokenizer produces. The lexer never opens or reads the file
// itself; filename is purely a label for diagnostics.
func NewWithFilename(input, filename string) *Tokenizer {
	t := &Tokenizer{
		input:    input,
		filename: filename,
		line:     1,
		column:   1,
	}
	t.readChar()
	return t
}

// Position returns the current read cursor: the start position of whatever
// token Next would produce next.
func (t *Tokenizer) Position() Position {
	return Position{Offset: t.offset, Line: t.line, Column: t.column, Filename: t.filename}
}

// readChar decodes the scalar at t.offset into t.ch/t.chWidth without
// consuming it. ASCII bytes take a fast path; anything else goes through
// utf8.DecodeRuneInString. t.ch is 0 at end of input.
func (t *Tokenizer) readChar() {
	if t.offset >= uint64(len(t.input)) {
		t.ch = 0
		t.chWidth = 0
		return
	}
	b := t.input[t.offset]
	if b < utf8.RuneSelf {
		t.ch = rune(b)
		t.chWidth = 1
		return
	}
	r, w := utf8.DecodeRuneInString(t.input[t.offset:])
	t.ch = r
	t.chWidth = w
}

// advance consumes the current character, updating offset/line/column, and
// decodes the next one. Per §3, a bare '\r' and a '\r\n' pair both advance to
// line+1, column 1; '\r\n' counts as a single line break, so the '\n' half
// of the pair (recognized via afterCR) does not advance the line a second
// time.
func (t *Tokenizer) advance() {
	if t.chWidth == 0 {
		return
	}
	switch {
	case t.ch == '\r':
		t.line++
		t.column = 1
	case t.ch == '\n' && !t.afterCR:
		t.line++
		t.column = 1
	case t.ch == '\n':
		// second half of a '\r\n' pair; already counted at the '\r'.
	default:
		t.column++
	}
	t.afterCR = t.ch == '\r'
	t.offset += uint64(t.chWidth)
	t.readChar()
}

// peekAt returns the scalar byteOffset bytes beyond t.offset, and its width,
// without consuming anything, or 0 if that's at or past end of input. When
// byteOffset does not land on a scalar boundary the result is
// utf8.RuneError. The float scanner chains offsets from returned widths; the
// symbol scanner peeks at fixed offsets 1 and 2, which is harmless because a
// non-ASCII scalar never matches a symbol.
func (t *Tokenizer) peekAt(byteOffset uint64) (rune, int) {
	pos := t.offset + byteOffset
	if pos >= uint64(len(t.input)) {
		return 0, 0
	}
	b := t.input[pos]
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	r, w := utf8.DecodeRuneInString(t.input[pos:])
	return r, w
}

// atEnd reports whether the cursor has consumed the entire input.
func (t *Tokenizer) atEnd() bool {
	return t.chWidth == 0
}

// makeToken builds a Token whose text spans from start to the tokenizer's
// current offset.
func (t *Tokenizer) makeToken(kind Kind, start Position) Token {
	return Token{kind: kind, text: t.input[start.Offset:t.offset], pos: start}
}

// Next yields the next Token, or io.EOF once the input is exhausted. After
// any other error, every subsequent call returns that same error and no
// further tokens are produced.
func (t *Tokenizer) Next() (Token, error) {
	if t.err != nil {
		return Token{}, t.err
	}
	if t.atEnd() {
		t.err = io.EOF
		return Token{}, io.EOF
	}

	saved := *t
	start := t.Position()
	c := t.ch

	var tok Token
	var err error
	switch {
	case isWhitespace(c):
		tok, err = t.scanWhitespace(start)
	case c == '%':
		tok, err = t.scanComment(start)
	case c == '$':
		tok, err = t.scanChar(start)
	case c == '"':
		tok, err = t.scanString(start)
	case c == '\'':
		tok, err = t.scanQuotedAtom(start)
	case isAtomStart(c):
		tok, err = t.scanAtomOrKeyword(start)
	case isVariableStart(c):
		tok, err = t.scanVariable(start)
	case isDigit(c):
		tok, err = t.scanNumber(start)
	default:
		tok, err = t.scanSymbol(start)
	}

	if err != nil {
		// Scanners may have moved the cursor before failing; commit none of it.
		*t = saved
		t.err = err
		return Token{}, err
	}
	return tok, nil
}

// Tokens returns a range-over-func iterator built directly on Next: behavior
// is identical between ranging over Tokens() and pulling Next manually.
func (t *Tokenizer) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := t.Next()
			if err == io.EOF {
				return
			}
			if !yield(tok, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}
