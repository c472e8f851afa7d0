// Package lexer tokenizes Erlang source text into a stream of position-tagged
// tokens. It recognizes atoms, variables, keywords, numbers, characters,
// strings, symbols, comments, and whitespace, following the lexical grammar
// described in the Erlang reference manual's Data Types chapter.
package lexer

import (
	"fmt"
	"math/big"
)

// Kind is the discriminant of a Token's tagged variant.
type Kind uint8

const (
	KindAtom Kind = iota
	KindVariable
	KindKeyword
	KindInteger
	KindFloat
	KindChar
	KindString
	KindSymbol
	KindComment
	KindWhitespace
)

// String returns the name of the kind, e.g. "Atom".
func (k Kind) String() string {
	switch k {
	case KindAtom:
		return "Atom"
	case KindVariable:
		return "Variable"
	case KindKeyword:
		return "Keyword"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindChar:
		return "Char"
	case KindString:
		return "String"
	case KindSymbol:
		return "Symbol"
	case KindComment:
		return "Comment"
	case KindWhitespace:
		return "Whitespace"
	default:
		return "Unknown"
	}
}

// SymbolKind identifies which member of the closed punctuation/operator set a
// Symbol token is.
type SymbolKind uint8

const (
	OpenParen SymbolKind = iota
	CloseParen
	OpenBrace
	CloseBrace
	OpenSquare
	CloseSquare
	Dot
	Comma
	Semicolon
	Colon
	Question
	Not
	VerticalBar
	DoubleVerticalBar
	Hyphen
	Plus
	Multiply
	Slash
	Match
	Eq
	NotEq
	ExactEq
	ExactNotEq
	Less
	LessEq
	Greater
	GreaterEq
	PlusPlus
	MinusMinus
	RightArrow
	LeftArrow
	DoubleRightArrow
	LeftDoubleArrow
	DoubleLeftAngle
	DoubleRightAngle
	DoubleColon
)

// symbolText is the canonical text for every SymbolKind, in declaration order.
var symbolText = [...]string{
	OpenParen:         "(",
	CloseParen:        ")",
	OpenBrace:         "{",
	CloseBrace:        "}",
	OpenSquare:        "[",
	CloseSquare:       "]",
	Dot:               ".",
	Comma:             ",",
	Semicolon:         ";",
	Colon:             ":",
	Question:          "?",
	Not:               "!",
	VerticalBar:       "|",
	DoubleVerticalBar: "||",
	Hyphen:            "-",
	Plus:              "+",
	Multiply:          "*",
	Slash:             "/",
	Match:             "=",
	Eq:                "==",
	NotEq:             "/=",
	ExactEq:           "=:=",
	ExactNotEq:        "=/=",
	Less:              "<",
	LessEq:            "=<",
	Greater:           ">",
	GreaterEq:         ">=",
	PlusPlus:          "++",
	MinusMinus:        "--",
	RightArrow:        "->",
	LeftArrow:         "<-",
	DoubleRightArrow:  "=>",
	LeftDoubleArrow:   "<=",
	DoubleLeftAngle:   "<<",
	DoubleRightAngle:  ">>",
	DoubleColon:       "::",
}

// String returns the canonical text of the symbol, e.g. "=:=".
func (s SymbolKind) String() string {
	if int(s) < len(symbolText) {
		return symbolText[s]
	}
	return "?"
}

// KeywordKind identifies which reserved word a Keyword token spells.
type KeywordKind uint8

const (
	After KeywordKind = iota
	And
	Andalso
	Band
	Begin
	Bnot
	Bor
	Bsl
	Bsr
	Bxor
	Case
	Catch
	Cond
	Div
	End
	Fun
	If
	Let
	Not_ // "not" — trailing underscore avoids colliding with SymbolKind's Not (`!`).
	Of
	Or
	Orelse
	Receive
	Rem
	Try
	When
	Xor
)

var keywordText = map[KeywordKind]string{
	After: "after", And: "and", Andalso: "andalso", Band: "band",
	Begin: "begin", Bnot: "bnot", Bor: "bor", Bsl: "bsl", Bsr: "bsr",
	Bxor: "bxor", Case: "case", Catch: "catch", Cond: "cond", Div: "div",
	End: "end", Fun: "fun", If: "if", Let: "let", Not_: "not", Of: "of",
	Or: "or", Orelse: "orelse", Receive: "receive", Rem: "rem", Try: "try",
	When: "when", Xor: "xor",
}

// keywords maps reserved-word text to its KeywordKind. Populated from
// keywordText so the two never drift apart.
var keywords = func() map[string]KeywordKind {
	m := make(map[string]KeywordKind, len(keywordText))
	for k, v := range keywordText {
		m[v] = k
	}
	return m
}()

// String returns the reserved word's text, e.g. "andalso".
func (k KeywordKind) String() string {
	if s, ok := keywordText[k]; ok {
		return s
	}
	return "<invalid-keyword>"
}

// WhitespaceKind partitions a run of whitespace by character class.
type WhitespaceKind uint8

const (
	Space WhitespaceKind = iota
	Tab
	Newline
	Return
	FormFeed
	VerticalTab
)

// String returns the kind's name, e.g. "newline".
func (w WhitespaceKind) String() string {
	switch w {
	case Space:
		return "space"
	case Tab:
		return "tab"
	case Newline:
		return "newline"
	case Return:
		return "return"
	case FormFeed:
		return "form-feed"
	case VerticalTab:
		return "vertical-tab"
	default:
		return "unknown"
	}
}

// Token is a single lexical unit: a tagged variant carrying the source slice
// it was scanned from, its start Position, and — for variants that decode —
// the decoded value. Text is always a borrow into the tokenizer's input; only
// the decoded fields below may allocate.
type Token struct {
	kind Kind
	text string
	pos  Position

	strVal   string // Atom/Variable name, decoded String contents, Comment text
	intVal   *big.Int
	floatVal float64
	runeVal  rune
	symVal   SymbolKind
	kwVal    KeywordKind
	wsVal    WhitespaceKind
}

// Kind returns the token's variant discriminant.
func (t Token) Kind() Kind { return t.kind }

// Text returns the exact source slice the token was scanned from. Concatenating
// every token's Text in yielded order reproduces the tokenizer's input exactly.
func (t Token) Text() string { return t.text }

// Position returns the token's start position.
func (t Token) Position() Position { return t.pos }

func (t Token) wrongKind(want Kind) string {
	return fmt.Sprintf("lexer: Token.%sValue called on a %s token", want, t.kind)
}

// AtomValue returns the decoded atom name, with surrounding quotes (if any)
// removed and escapes resolved. Panics if Kind() != KindAtom.
func (t Token) AtomValue() string {
	if t.kind != KindAtom {
		panic(t.wrongKind(KindAtom))
	}
	return t.strVal
}

// VariableValue returns the variable's name, identical to Text(). Panics if
// Kind() != KindVariable.
func (t Token) VariableValue() string {
	if t.kind != KindVariable {
		panic(t.wrongKind(KindVariable))
	}
	return t.strVal
}

// KeywordValue returns which reserved word this token spells. Panics if
// Kind() != KindKeyword.
func (t Token) KeywordValue() KeywordKind {
	if t.kind != KindKeyword {
		panic(t.wrongKind(KindKeyword))
	}
	return t.kwVal
}

// IntegerValue returns the arbitrary-precision value of an integer literal.
// Panics if Kind() != KindInteger.
func (t Token) IntegerValue() *big.Int {
	if t.kind != KindInteger {
		panic(t.wrongKind(KindInteger))
	}
	return t.intVal
}

// FloatValue returns the decoded IEEE-754 double. Panics if Kind() != KindFloat.
func (t Token) FloatValue() float64 {
	if t.kind != KindFloat {
		panic(t.wrongKind(KindFloat))
	}
	return t.floatVal
}

// CharValue returns the resolved scalar value of a $-character literal.
// Panics if Kind() != KindChar.
func (t Token) CharValue() rune {
	if t.kind != KindChar {
		panic(t.wrongKind(KindChar))
	}
	return t.runeVal
}

// StringValue returns the decoded contents of a string literal, with escapes
// resolved and surrounding quotes removed. Panics if Kind() != KindString.
func (t Token) StringValue() string {
	if t.kind != KindString {
		panic(t.wrongKind(KindString))
	}
	return t.strVal
}

// SymbolValue returns which member of the closed symbol set this token is.
// Panics if Kind() != KindSymbol.
func (t Token) SymbolValue() SymbolKind {
	if t.kind != KindSymbol {
		panic(t.wrongKind(KindSymbol))
	}
	return t.symVal
}

// CommentValue returns the comment's text, including the leading "%" and
// excluding the terminating newline. Panics if Kind() != KindComment.
func (t Token) CommentValue() string {
	if t.kind != KindComment {
		panic(t.wrongKind(KindComment))
	}
	return t.strVal
}

// WhitespaceValue returns which character class this whitespace run belongs
// to. Panics if Kind() != KindWhitespace.
func (t Token) WhitespaceValue() WhitespaceKind {
	if t.kind != KindWhitespace {
		panic(t.wrongKind(KindWhitespace))
	}
	return t.wsVal
}

// String returns a debug representation of the token, in the spirit of the
// original tokenizer's derived Debug output.
func (t Token) String() string {
	return fmt.Sprintf("{Kind: %s, Text: %q, Position: %s}", t.kind, t.text, t.pos)
}
