package lexer

// isWhitespace reports whether c is one of the six whitespace characters
// recognized by the whitespace scanner.
func isWhitespace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

// whitespaceKindOf maps a whitespace character to its WhitespaceKind. Callers
// must only pass characters for which isWhitespace reports true.
func whitespaceKindOf(c rune) WhitespaceKind {
	switch c {
	case ' ':
		return Space
	case '\t':
		return Tab
	case '\n':
		return Newline
	case '\r':
		return Return
	case '\f':
		return FormFeed
	case '\v':
		return VerticalTab
	default:
		return Space
	}
}

func isLower(c rune) bool { return c >= 'a' && c <= 'z' }
func isUpper(c rune) bool { return c >= 'A' && c <= 'Z' }
func isDigit(c rune) bool { return c >= '0' && c <= '9' }

// isAtomStart reports whether c can begin a bare atom (or keyword).
func isAtomStart(c rune) bool { return isLower(c) }

// isAtomCont reports whether c can continue a bare atom after its first
// character.
func isAtomCont(c rune) bool {
	return isLower(c) || isUpper(c) || isDigit(c) || c == '_' || c == '@'
}

// isVariableStart reports whether c can begin a variable.
func isVariableStart(c rune) bool { return isUpper(c) || c == '_' }

// isVariableCont reports whether c can continue a variable after its first
// character; identical to atom continuation.
func isVariableCont(c rune) bool { return isAtomCont(c) }

// digitValue returns the numeric value of c as a digit in any base up to 36
// (0-9, then a-z/A-Z), or -1 if c is not an ASCII alphanumeric.
func digitValue(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return -1
	}
}
