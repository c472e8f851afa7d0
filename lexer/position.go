package lexer

import "fmt"

// Position locates a token (or an error) in the tokenizer's input: a byte
// offset plus the 1-based line and column obtained by walking the input
// scalar-by-scalar up to that offset. Filename is carried opaquely from
// NewWithFilename and is never opened or read by the lexer itself.
type Position struct {
	Offset   uint64
	Line     uint32
	Column   uint32
	Filename string
}

// String renders the position the way diagnostics in this codebase's other
// language tooling do: "file:line:column" when a filename is known, else
// "line:column".
func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

