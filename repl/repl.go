// Package repl provides an interactive, line-edited front end to the
// tokenizer: each line typed is tokenized immediately and its tokens are
// printed.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	"github.com/sile/erl-tokenize/lexer"
)

const prompt = ">> "

const logo = `
█▀▀ █▀█ █░░ ▀█▀ █▀█ █▄▀ █▀▀ █▄░█ █ ▀█ █▀▀
██▄ █▀▄ █▄▄ ░█░ █▄█ █░█ ██▄ █░▀█ █ █▄ ██▄ `

// Start runs the REPL, reading lines with history and Ctrl-C support via
// liner and tokenizing each one against out.
func Start(out io.Writer, version string) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	historyFile := filepath.Join(os.TempDir(), ".erltok_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Fprint(out, logo)
	fmt.Fprintln(out, "v", version)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Type a line of Erlang source to see its tokens. Ctrl+D to quit.")
	fmt.Fprintln(out)

	for {
		input, err := line.Prompt(prompt)
		if err != nil { // io.EOF on Ctrl+D, liner.ErrPromptAborted on Ctrl+C
			fmt.Fprintln(out)
			return
		}
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		tokenizeLine(out, input)
	}
}

func tokenizeLine(out io.Writer, input string) {
	tz := lexer.New(input)
	for {
		tok, err := tz.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintln(out, err)
			return
		}
		fmt.Fprintln(out, tok)
	}
}
