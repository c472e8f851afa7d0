// Command erltok tokenizes Erlang source text and prints the resulting
// tokens, one per line.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sile/erl-tokenize/lexer"
	"github.com/sile/erl-tokenize/repl"
)

// Version is set at compile time via -ldflags.
var Version = "0.1.0"

var (
	helpFlag        = flag.Bool("h", false, "Show help message")
	helpLongFlag    = flag.Bool("help", false, "Show help message")
	versionFlag     = flag.Bool("V", false, "Show version information")
	versionLongFlag = flag.Bool("version", false, "Show version information")
	encodingFlag    = flag.String("encoding", "", "Source encoding: utf-8 (default) or latin1")
	watchFlag       = flag.Bool("watch", false, "Re-tokenize the file whenever it changes on disk")
)

func main() {
	// Check for subcommands before flag parsing, mirroring this codebase's
	// other command-line entry points.
	if len(os.Args) > 1 && os.Args[1] == "repl" {
		repl.Start(os.Stdout, Version)
		return
	}

	flag.Usage = printHelp
	flag.Parse()

	if *helpFlag || *helpLongFlag {
		printHelp()
		os.Exit(0)
	}
	if *versionFlag || *versionLongFlag {
		fmt.Printf("erltok version %s\n", Version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "erltok: missing file (use - for stdin)")
		os.Exit(2)
	}
	path := args[0]

	if *watchFlag {
		if path == "-" {
			fmt.Fprintln(os.Stderr, "erltok: -watch requires a file, not stdin")
			os.Exit(2)
		}
		if err := watchFile(os.Stdout, os.Stderr, path, *encodingFlag); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	data, err := readInput(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	text, err := decodeSource(data, *encodingFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(tokenizeAndPrint(os.Stdout, text, path))
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// tokenizeAndPrint prints every token's position and debug form to out,
// returning 0 on success or 1 if tokenization ended in a lexical error
// (whose position and kind are printed to stderr).
func tokenizeAndPrint(out io.Writer, text, path string) int {
	var tz *lexer.Tokenizer
	if path == "-" || path == "" {
		tz = lexer.New(text)
	} else {
		tz = lexer.NewWithFilename(text, path)
	}

	for {
		tok, err := tz.Next()
		if err == io.EOF {
			return 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Fprintln(out, tok)
	}
}

func printHelp() {
	fmt.Printf(`erltok - Erlang source tokenizer, version %s

Usage:
  erltok [options] <file>
  erltok [options] -
  erltok repl

Commands:
  repl                  Start an interactive tokenizer REPL

Options:
  -h, -help             Show this help message
  -V, -version          Show version information
  -encoding <name>      Source encoding: utf-8 (default) or latin1
  -watch                Re-tokenize the file whenever it changes on disk

Examples:
  erltok hello.erl             Tokenize a file
  cat hello.erl | erltok -     Tokenize from stdin
  erltok -encoding latin1 old.erl
  erltok -watch server.erl     Re-tokenize on every save
  erltok repl                  Start the interactive REPL
`, Version)
}
