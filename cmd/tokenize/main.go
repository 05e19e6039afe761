// Command tokenize lexes a C source file and dumps its token stream
// (including whitespace and comment tokens) to tokens.csv, for inspecting
// what the scanner saw after re-labeling but before cleaning discards the
// null tokens.
package main

import (
	"fmt"
	"os"

	"github.com/ccdwarf/ccdwarf/internal/encoding"
	"github.com/ccdwarf/ccdwarf/internal/lexer"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <file>\n", os.Args[0])
		os.Exit(1)
	}

	src, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "read error: %v\n", err)
		os.Exit(1)
	}

	toks := lexer.Scan(string(src))

	fout, err := os.Create("tokens.csv")
	if err != nil {
		fmt.Fprintf(os.Stderr, "create error: %v\n", err)
		os.Exit(1)
	}
	defer fout.Close()

	for _, t := range toks {
		fmt.Fprintf(fout, "\"%s\",%d,%s\n", encoding.EscapeString(t.Text), t.Line, t.Type)
	}
}
