// Command parse reshapes a C source file into its block tree and dumps
// the tree's structure to stdout, alongside a tokens.csv of the cleaned
// token stream that fed the parse.
package main

import (
	"fmt"
	"os"

	"github.com/sanity-io/litter"

	"github.com/ccdwarf/ccdwarf/internal/block"
	"github.com/ccdwarf/ccdwarf/internal/encoding"
	"github.com/ccdwarf/ccdwarf/internal/lexer"
	"github.com/ccdwarf/ccdwarf/internal/token"
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

	toks := lexer.Clean(lexer.Scan(string(src)))

	if err := writeTokensCSV("tokens.csv", toks); err != nil {
		fmt.Fprintf(os.Stderr, "write error: %v\n", err)
		os.Exit(1)
	}

	root := block.Parse(toks)
	litter.Dump(root)
}

func writeTokensCSV(path string, toks []token.Token) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, t := range toks {
		fmt.Fprintf(f, "\"%s\",%d,%s\n", encoding.EscapeString(t.Text), t.Line, t.Type)
	}
	return nil
}
