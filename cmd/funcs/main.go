// Command funcs lists every top-level function in a C source file as
// CSV rows of header_text, start_line, end_line: the function's full
// header instruction text and the first and last line that header spans
// (the body's lines are not included).
package main

import (
	"fmt"
	"os"

	"github.com/ccdwarf/ccdwarf/internal/block"
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

	toks := lexer.Clean(lexer.Scan(string(src)))
	root := block.Parse(toks)

	for _, c := range root.Children {
		if c.Kind != block.Function {
			continue
		}
		start, end := c.Instruction.LineRange()
		fmt.Printf("%s, %d, %d\n", c.Instruction.Text(), start, end)
	}
}
