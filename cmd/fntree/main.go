// Command fntree prints the function calls in a C source file as an
// indented tree, one tab of indent per block-nesting depth.
package main

import (
	"fmt"
	"os"
	"strings"

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
	printFuncCalls(root, 0)
}

// printFuncCalls mirrors the source's PrintIndent/indent bookkeeping,
// where indent is bumped only after a block's own calls are printed: the
// root and its immediate children both print at zero tabs, and each
// deeper level adds one.
func printFuncCalls(b *block.Block, depth int) {
	tabs := depth - 1
	if tabs < 0 {
		tabs = 0
	}
	for _, fn := range b.Instruction.FunctionCalls() {
		fmt.Println(strings.Repeat("\t", tabs) + fn)
	}
	for _, c := range b.Children {
		printFuncCalls(c, depth+1)
	}
}
