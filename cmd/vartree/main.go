// Command vartree prints each variable name in a C source file the
// first time it is seen in any enclosing scope, indented one space per
// block-nesting depth.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ccdwarf/ccdwarf/internal/block"
	"github.com/ccdwarf/ccdwarf/internal/lexer"
)

// varTable is a stack of per-scope name sets, mirroring the source's
// Enter/Leave/Query/Add scope-tracking used to print a name only the
// first time it's seen in any enclosing scope.
type varTable struct {
	scopes []map[string]bool
}

func (vt *varTable) enter() {
	vt.scopes = append(vt.scopes, map[string]bool{})
}

func (vt *varTable) leave() {
	vt.scopes = vt.scopes[:len(vt.scopes)-1]
}

func (vt *varTable) query(name string) bool {
	for _, s := range vt.scopes {
		if s[name] {
			return true
		}
	}
	return false
}

func (vt *varTable) add(name string) {
	vt.scopes[len(vt.scopes)-1][name] = true
}

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

	vt := &varTable{}
	vt.enter() // one scope open before the root block's own names are added
	printVars(root, 0, vt)
	vt.leave()
	fmt.Println()
}

func printVars(b *block.Block, depth int, vt *varTable) {
	tabs := depth - 1
	if tabs < 0 {
		tabs = 0
	}
	for _, name := range b.Instruction.VarNames() {
		if vt.query(name) {
			continue
		}
		fmt.Println(strings.Repeat(" ", tabs) + name)
		vt.add(name)
	}

	vt.enter()
	for _, c := range b.Children {
		printVars(c, depth+1, vt)
	}
	vt.leave()
}
