// Command ccdwarf compiles a single source file to GNU AT&T x86-64
// assembly, optionally emitting DWARF v4 debug sections alongside it.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/klauspost/asmfmt"

	"github.com/ccdwarf/ccdwarf/internal/block"
	"github.com/ccdwarf/ccdwarf/internal/codegen/x86_64"
	"github.com/ccdwarf/ccdwarf/internal/dwarf"
	"github.com/ccdwarf/ccdwarf/internal/encoding"
	"github.com/ccdwarf/ccdwarf/internal/lexer"
	"github.com/ccdwarf/ccdwarf/internal/token"
)

var options struct {
	Output    string `short:"o" long:"output" description:"assembly output path (defaults to stdout)"`
	Debug     bool   `long:"debug" description:"also emit .debug_info/.debug_abbrev/.debug_str sections"`
	TokensCSV string `long:"tokens-csv" description:"also dump the token stream to this CSV path"`
	Format    bool   `long:"format" description:"best-effort tidy the generated assembly with asmfmt"`
	Args      struct {
		Source string `positional-arg-name:"file.c" required:"true"`
	} `positional-args:"yes"`
}

func main() {
	if _, err := flags.Parse(&options); err != nil {
		os.Exit(1) // go-flags already printed the usage/error text
	}

	src, err := os.ReadFile(options.Args.Source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read error: %v\n", err)
		os.Exit(1)
	}

	toks := lexer.Clean(lexer.Scan(string(src)))

	if options.TokensCSV != "" {
		if err := writeTokensCSV(options.TokensCSV, toks); err != nil {
			fmt.Fprintf(os.Stderr, "tokens-csv error: %v\n", err)
			os.Exit(1)
		}
	}

	root := block.Parse(toks)

	asm := x86_64.New().Generate(root)
	if options.Debug {
		asm += "\n" + emitDebugInfo(options.Args.Source, root)
	}

	if options.Format {
		if formatted, err := asmfmt.Format(strings.NewReader(asm)); err == nil {
			asm = string(formatted)
		}
		// asmfmt targets Go's Plan 9 assembler dialect, not GNU AT&T; a
		// parse failure here is expected for most output and simply
		// falls back to the unformatted text.
	}

	if options.Output == "" {
		fmt.Print(asm)
		return
	}
	if err := os.WriteFile(options.Output, []byte(asm), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "write error: %v\n", err)
		os.Exit(1)
	}
}

// emitDebugInfo builds a minimal compile-unit DIE for the whole
// translation unit, per this package's note that a debug-aware generator
// mode is documented, not a full line-table emitter.
func emitDebugInfo(sourcePath string, root *block.Block) string {
	cwd, _ := os.Getwd()
	cu := dwarf.BuildCompileUnit(filepath.Base(sourcePath), cwd, "ccdwarf", dwarf.DW_LANG_C, ".Ltext0", ".Letext0", 8)
	for _, c := range root.Children {
		if c.Kind == block.Function {
			name := x86_64.FunctionName(c.Instruction.Tokens)
			if name == "" {
				continue
			}
			decl, _ := c.Instruction.LineRange()
			cu.AddChild(dwarf.BuildSubprogramDIE(name, decl, name, name+"_end", 8, true))
		}
	}
	tree := dwarf.NewTree().SetRoot(cu)
	return dwarf.EmitCompilationUnit(tree, 8)
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
