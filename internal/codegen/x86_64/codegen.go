// Package x86_64 walks a reshaped block tree and emits GNU AT&T-syntax
// x86-64 assembly. There is no intermediate
// representation: each block kind and each instruction token-shape is
// translated directly into text, using at most two scratch registers
// (%rax, %r10).
package x86_64

import (
	"fmt"
	"strings"

	"github.com/ccdwarf/ccdwarf/internal/block"
	"github.com/ccdwarf/ccdwarf/internal/diag"
	"github.com/ccdwarf/ccdwarf/internal/symtable"
	"github.com/ccdwarf/ccdwarf/internal/token"
)

// loopLabels records the branch targets `break`/`continue` resolve to
// inside the innermost enclosing loop.
type loopLabels struct {
	continueLabel string
	breakLabel    string
}

// CodeGen holds all of the process-local mutable state the generator
// needs, per this package's note that global mutable counters should be
// fields of their owning component rather than package globals.
type CodeGen struct {
	out    strings.Builder
	rodata strings.Builder

	syms *symtable.SymbolTable

	labelCount  int
	stringCount int
	strings     map[string]string // literal text -> its .LC<n> label

	loops []loopLabels
}

// New returns a generator with an empty global scope, ready to walk a
// compilation unit's root block.
func New() *CodeGen {
	return &CodeGen{
		syms:    symtable.New(),
		strings: map[string]string{},
	}
}

// Generate walks root and returns the full assembly text: interned
// string literals in .rodata (if any) followed by the code stream. The
// root block itself never gets its own scope — symtable.New already
// establishes the sole global scope this package's state machine
// terminates in, and root's children (top-level functions and
// declarations) run directly inside it.
func (g *CodeGen) Generate(root *block.Block) string {
	for _, c := range root.Children {
		g.genBlock(c)
	}
	var out strings.Builder
	if g.rodata.Len() > 0 {
		out.WriteString(".section .rodata\n")
		out.WriteString(g.rodata.String())
	}
	out.WriteString(g.out.String())
	return out.String()
}

func (g *CodeGen) emit(format string, args ...any) {
	fmt.Fprintf(&g.out, format, args...)
}

func (g *CodeGen) emitLine(line string) {
	g.out.WriteString(line)
	g.out.WriteByte('\n')
}

// newLabel returns a fresh, monotone .L<n> branch label.
func (g *CodeGen) newLabel() string {
	l := fmt.Sprintf(".L%d", g.labelCount)
	g.labelCount++
	return l
}

func (g *CodeGen) genBlock(b *block.Block) {
	switch b.Kind {
	case block.Common:
		if b.Leaf() {
			g.genStatement(b.Instruction.Tokens)
		} else {
			g.genCommon(b)
		}
	case block.Function:
		g.genFunction(b)
	case block.While:
		g.genWhile(b)
	case block.For:
		g.genFor(b)
	case block.Do:
		g.genDo(b)
	case block.If:
		g.genIf(b)
	case block.IfElse:
		g.genIfElse(b)
	case block.VarDecl:
		g.genVarDecl(b)
	case block.Return:
		g.genReturn(b)
	case block.Break:
		g.genBreak(b)
	case block.Continue:
		g.genContinue(b)
	case block.Struct, block.Union, block.Enum, block.Switch, block.Case, block.Default:
		// Parsed for tree completeness but not lowered, per this package's
		// non-goals (no aggregate types, no switch codegen).
	default:
		diag.Internal("codegen: unhandled block kind %s at line %d", b.Kind, firstLine(b))
	}
}

// genCommon implements the "Common root" case: every brace-delimited
// compound gets its own scope and frame, reclaimed with a single addq
// on the way out.
func (g *CodeGen) genCommon(b *block.Block) {
	g.syms.Enter()
	for _, c := range b.Children {
		g.genBlock(c)
	}
	allocSize := g.syms.Leave()
	if allocSize != 0 {
		g.emit("\taddq $%d, %%rsp\n", allocSize)
	}
}

func firstLine(b *block.Block) int {
	if t, ok := b.Instruction.Leading(); ok {
		return t.Line
	}
	return 0
}

// bodyOf returns a header block's single reshaped body child.
func bodyOf(b *block.Block) *block.Block {
	if len(b.Children) == 0 {
		diag.Internal("codegen: header block at line %d has no body", firstLine(b))
	}
	return b.Children[0]
}

// condTokens strips the leading keyword and surrounding parentheses off
// a control-flow header instruction, e.g. `while ( x )` -> `x`.
func condTokens(instr block.Instruction) []token.Token {
	toks := instr.Tokens
	if len(toks) == 0 {
		return nil
	}
	i := 1 // skip if/while/for keyword
	if i < len(toks) && toks[i].Type == token.LParen {
		i++
	}
	depth := 1
	j := i
	for j < len(toks) && depth > 0 {
		switch toks[j].Type {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
			if depth == 0 {
				return toks[i:j]
			}
		}
		j++
	}
	return toks[i:]
}

// splitForHeader breaks a `for ( init ; cond ; post )` header into its
// three clauses, each with its own semicolon (if present) stripped.
func splitForHeader(toks []token.Token) (init, cond, post []token.Token) {
	if len(toks) == 0 {
		return nil, nil, nil
	}
	i := 1
	if i < len(toks) && toks[i].Type == token.LParen {
		i++
	}
	depth := 1
	end := len(toks)
	for j := i; j < len(toks); j++ {
		switch toks[j].Type {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
			if depth == 0 {
				end = j
			}
		}
		if depth == 0 {
			break
		}
	}
	body := toks[i:end]
	var clauses [][]token.Token
	start := 0
	for k, t := range body {
		if t.Type == token.Semi {
			clauses = append(clauses, body[start:k])
			start = k + 1
		}
	}
	clauses = append(clauses, body[start:])
	for len(clauses) < 3 {
		clauses = append(clauses, nil)
	}
	return clauses[0], clauses[1], clauses[2]
}
