package x86_64

import (
	"github.com/ccdwarf/ccdwarf/internal/diag"
	"github.com/ccdwarf/ccdwarf/internal/symtable"
	"github.com/ccdwarf/ccdwarf/internal/token"
)

// genStatement dispatches a leaf instruction's tokens by shape, per
// this package's "Instruction codegen" table: calls, call-assignments,
// pointer stores, increment/decrement, and plain/unary/binary
// assignment.
func (g *CodeGen) genStatement(toks []token.Token) {
	toks = stripSemi(toks)
	if len(toks) == 0 {
		return
	}
	if isCallShape(toks) {
		g.genCallStatement(toks, nil)
		return
	}
	if toks[0].Type == token.OpStar {
		g.genPointerStore(toks)
		return
	}
	if len(toks) >= 2 && toks[0].Type == token.Ident {
		switch toks[1].Type {
		case token.OpPlusPlus, token.OpMinusMinus:
			g.genIncDec(toks[0], toks[1].Type)
			return
		case token.OpAssign:
			rhs := toks[2:]
			sym := g.resolve(toks[0].Text, toks[0].Line)
			if isCallShape(rhs) {
				g.genCallStatement(rhs, sym)
				return
			}
			g.storeExprInto(sym, rhs)
			return
		case token.OpPlusAssign, token.OpMinusAssign, token.OpStarAssign,
			token.OpSlashAssign, token.OpPercentAssign, token.OpAmpAssign,
			token.OpPipeAssign, token.OpCaretAssign:
			g.genCompoundAssign(toks[0], toks[1].Type, toks[2:])
			return
		}
	}
	diag.Fatalf(toks[0].Line, "unrecognized statement shape starting with %q", toks[0].Text)
}

func stripSemi(toks []token.Token) []token.Token {
	if len(toks) > 0 && toks[len(toks)-1].Type == token.Semi {
		return toks[:len(toks)-1]
	}
	return toks
}

// isCallShape reports whether toks looks like `name ( args... )`.
func isCallShape(toks []token.Token) bool {
	return len(toks) >= 3 &&
		toks[0].Type == token.Ident &&
		toks[1].Type == token.LParen &&
		toks[len(toks)-1].Type == token.RParen
}

// genCallStatement implements this package's `f(args)` and
// `x = f(args)` cases: load each argument into its System V register in
// declaration order, call, and optionally store %rax into result.
func (g *CodeGen) genCallStatement(toks []token.Token, result *symtable.Symbol) {
	name := toks[0].Text
	inner := toks[2 : len(toks)-1]
	args := splitTopLevelCommas(inner)
	if len(args) > len(argRegs) {
		diag.Fatalf(toks[0].Line, "call to %s passes more than 6 arguments", name)
	}
	for i, a := range args {
		g.loadIntoReg(a, argRegs[i], 8)
	}
	g.emit("\tcall %s\n", name)
	if result != nil {
		g.storeReg(result, scratchA)
	}
}

func splitTopLevelCommas(toks []token.Token) [][]token.Token {
	var out [][]token.Token
	depth := 0
	start := 0
	for i, t := range toks {
		switch t.Type {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
		case token.Comma:
			if depth == 0 {
				out = append(out, toks[start:i])
				start = i + 1
			}
		}
	}
	if start < len(toks) {
		out = append(out, toks[start:])
	}
	return out
}

// genPointerStore implements this package's `*p = v` case: the move
// width is derived from the pointee's byte size, per Open Question (b)'s
// resolution (pointer-depth > 1 always uses 8; a single-level pointer
// uses its base type's width; anything else is a fatal semantic error).
func (g *CodeGen) genPointerStore(toks []token.Token) {
	if len(toks) < 4 || toks[1].Type != token.Ident || toks[2].Type != token.OpAssign {
		diag.Fatalf(toks[0].Line, "malformed pointer store")
	}
	sym := g.resolve(toks[1].Text, toks[1].Line)
	if sym.PointerDepth == 0 {
		diag.Fatalf(toks[1].Line, "%q is not a pointer", toks[1].Text)
	}
	pointee := symtable.Symbol{Base: sym.Base, PointerDepth: sym.PointerDepth - 1}
	width := pointee.MemorySize()
	g.loadIntoReg(toks[3:], scratchB, width)
	g.loadSym(sym, scratchA)
	g.emit("\t%s %s, (%s)\n", movSuffix(width), regName(scratchB, width), regName(scratchA, 8))
}

// genIncDec implements this package's `x++`/`x--` case, scaling the
// step for pointer arithmetic per Open Question (b)'s resolution.
func (g *CodeGen) genIncDec(ident token.Token, op token.Type) {
	sym := g.resolve(ident.Text, ident.Line)
	step := incStep(sym, ident.Line)
	delta := step
	if op == token.OpMinusMinus {
		delta = -step
	}
	g.loadSym(sym, scratchA)
	g.emit("\taddq $%d, %s\n", delta, regName(scratchA, 8))
	g.storeReg(sym, scratchA)
}

func incStep(sym *symtable.Symbol, line int) int {
	switch {
	case sym.PointerDepth == 0:
		return 1
	case sym.PointerDepth >= 2:
		return 8
	default:
		switch sym.Base {
		case symtable.Bool, symtable.Char:
			return 1
		case symtable.Int:
			return 4
		default:
			diag.Fatalf(line, "pointer arithmetic on %s* is not supported", sym.Base)
			return 0
		}
	}
}

// genCompoundAssign desugars `x op= y` into `x = x op y`, reusing the
// binary-expression codegen path.
func (g *CodeGen) genCompoundAssign(ident token.Token, op token.Type, rhs []token.Token) {
	sym := g.resolve(ident.Text, ident.Line)
	width := sym.MemorySize()
	binOp := compoundToBinary(op)
	g.loadSym(sym, scratchA)
	g.loadIntoReg(rhs, scratchB, width)
	g.applyBinOp(binOp, scratchA, width)
	g.storeReg(sym, scratchA)
}

func compoundToBinary(op token.Type) token.Type {
	switch op {
	case token.OpPlusAssign:
		return token.OpPlus
	case token.OpMinusAssign:
		return token.OpMinus
	case token.OpStarAssign:
		return token.OpStar
	case token.OpSlashAssign:
		return token.OpSlash
	case token.OpPercentAssign:
		return token.OpPercent
	case token.OpAmpAssign:
		return token.AddrOrAnd
	case token.OpPipeAssign:
		return token.BitwiseOr
	case token.OpCaretAssign:
		return token.OpCaret
	default:
		diag.Internal("codegen: unsupported compound assignment %s", op)
		return token.Null
	}
}
