package x86_64

import (
	"github.com/ccdwarf/ccdwarf/internal/block"
	"github.com/ccdwarf/ccdwarf/internal/symtable"
	"github.com/ccdwarf/ccdwarf/internal/token"
)

// genVarDecl implements this package's Variable declaration case: a
// global at scope depth ≤ 1 goes to .bss; anything else is stack space,
// optionally initialized in place.
func (g *CodeGen) genVarDecl(b *block.Block) {
	d := parseDecl(b.Instruction.Tokens)
	sym := &symtable.Symbol{
		Name:         d.Name,
		Base:         d.Base,
		PointerDepth: d.PointerDepth,
		IsArray:      d.IsArray,
		ArrayLen:     d.ArrayLen,
	}
	size := sym.MemorySize()

	if g.syms.Depth() <= 1 {
		sym.Global = true
		g.syms.Declare(sym)
		g.emitLine(".bss")
		g.emitLine("\t.align 16")
		g.emit("\t.type %s, @object\n", sym.Name)
		g.emit("\t.size %s, %d\n", sym.Name, size)
		g.emit(".globl %s\n", sym.Name)
		g.emit("%s:\n", sym.Name)
		g.emit("\t.zero %d\n", size)
		return
	}

	before := g.syms.CurrentFrame().AllocSize
	g.declareLocal(sym, size)
	delta := g.syms.CurrentFrame().AllocSize - before
	if delta != 0 {
		g.emit("\taddq $-%d, %%rsp\n", delta)
	}
	if len(d.Init) > 0 {
		g.storeExprInto(sym, d.Init)
	}
}

// storeExprInto evaluates toks (an identifier, literal, string literal,
// or unary/binary expression) and stores the result into sym.
func (g *CodeGen) storeExprInto(sym *symtable.Symbol, toks []token.Token) {
	width := sym.MemorySize()
	if len(toks) == 1 && toks[0].Type == token.DoubleQuote {
		label := g.internString(toks[0].Text)
		g.emit("\tleaq %s(%%rip), %s\n", label, regName(scratchA, 8))
		g.storeReg(sym, scratchA)
		return
	}
	g.loadIntoReg(toks, scratchA, width)
	g.storeReg(sym, scratchA)
}

// genReturn implements this package's Return case: load the return
// value (if any) into %rax, unwind every byte subtracted from %rsp
// since function entry, and ret.
func (g *CodeGen) genReturn(b *block.Block) {
	toks := b.Instruction.Tokens
	// Strip leading `return` and trailing `;`.
	if len(toks) > 0 && toks[len(toks)-1].Type == token.Semi {
		toks = toks[:len(toks)-1]
	}
	if len(toks) > 0 {
		toks = toks[1:]
	}
	if len(toks) > 0 {
		g.loadIntoReg(toks, scratchA, 8)
	}
	total := g.syms.TotalActiveAlloc()
	if total != 0 {
		g.emit("\taddq $%d, %%rsp\n", total)
	}
	g.emitLine("\tret")
}
