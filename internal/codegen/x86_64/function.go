package x86_64

import (
	"github.com/ccdwarf/ccdwarf/internal/block"
	"github.com/ccdwarf/ccdwarf/internal/diag"
	"github.com/ccdwarf/ccdwarf/internal/symtable"
)

// genFunction implements this package's Function case: section/linkage
// directives, a fresh scope for the parameter list, argument-register
// spills, the body, and an implicit `ret` if the body falls through
// without an explicit return. Parameters are declared through
// declareLocal exactly like body locals, so each spill reserves its own
// stack space and shares one offset convention with the rest of the
// frame; Leave()'s single addq at the end unwinds parameters and locals
// together.
func (g *CodeGen) genFunction(b *block.Block) {
	fn := parseFunctionHeader(b.Instruction.Tokens)
	if b.Instruction.EndsWithSemicolon() {
		return // a bare prototype has no body to generate
	}

	g.emitLine(".text")
	g.emit(".globl %s\n", fn.Name)
	g.emit("\t.type %s, @function\n", fn.Name)
	g.emit("%s:\n", fn.Name)
	g.emitLine("\tendbr64")

	g.syms.Enter()
	for i, p := range fn.Params {
		if i >= len(argRegs) {
			diag.Fatalf(firstLine(b), "function %s takes more than 6 integer parameters", fn.Name)
		}
		sym := &symtable.Symbol{Name: p.Name, Base: p.Base, PointerDepth: p.PointerDepth}
		width := sym.MemorySize()
		before := g.syms.CurrentFrame().AllocSize
		g.declareLocal(sym, width)
		delta := g.syms.CurrentFrame().AllocSize - before
		if delta != 0 {
			g.emit("\taddq $-%d, %%rsp\n", delta)
		}
		g.emit("\tmov %s, %s\n", regName(argRegs[i], width), g.operand(sym, width))
	}
	g.genBlock(bodyOf(b))
	allocSize := g.syms.Leave()
	if allocSize != 0 {
		g.emit("\taddq $%d, %%rsp\n", allocSize)
	}
	g.emitLine("\tret")
}
