package x86_64

import (
	"github.com/ccdwarf/ccdwarf/internal/block"
	"github.com/ccdwarf/ccdwarf/internal/diag"
	"github.com/ccdwarf/ccdwarf/internal/token"
)

// genWhile follows this package's While case: two fresh labels bracket a
// condition test and the loop body.
func (g *CodeGen) genWhile(b *block.Block) {
	enter := g.newLabel()
	leave := g.newLabel()
	g.emitLine(enter + ":")
	g.loadIntoReg(condTokens(b.Instruction), scratchA, 4)
	g.emit("\tcmp $0, %s\n", regName(scratchA, 4))
	g.emit("\tje %s\n", leave)
	g.loops = append(g.loops, loopLabels{continueLabel: enter, breakLabel: leave})
	g.genBlock(bodyOf(b))
	g.loops = g.loops[:len(g.loops)-1]
	g.emit("\tjmp %s\n", enter)
	g.emitLine(leave + ":")
}

// genFor generalizes the While case to the three-clause for header:
// `for ( init ; cond ; post )`. continue jumps to the post clause, not
// straight back to the condition test.
func (g *CodeGen) genFor(b *block.Block) {
	init, cond, post := splitForHeader(b.Instruction.Tokens)
	if len(init) > 0 {
		g.genForClause(init)
	}
	enter := g.newLabel()
	postLabel := g.newLabel()
	leave := g.newLabel()
	g.emitLine(enter + ":")
	if len(cond) > 0 {
		g.loadIntoReg(cond, scratchA, 4)
		g.emit("\tcmp $0, %s\n", regName(scratchA, 4))
		g.emit("\tje %s\n", leave)
	}
	g.loops = append(g.loops, loopLabels{continueLabel: postLabel, breakLabel: leave})
	g.genBlock(bodyOf(b))
	g.loops = g.loops[:len(g.loops)-1]
	g.emitLine(postLabel + ":")
	if len(post) > 0 {
		g.genForClause(post)
	}
	g.emit("\tjmp %s\n", enter)
	g.emitLine(leave + ":")
}

// genForClause emits a bare statement (an assignment or increment,
// typically) that appears in a for-header init/post slot, without the
// trailing semicolon the body-statement path expects.
func (g *CodeGen) genForClause(toks []token.Token) {
	g.genStatement(toks)
}

// genDo implements the reshaped Do node: children are (body, condition),
// per this package's invariant. The loop repeats while the condition is
// non-zero.
func (g *CodeGen) genDo(b *block.Block) {
	enter := g.newLabel()
	leave := g.newLabel()
	g.emitLine(enter + ":")
	g.loops = append(g.loops, loopLabels{continueLabel: enter, breakLabel: leave})
	g.genBlock(b.Children[0])
	g.loops = g.loops[:len(g.loops)-1]
	cond := condTokens(b.Children[1].Instruction)
	g.loadIntoReg(cond, scratchA, 4)
	g.emit("\tcmp $0, %s\n", regName(scratchA, 4))
	g.emit("\tjne %s\n", enter)
	g.emitLine(leave + ":")
}

// genIf implements this package's If case.
func (g *CodeGen) genIf(b *block.Block) {
	end := g.newLabel()
	g.loadIntoReg(condTokens(b.Instruction), scratchA, 4)
	g.emit("\tcmp $0, %s\n", regName(scratchA, 4))
	g.emit("\tje %s\n", end)
	g.genBlock(bodyOf(b))
	g.emitLine(end + ":")
}

// genIfElse implements this package's If-else case.
func (g *CodeGen) genIfElse(b *block.Block) {
	elseLabel := g.newLabel()
	end := g.newLabel()
	g.loadIntoReg(condTokens(b.Instruction), scratchA, 4)
	g.emit("\tcmp $0, %s\n", regName(scratchA, 4))
	g.emit("\tje %s\n", elseLabel)
	g.genBlock(b.Children[0])
	g.emit("\tjmp %s\n", end)
	g.emitLine(elseLabel + ":")
	g.genBlock(b.Children[1])
	g.emitLine(end + ":")
}

func (g *CodeGen) genBreak(b *block.Block) {
	if len(g.loops) == 0 {
		diag.Internal("break at line %d outside any loop", firstLine(b))
	}
	g.emit("\tjmp %s\n", g.loops[len(g.loops)-1].breakLabel)
}

func (g *CodeGen) genContinue(b *block.Block) {
	if len(g.loops) == 0 {
		diag.Internal("continue at line %d outside any loop", firstLine(b))
	}
	g.emit("\tjmp %s\n", g.loops[len(g.loops)-1].continueLabel)
}
