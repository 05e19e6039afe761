// Package symtable implements a lexically scoped name table: a stack of
// per-scope name maps with a parallel stack of stack-frame back-references.
package symtable

import (
	"github.com/ccdwarf/ccdwarf/internal/diag"
	"github.com/ccdwarf/ccdwarf/internal/frame"
)

// SymbolTable owns an arena of frames indexed by id (per this package's
// "Stack-frame ownership" note) plus a stack of currently active scopes.
// Popping a scope detaches its frame from the active stack but leaves it
// in the arena, so Symbols recorded against it stay valid for the rest
// of compilation.
type SymbolTable struct {
	arena  []*frame.StackFrame
	scopes []map[string]*Symbol
	active []int // arena indices, parallel to scopes
}

// New returns a table with exactly the global scope pushed, matching
// this package's terminal-state invariant (one scope survives at end of
// compilation: the one this constructor creates).
func New() *SymbolTable {
	st := &SymbolTable{}
	st.pushFrame(0)
	return st
}

func (st *SymbolTable) pushFrame(initialSP int) {
	f := frame.New(initialSP)
	id := len(st.arena)
	st.arena = append(st.arena, f)
	st.scopes = append(st.scopes, map[string]*Symbol{})
	st.active = append(st.active, id)
}

// Depth reports how many scopes are currently open, 1 for the global
// scope alone.
func (st *SymbolTable) Depth() int {
	return len(st.scopes)
}

// Enter pushes a fresh scope and frame, per this package's rule that the
// new frame's initial_sp equals the current top frame's
// initial_sp + alloc_size.
func (st *SymbolTable) Enter() {
	top := st.CurrentFrame()
	st.pushFrame(top.InitialSP + top.AllocSize)
}

// Leave pops the top scope and detaches its frame, returning the
// frame's final alloc_size so the caller can emit the matching
// `addq $<alloc_size>, %rsp` if it is non-zero. It is an internal error
// to pop the last remaining (global) scope.
func (st *SymbolTable) Leave() int {
	if len(st.scopes) <= 1 {
		diag.Internal("symtable: cannot leave the global scope")
	}
	allocSize := st.CurrentFrame().AllocSize
	n := len(st.scopes)
	st.scopes = st.scopes[:n-1]
	st.active = st.active[:n-1]
	return allocSize
}

// TotalActiveAlloc sums the AllocSize of every currently active frame:
// the total number of bytes subtracted from %rsp since function entry,
// used by the code generator's load policy as
// `current_stack_size − symbol.addr`.
func (st *SymbolTable) TotalActiveAlloc() int {
	total := 0
	for _, id := range st.active {
		total += st.arena[id].AllocSize
	}
	return total
}

// CurrentFrame returns the frame owning the innermost active scope.
func (st *SymbolTable) CurrentFrame() *frame.StackFrame {
	id := st.active[len(st.active)-1]
	return st.arena[id]
}

// Alloc reserves size bytes on the current scope's frame.
func (st *SymbolTable) Alloc(size int) int {
	return st.CurrentFrame().Alloc(size)
}

// Declare inserts sym into the innermost scope, stamping its FrameID
// with that scope's frame id so later lookups can still resolve the
// symbol's frame even after the scope is left.
func (st *SymbolTable) Declare(sym *Symbol) {
	sym.FrameID = st.active[len(st.active)-1]
	st.scopes[len(st.scopes)-1][sym.Name] = sym
}

// Lookup searches from the innermost scope outward to the global scope.
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if sym, ok := st.scopes[i][name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// Frame returns the arena-owned frame a symbol belongs to, valid even
// if that symbol's declaring scope has since been left.
func (st *SymbolTable) Frame(sym *Symbol) *frame.StackFrame {
	return st.arena[sym.FrameID]
}
