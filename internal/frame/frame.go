// Package frame implements a fragmentation-free stack-slot allocator:
// three free-list queues (1/4/8 bytes) over a monotone,
// stack-pointer-relative byte arena.
package frame

import "github.com/samber/lo"

// StackFrame allocates byte-aligned slots within one lexical scope's
// activation record. Every returned offset is stack-pointer-relative: the
// physical stack pointer only moves when AllocSize grows, so a single
// `addq $AllocSize, %rsp` reclaims the whole frame on scope exit.
type StackFrame struct {
	AllocSize int
	InitialSP int // the parent frame's AllocSize at the moment this frame was entered

	byteFree  []int
	wordFree  []int
	dwordFree []int
}

// New returns a fresh frame nested inside a parent whose current
// allocation size is parentAllocSize (0 for the outermost/global frame).
func New(parentAllocSize int) *StackFrame {
	return &StackFrame{InitialSP: parentAllocSize}
}

// Alloc reserves size bytes and returns their stack-pointer-relative
// offset, routing to the byte/word/dword allocator per this package's
// sizing rule.
func (f *StackFrame) Alloc(size int) int {
	switch {
	case size <= 1:
		return f.allocByte()
	case size <= 4:
		return f.allocWord()
	case size <= 8:
		return f.allocDword()
	default:
		return f.allocBulk(size)
	}
}

// allocDword serves an 8-byte slot from the free list, or grows the frame
// by 16 bytes and enqueues the unused 8-byte companion. Every returned
// offset is the *high* (far) boundary of the slot it names — the
// distance from the frame's current top down to which the slot's bytes
// extend — matching the load policy's `TotalActiveAlloc() - sym.Offset`.
func (f *StackFrame) allocDword() int {
	if len(f.dwordFree) > 0 {
		off := f.dwordFree[0]
		f.dwordFree = f.dwordFree[1:]
		return off
	}
	f.AllocSize += 16
	pair := splitInHalf(f.AllocSize, 8)
	f.dwordFree = append(f.dwordFree, pair.A)
	return pair.B
}

// allocWord serves a 4-byte slot from the free list, or splits a fresh
// dword into two words, enqueuing the companion.
func (f *StackFrame) allocWord() int {
	if len(f.wordFree) > 0 {
		off := f.wordFree[0]
		f.wordFree = f.wordFree[1:]
		return off
	}
	d := f.allocDword()
	pair := splitInHalf(d, 4)
	f.wordFree = append(f.wordFree, pair.A)
	return pair.B
}

// allocByte serves a 1-byte slot from the free list, or splits a fresh
// word into a byte and three unused companion bytes.
func (f *StackFrame) allocByte() int {
	if len(f.byteFree) > 0 {
		off := f.byteFree[0]
		f.byteFree = f.byteFree[1:]
		return off
	}
	w := f.allocWord()
	ret, rest := splitOffOneByte(w)
	f.byteFree = append(f.byteFree, rest...)
	return ret
}

// allocBulk handles arrays and other allocations wider than 8 bytes:
// round up to a 16-byte multiple and grow, bypassing the free lists
// entirely (nothing to reclaim mid-frame for a bulk allocation). Like
// the smaller allocators, the returned offset is the new high boundary
// of the frame after growth.
func (f *StackFrame) allocBulk(size int) int {
	rounded := roundUp16(size)
	f.AllocSize += rounded
	return f.AllocSize
}

func roundUp16(n int) int {
	return (n + 15) &^ 15
}

// splitInHalf divides the halfWidth*2-wide block whose high boundary is
// addr into two halfWidth-wide halves, returning (near-half, far-half)
// as an (offset, offset) pair. Both offsets are high-boundary distances:
// the near half's is addr-halfWidth, the far half's is addr itself
// (unchanged — it is already the frame's current high boundary). The
// far half is returned to the caller as the freshly allocated slot; the
// near half is the one enqueued for later reuse. Modeled with lo.Tuple2
// in place of a hand-rolled two-field struct, the pattern
// other_examples/ajroetker-goat's amd64 parser uses for its own
// (offset, param) pairs.
func splitInHalf(addr, halfWidth int) lo.Tuple2[int, int] {
	return lo.Tuple2[int, int]{A: addr - halfWidth, B: addr}
}

// splitOffOneByte carves the nearest byte off a 4-byte word whose high
// boundary is w, returning it (unchanged, the byte closest to w) plus
// the three lower byte offsets to enqueue.
func splitOffOneByte(w int) (int, []int) {
	return w, []int{w - 1, w - 2, w - 3}
}
