package dwarf

import (
	"fmt"

	"github.com/ccdwarf/ccdwarf/internal/encoding"
)

// Op is a single DWARF stack-machine operation inside an ExprLoc: a
// one-byte opcode optionally followed by fixed-width or LEB128 operand
// bytes. The per-opcode operand shape below follows the published DWARF
// v4 table (section 2.5), not the source's ad hoc two-string-operand
// DwarfOperation: encoding the operand's actual width lets byteSize
// compute an exact length instead of guessing from a string.
type Op struct {
	Code    DWOp
	Uconst  uint64 // operand for const1u..const8s (fixed-width bits), constu, plus_uconst
	Sconst  int64  // operand for consts, fbreg, breg0..breg31, bra, skip
	Address string // operand for DW_OP_addr: an assembler symbol or literal
}

// Const builds a plain constant-push operation, choosing the smallest
// fixed-width unsigned const opcode that holds v (const1u, const2u,
// const4u, or const8u for anything wider than 32 bits), mirroring how a
// debugger expects small immediates to be economical.
func Const(v uint64) Op {
	switch {
	case v <= 0xff:
		return Op{Code: DW_OP_const1u, Uconst: v}
	case v <= 0xffff:
		return Op{Code: DW_OP_const2u, Uconst: v}
	case v <= 0xffffffff:
		return Op{Code: DW_OP_const4u, Uconst: v}
	default:
		return Op{Code: DW_OP_const8u, Uconst: v}
	}
}

// Breg builds a `[register + offset]` location operation for DWARF
// register number reg (0-31), e.g. DW_OP_breg6 for %rbp-relative locals.
func Breg(reg uint8, offset int64) Op {
	return Op{Code: DWOp(uint8(DW_OP_breg0) + reg), Sconst: offset}
}

// Fbreg builds a frame-base-relative location, the common case for a
// local variable whose DW_AT_frame_base is DW_OP_call_frame_cfa.
func Fbreg(offset int64) Op {
	return Op{Code: DW_OP_fbreg, Sconst: offset}
}

// byteSize computes exactly how many bytes op.emit will write, per the
// opcode's known operand shape.
func (op Op) byteSize() int {
	size := 1 // opcode byte
	switch op.Code {
	case DW_OP_addr:
		size += 8
	case DW_OP_const1u, DW_OP_const1s:
		size += 1
	case DW_OP_const2u, DW_OP_const2s:
		size += 2
	case DW_OP_const4u, DW_OP_const4s:
		size += 4
	case DW_OP_const8u, DW_OP_const8s:
		size += 8
	case DW_OP_constu, DW_OP_plus_uconst:
		size += encoding.ULEB128Size(op.Uconst)
	case DW_OP_consts:
		size += encoding.SLEB128Size(op.Sconst)
	case DW_OP_fbreg:
		size += encoding.SLEB128Size(op.Sconst)
	case DW_OP_bra, DW_OP_skip:
		size += 2
	default:
		switch {
		case op.Code >= DW_OP_breg0 && op.Code < DW_OP_breg0+32:
			size += encoding.SLEB128Size(op.Sconst)
		case op.Code >= DW_OP_reg0 && op.Code < DW_OP_reg0+32:
			// no operand
		case op.Code >= DW_OP_lit0 && op.Code < DW_OP_lit0+32:
			// no operand
		}
	}
	return size
}

// emit writes op's opcode and operand bytes to the info stream and bumps
// its byte counter by exactly byteSize(), the length ExprLoc.emitInfo
// already committed to in its length prefix.
func (op Op) emit(md *MetaData) {
	fmt.Fprintf(&md.Info, "\t.byte %d\n", uint8(op.Code))
	switch op.Code {
	case DW_OP_addr:
		fmt.Fprintf(&md.Info, "\t.quad %s\n", op.Address)
	case DW_OP_const1u, DW_OP_const1s:
		fmt.Fprintf(&md.Info, "\t.byte %d\n", uint8(op.Uconst))
	case DW_OP_const2u, DW_OP_const2s:
		fmt.Fprintf(&md.Info, "\t.value %d\n", uint16(op.Uconst))
	case DW_OP_const4u, DW_OP_const4s:
		fmt.Fprintf(&md.Info, "\t.long %d\n", uint32(op.Uconst))
	case DW_OP_const8u, DW_OP_const8s:
		fmt.Fprintf(&md.Info, "\t.quad %d\n", op.Uconst)
	case DW_OP_constu, DW_OP_plus_uconst:
		fmt.Fprintf(&md.Info, "\t.uleb128 %d\n", op.Uconst)
	case DW_OP_consts, DW_OP_fbreg:
		fmt.Fprintf(&md.Info, "\t.sleb128 %d\n", op.Sconst)
	case DW_OP_bra, DW_OP_skip:
		fmt.Fprintf(&md.Info, "\t.value %d\n", int16(op.Sconst))
	default:
		if op.Code >= DW_OP_breg0 && op.Code < DW_OP_breg0+32 {
			fmt.Fprintf(&md.Info, "\t.sleb128 %d\n", op.Sconst)
		}
	}
	md.InfoSize += op.byteSize()
}
