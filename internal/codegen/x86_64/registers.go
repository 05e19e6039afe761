package x86_64

// Register is one of the 16 general-purpose x86-64 registers, indexed by
// its 64-bit name for use as a map/array key across the width tables
// below. Grounded on the register-name-table idea in
// tinyrange-ccomp/internal/codegen/x86_64/ra.go's allocableRegs, scaled
// down from a linear-scan allocator's pool to this package's fixed
// 16-entry enumeration.
type Register int

const (
	AX Register = iota
	BX
	CX
	DX
	SI
	DI
	SP
	BP
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
)

// name8/name32/name64 are indexed by Register and give the byte/dword/
// qword alias, selected by memory_size (1, 4, or 8) per this package's
// load policy.
var name8 = [...]string{"%al", "%bl", "%cl", "%dl", "%sil", "%dil", "%spl", "%bpl",
	"%r8b", "%r9b", "%r10b", "%r11b", "%r12b", "%r13b", "%r14b", "%r15b"}

var name32 = [...]string{"%eax", "%ebx", "%ecx", "%edx", "%esi", "%edi", "%esp", "%ebp",
	"%r8d", "%r9d", "%r10d", "%r11d", "%r12d", "%r13d", "%r14d", "%r15d"}

var name64 = [...]string{"%rax", "%rbx", "%rcx", "%rdx", "%rsi", "%rdi", "%rsp", "%rbp",
	"%r8", "%r9", "%r10", "%r11", "%r12", "%r13", "%r14", "%r15"}

// regName returns the alias of r sized to width bytes (1, 4, or 8).
func regName(r Register, width int) string {
	switch width {
	case 1:
		return name8[r]
	case 4:
		return name32[r]
	default:
		return name64[r]
	}
}

// movSuffix returns the AT&T mnemonic suffix for a move of the given
// width: movb/movl/movq.
func movSuffix(width int) string {
	switch width {
	case 1:
		return "movb"
	case 4:
		return "movl"
	default:
		return "movq"
	}
}

// scratchA and scratchB are the only two registers the generator ever
// uses as temporaries: no general register allocation is performed.
const (
	scratchA = AX
	scratchB = R10
)

// argRegs is the System V AMD64 integer argument register order, up to
// the six-register limit this codegen assumes; a call with more arguments
// is not supported.
var argRegs = []Register{DI, SI, DX, CX, R8, R9}
