package symtable

// BaseType tags the primitive type a Symbol was declared with.
type BaseType int

const (
	Void BaseType = iota
	Bool
	Char
	Int
	Function
)

func (b BaseType) String() string {
	switch b {
	case Void:
		return "void"
	case Bool:
		return "bool"
	case Char:
		return "char"
	case Int:
		return "int"
	case Function:
		return "function"
	default:
		return "unknown"
	}
}

func baseSize(b BaseType) int {
	switch b {
	case Bool, Char:
		return 1
	case Int:
		return 4
	case Function:
		return 8
	default:
		return 0
	}
}

// Symbol is a declared name: its type shape, whether it lives in a global
// (.bss) slot or a stack frame, and if the latter, a weak reference
// (FrameID) to the arena-owned frame that carved out its Offset. Per
// this package's "Stack-frame ownership" note, FrameID stays valid even
// after the frame's owning scope has been popped.
type Symbol struct {
	Name         string
	Base         BaseType
	PointerDepth int
	IsArray      bool
	ArrayLen     int
	Global       bool
	Offset       int
	FrameID      int
}

// MemorySize returns the byte width of one instance of the symbol: a
// pointer of any depth is always machine-word sized; otherwise it is the
// base type's width, multiplied by array length, rounded up to a 4-byte
// multiple without ever promoting a lone byte (bool/char scalars stay 1).
func (s Symbol) MemorySize() int {
	if s.PointerDepth > 0 {
		return 8
	}
	size := baseSize(s.Base)
	if s.IsArray {
		size *= s.ArrayLen
	}
	if size <= 1 {
		return size
	}
	return (size + 3) &^ 3
}
