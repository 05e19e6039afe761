package block

import "github.com/ccdwarf/ccdwarf/internal/token"

// Classify walks the tree bottom-up-irrelevant (classification only reads
// each block's own instruction) and assigns Kind from the leading
// non-null token — classification is deterministic from the leading token
// alone. Compound blocks
// (brace groups with no instruction of their own) keep Common.
func Classify(root *Block) {
	classifyNode(root)
	for _, c := range root.Children {
		Classify(c)
	}
}

func classifyNode(b *Block) {
	lead, ok := b.Instruction.Leading()
	if !ok {
		b.Kind = Common
		return
	}
	switch lead.Type {
	case token.KwIf:
		b.Kind = If
	case token.KwElse:
		b.Kind = Else
	case token.KwWhile:
		b.Kind = While
	case token.KwFor:
		b.Kind = For
	case token.KwDo:
		b.Kind = Do
	case token.KwReturn:
		b.Kind = Return
	case token.KwBreak:
		b.Kind = Break
	case token.KwContinue:
		b.Kind = Continue
	case token.KwSwitch:
		b.Kind = Switch
	case token.KwCase:
		b.Kind = Case
	case token.KwDefault:
		b.Kind = Default
	case token.KwStruct:
		b.Kind = Struct
	case token.KwUnion:
		b.Kind = Union
	case token.KwEnum:
		b.Kind = Enum
	case token.KwStatic, token.KwExtern:
		b.Kind = classifyDeclOrFunc(b)
	default:
		if lead.Type.IsType() {
			b.Kind = classifyDeclOrFunc(b)
		} else {
			b.Kind = Common
		}
	}
}

// classifyDeclOrFunc decides Function vs VarDecl for a block whose
// instruction leads with a primitive type keyword (optionally preceded by
// a storage keyword): a header like "int main(int argc" does not end in
// ';' so it is a function; "int x;" or "int x = 1;" does, so it is a
// declaration.
func classifyDeclOrFunc(b *Block) Kind {
	if b.Instruction.EndsWithSemicolon() {
		return VarDecl
	}
	return Function
}
