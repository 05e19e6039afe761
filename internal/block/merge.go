package block

import "github.com/ccdwarf/ccdwarf/internal/diag"

// MergeIfElse fuses an `if` child immediately followed by an `else` child
// into a single `if-else` node whose children are (then-body, else-body)
// and whose instruction is the `if`'s own. An `else` that survives this
// pass anywhere in the tree is a syntax error.
func MergeIfElse(root *Block) {
	root.Children = mergeChildren(root.Children)
	for _, c := range root.Children {
		MergeIfElse(c)
	}
}

func mergeChildren(children []*Block) []*Block {
	var out []*Block
	for i := 0; i < len(children); i++ {
		c := children[i]
		if c.Kind == If && i+1 < len(children) && children[i+1].Kind == Else {
			elseNode := children[i+1]
			thenBody := soleChild(c)
			elseBody := soleChild(elseNode)
			out = append(out, &Block{
				Instruction: c.Instruction,
				Kind:        IfElse,
				FromBraces:  c.FromBraces,
				Children:    []*Block{thenBody, elseBody},
			})
			i++
			continue
		}
		if c.Kind == Else {
			diag.Fatalf(headerLine(c), "else without matching if")
		}
		out = append(out, c)
	}
	return out
}

// soleChild returns a header block's single reshaped body, or an empty
// compound block if reshape never found one to attach (e.g. a stray
// bodyless if, already fatal earlier in the pipeline in practice).
func soleChild(b *Block) *Block {
	if len(b.Children) == 0 {
		return &Block{}
	}
	return b.Children[0]
}
