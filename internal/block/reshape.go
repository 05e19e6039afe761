package block

import "github.com/ccdwarf/ccdwarf/internal/diag"

// Reshape attaches the body block of if/else/while/for/do/function
// headers to their header node. Recurses first so nested compounds are
// reshaped before their parent's own reshape pass runs (the pass only
// ever looks at a node's immediate children).
func Reshape(root *Block) {
	for _, c := range root.Children {
		Reshape(c)
	}
	root.Children = reshapeChildren(root.Children)
}

func reshapeChildren(children []*Block) []*Block {
	var out []*Block
	for i := 0; i < len(children); i++ {
		c := children[i]
		switch c.Kind {
		case Function, If, Else, For, While:
			if c.Instruction.EndsWithSemicolon() {
				// A forward declaration or prototype; no body to attach.
				out = append(out, c)
				continue
			}
			if i+1 >= len(children) {
				diag.Internal("%s header at line %d has no body", c.Kind, headerLine(c))
			}
			body := children[i+1]
			c.Children = append(c.Children, body)
			out = append(out, c)
			i++
		case Do:
			if i+2 >= len(children) {
				diag.Internal("do header at line %d is missing body/condition", headerLine(c))
			}
			body := children[i+1]
			cond := children[i+2]
			c.Children = append(c.Children, body, cond)
			out = append(out, c)
			i += 2
		default:
			out = append(out, c)
		}
	}
	return out
}

func headerLine(b *Block) int {
	if t, ok := b.Instruction.Leading(); ok {
		return t.Line
	}
	return 0
}
