// Package block implements a recursive-descent block-tree parser and its
// three post-passes: classify, reshape, and merge.
package block

import "github.com/ccdwarf/ccdwarf/internal/token"

// Instruction is an ordered sequence of tokens, notionally terminated by a
// semicolon (headers like "if (x)" are instructions without one).
type Instruction struct {
	Tokens []token.Token
}

// Empty reports whether the instruction carries no tokens, the shape a
// compound block (braces, no leaf line) has.
func (in Instruction) Empty() bool { return len(in.Tokens) == 0 }

// LineRange returns the first and last source line spanned by the
// instruction's tokens. Used by cmd/funcs for the two line columns of
// its per-function CSV row.
func (in Instruction) LineRange() (start, end int) {
	if in.Empty() {
		return 0, 0
	}
	start = in.Tokens[0].Line
	end = in.Tokens[0].Line
	for _, t := range in.Tokens {
		if t.Line < start {
			start = t.Line
		}
		if t.Line > end {
			end = t.Line
		}
	}
	return start, end
}

// EndsWithSemicolon reports whether the instruction's last token is a
// semicolon, the sole way to tell a function header ("int main(int argc"
// — no trailing ';') from a variable declaration ("int x;" — trailing
// ';').
func (in Instruction) EndsWithSemicolon() bool {
	if in.Empty() {
		return false
	}
	return in.Tokens[len(in.Tokens)-1].Type == token.Semi
}

// Leading returns the first token of the instruction and true, or the
// zero Token and false if the instruction is empty.
func (in Instruction) Leading() (token.Token, bool) {
	if in.Empty() {
		return token.Token{}, false
	}
	return in.Tokens[0], true
}

// Text renders the instruction back to source-like text by concatenating
// token texts, separated by single spaces. Used by dump tools and
// diagnostics, not by codegen (which walks Tokens directly).
func (in Instruction) Text() string {
	var out []byte
	for i, t := range in.Tokens {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, t.Text...)
	}
	return string(out)
}

// FunctionCalls returns the name of every identifier immediately followed
// by '(' in the instruction, i.e. every function call it mentions. Used
// by cmd/fntree to print a source file's call tree.
func (in Instruction) FunctionCalls() []string {
	var calls []string
	for i := 0; i+1 < len(in.Tokens); i++ {
		if in.Tokens[i].Type == token.Ident && in.Tokens[i+1].Type == token.LParen {
			calls = append(calls, in.Tokens[i].Text)
		}
	}
	return calls
}

// VarNames returns the identifier declared by a variable-declaration
// instruction, or the identifiers assigned to by an assignment
// instruction, for cmd/vartree's scope-tracked name dump. Declarations
// look like `<type> [*]* NAME [= ...] ;` or `<type> [*]* NAME [ N ] ;`;
// assignments look like `NAME = ...;` or `NAME ++ ;` etc. Anything else
// yields no names.
func (in Instruction) VarNames() []string {
	if in.Empty() {
		return nil
	}
	lead, _ := in.Leading()
	if lead.Type.IsType() {
		for i := 1; i < len(in.Tokens); i++ {
			if in.Tokens[i].Type == token.Ident {
				return []string{in.Tokens[i].Text}
			}
			if in.Tokens[i].Type != token.OpStar {
				break
			}
		}
		return nil
	}
	if lead.Type == token.Ident && len(in.Tokens) > 1 {
		switch in.Tokens[1].Type {
		case token.OpAssign, token.OpPlusAssign, token.OpMinusAssign,
			token.OpStarAssign, token.OpSlashAssign, token.OpPercentAssign,
			token.OpAmpAssign, token.OpPipeAssign, token.OpCaretAssign,
			token.OpPlusPlus, token.OpMinusMinus:
			return []string{lead.Text}
		}
	}
	return nil
}
