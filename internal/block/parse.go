package block

import "github.com/ccdwarf/ccdwarf/internal/token"

// Parse runs the full pipeline: recursive-descent grouping by
// braces/semicolons, then classify, reshape, and merge. toks must already
// have null tokens dropped (lexer.Clean).
func Parse(toks []token.Token) *Block {
	p := &parser{toks: toks}
	root := &Block{Kind: Common}
	p.parseInto(root)
	Classify(root)
	Reshape(root)
	MergeIfElse(root)
	return root
}

type parser struct {
	toks []token.Token
	pos  int
}

func (p *parser) peek() (token.Token, bool) {
	if p.pos >= len(p.toks) {
		return token.Token{}, false
	}
	return p.toks[p.pos], true
}

// parseInto performs one level of recursive descent, appending children to
// parent until a matching '}' is consumed or input is exhausted (the
// top-level call). A ';' inside parentheses (a for header's clauses) does
// not end the instruction.
func (p *parser) parseInto(parent *Block) {
	var acc []token.Token
	parens := 0
	flush := func() {
		if len(acc) == 0 {
			return
		}
		parent.Children = append(parent.Children, &Block{
			Instruction: Instruction{Tokens: acc},
		})
		acc = nil
	}

	for {
		t, ok := p.peek()
		if !ok {
			flush()
			return
		}
		switch t.Type {
		case token.LBrace:
			p.pos++
			flush()
			child := &Block{FromBraces: true}
			p.parseInto(child)
			parent.Children = append(parent.Children, child)
		case token.RBrace:
			p.pos++
			flush()
			return
		case token.Semi:
			p.pos++
			acc = append(acc, t)
			if parens == 0 {
				flush()
			}
		case token.LParen, token.RParen:
			p.pos++
			acc = append(acc, t)
			if t.Type == token.LParen {
				parens++
			} else if parens > 0 {
				parens--
			}
		case token.Null:
			p.pos++
		default:
			p.pos++
			acc = append(acc, t)
		}
	}
}
