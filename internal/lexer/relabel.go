package lexer

import "github.com/ccdwarf/ccdwarf/internal/token"

// pairs lists every compound operator as (first, second, resulting type).
// Order matters where a shorter compound is a prefix of a longer one
// doesn't occur in this operator set, so a single lookahead token is
// always sufficient.
type pair struct {
	first, second token.Type
	result        token.Type
}

var compoundOps = []pair{
	{token.OpPlus, token.OpPlus, token.OpPlusPlus},
	{token.OpMinus, token.OpMinus, token.OpMinusMinus},
	{token.OpMinus, token.OpGreater, token.OpArrow},
	{token.OpAssign, token.OpAssign, token.OpEq},
	{token.OpBang, token.OpAssign, token.OpNeq},
	{token.OpGreater, token.OpAssign, token.OpGe},
	{token.OpLess, token.OpAssign, token.OpLe},
	{token.OpPlus, token.OpAssign, token.OpPlusAssign},
	{token.OpMinus, token.OpAssign, token.OpMinusAssign},
	{token.OpStar, token.OpAssign, token.OpStarAssign},
	{token.OpSlash, token.OpAssign, token.OpSlashAssign},
	{token.OpPercent, token.OpAssign, token.OpPercentAssign},
	{token.OpAmp, token.OpAssign, token.OpAmpAssign},
	{token.OpPipe, token.OpAssign, token.OpPipeAssign},
	{token.OpCaret, token.OpAssign, token.OpCaretAssign},
	{token.OpAmp, token.OpAmp, token.OpAndAnd},
	{token.OpPipe, token.OpPipe, token.OpOrOr},
	{token.OpLess, token.OpLess, token.OpShl},
	{token.OpGreater, token.OpGreater, token.OpShr},
}

// singleResolve disambiguates a one-character operator that survives
// without a matching second character into its final tag.
var singleResolve = map[token.Type]token.Type{
	token.OpAmp:   token.AddrOrAnd,
	token.OpPipe:  token.BitwiseOr,
	token.OpTilde: token.BitwiseNot,
	token.OpBang:  token.LogicalNot,
}

// relabel walks the raw token stream with one-token lookahead and (1)
// promotes Alpha tokens to keywords or Digit, and (2) merges adjacent
// one-character operators into their compound form.
func relabel(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		t := toks[i]

		if t.Type == token.Alpha {
			out = append(out, relabelAlpha(t))
			continue
		}

		if i+1 < len(toks) {
			merged, ok := tryMerge(t, toks[i+1])
			if ok {
				out = append(out, merged)
				i++
				continue
			}
		}

		if resolved, ok := singleResolve[t.Type]; ok {
			out = append(out, token.New(t.Text, resolved, t.Line))
			continue
		}

		out = append(out, t)
	}
	return out
}

func relabelAlpha(t token.Token) token.Token {
	if t.Text == "" {
		return t
	}
	if t.Text[0] >= '0' && t.Text[0] <= '9' {
		return token.New(t.Text, token.Digit, t.Line)
	}
	if kw, ok := token.Keyword(t.Text); ok {
		return token.New(t.Text, kw, t.Line)
	}
	return token.New(t.Text, token.Ident, t.Line)
}

func tryMerge(a, b token.Token) (token.Token, bool) {
	for _, p := range compoundOps {
		if a.Type == p.first && b.Type == p.second {
			return token.New(a.Text+b.Text, p.result, a.Line), true
		}
	}
	return token.Token{}, false
}
