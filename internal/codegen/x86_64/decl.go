package x86_64

import (
	"github.com/ccdwarf/ccdwarf/internal/diag"
	"github.com/ccdwarf/ccdwarf/internal/encoding"
	"github.com/ccdwarf/ccdwarf/internal/symtable"
	"github.com/ccdwarf/ccdwarf/internal/token"
)

// declShape is the parsed shape of a variable-declaration instruction:
// `[static|extern] <type> <*...> name [ [N] ] [ = initializer ] ;`, per
// this package's Variable declaration case.
type declShape struct {
	Name         string
	Base         symtable.BaseType
	PointerDepth int
	IsArray      bool
	ArrayLen     int
	Init         []token.Token // tokens after '=', excluding the trailing ';'; empty if absent
}

func baseTypeOf(t token.Type) symtable.BaseType {
	switch t {
	case token.KwBool:
		return symtable.Bool
	case token.KwChar:
		return symtable.Char
	case token.KwVoid:
		return symtable.Void
	default:
		return symtable.Int
	}
}

// parseDecl reads a variable-declaration instruction's tokens into a
// declShape, skipping any leading storage-class keyword.
func parseDecl(toks []token.Token) declShape {
	i := 0
	for i < len(toks) && (toks[i].Type == token.KwStatic || toks[i].Type == token.KwExtern) {
		i++
	}
	if i >= len(toks) || !toks[i].Type.IsType() {
		diag.Internal("variable declaration does not start with a type keyword")
	}
	d := declShape{Base: baseTypeOf(toks[i].Type)}
	i++
	for i < len(toks) && toks[i].Type == token.OpStar {
		d.PointerDepth++
		i++
	}
	if i >= len(toks) || toks[i].Type != token.Ident {
		diag.Internal("variable declaration missing identifier")
	}
	d.Name = toks[i].Text
	i++
	if i < len(toks) && toks[i].Type == token.LBracket {
		i++
		if i >= len(toks) || toks[i].Type != token.Digit {
			diag.Internal("array declaration missing length")
		}
		n, err := encoding.ParseIntLiteral(toks[i].Text)
		if err != nil {
			diag.Internal("array length %q is not a valid integer literal: %v", toks[i].Text, err)
		}
		d.IsArray = true
		d.ArrayLen = int(n)
		i++
		if i < len(toks) && toks[i].Type == token.RBracket {
			i++
		}
	}
	if i < len(toks) && toks[i].Type == token.OpAssign {
		i++
		end := len(toks)
		if end > 0 && toks[end-1].Type == token.Semi {
			end--
		}
		d.Init = toks[i:end]
	}
	return d
}

// functionShape is a function header's parsed name and formal parameters.
type functionShape struct {
	Name   string
	Params []declShape
}

// parseFunctionHeader reads `[static] <type> name ( params... )`.
func parseFunctionHeader(toks []token.Token) functionShape {
	i := 0
	for i < len(toks) && toks[i].Type == token.KwStatic {
		i++
	}
	if i < len(toks) && toks[i].Type.IsType() {
		i++
	}
	for i < len(toks) && toks[i].Type == token.OpStar {
		i++
	}
	if i >= len(toks) || toks[i].Type != token.Ident {
		diag.Internal("function header missing name")
	}
	fn := functionShape{Name: toks[i].Text}
	i++
	if i >= len(toks) || toks[i].Type != token.LParen {
		diag.Internal("function header %q missing '('", fn.Name)
	}
	i++
	depth := 1
	var cur []token.Token
	flush := func() {
		if len(cur) == 0 {
			return
		}
		fn.Params = append(fn.Params, parseParam(cur))
		cur = nil
	}
	for i < len(toks) && depth > 0 {
		switch toks[i].Type {
		case token.LParen:
			depth++
			cur = append(cur, toks[i])
		case token.RParen:
			depth--
			if depth == 0 {
				flush()
			} else {
				cur = append(cur, toks[i])
			}
		case token.Comma:
			if depth == 1 {
				flush()
			} else {
				cur = append(cur, toks[i])
			}
		default:
			cur = append(cur, toks[i])
		}
		i++
	}
	return fn
}

// FunctionName extracts a function header instruction's declared name,
// for callers outside this package (the DWARF-emitting driver in
// cmd/ccdwarf) that need it without duplicating the header grammar.
func FunctionName(toks []token.Token) string {
	return parseFunctionHeader(toks).Name
}

func parseParam(toks []token.Token) declShape {
	i := 0
	if i >= len(toks) || !toks[i].Type.IsType() {
		diag.Internal("function parameter does not start with a type keyword")
	}
	d := declShape{Base: baseTypeOf(toks[i].Type)}
	i++
	for i < len(toks) && toks[i].Type == token.OpStar {
		d.PointerDepth++
		i++
	}
	if i < len(toks) && toks[i].Type == token.Ident {
		d.Name = toks[i].Text
	}
	return d
}
