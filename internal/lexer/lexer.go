// Package lexer implements the single-pass scanner and its re-labeling
// pass: raw source bytes in, a typed Token stream with 1-based line
// attribution out.
package lexer

import (
	"github.com/ccdwarf/ccdwarf/internal/diag"
	"github.com/ccdwarf/ccdwarf/internal/token"
)

// Lexer holds the single forward cursor over the source. Grounded on
// tinyrange-ccomp's internal/lexer.Lexer (src []rune, i, ch, line, read,
// peek), extended with the null-token and quote/comment handling a
// C-like scanner requires.
type Lexer struct {
	src  []rune
	i    int
	ch   rune
	line int
}

// New returns a Lexer positioned at the first byte of src.
func New(src string) *Lexer {
	l := &Lexer{src: []rune(src), line: 1}
	l.read()
	return l
}

func (l *Lexer) read() {
	if l.i >= len(l.src) {
		l.ch = 0
		l.i = len(l.src) + 1 // keep l.i-1 one past the last consumed rune
		return
	}
	l.ch = l.src[l.i]
	l.i++
}

func (l *Lexer) peek() rune {
	if l.i >= len(l.src) {
		return 0
	}
	return l.src[l.i]
}

func isIdentChar(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// singleCharOps maps a lone operator byte to its raw (pre-relabel) Type.
// Compound forms are resolved by the re-labeling pass, not here.
var singleCharOps = map[rune]token.Type{
	'~': token.OpTilde, '!': token.OpBang, '%': token.OpPercent,
	'^': token.OpCaret, '&': token.OpAmp, '*': token.OpStar,
	'-': token.OpMinus, '+': token.OpPlus, '=': token.OpAssign,
	'|': token.OpPipe, ',': token.Comma, '.': token.Dot,
	'<': token.OpLess, '>': token.OpGreater, '?': token.Question,
	':': token.Colon,
}

var punctuation = map[rune]token.Type{
	'{': token.LBrace, '}': token.RBrace, '(': token.LParen, ')': token.RParen,
	'[': token.LBracket, ']': token.RBracket, ';': token.Semi,
}

// Scan tokenizes the entire source, preserving null tokens (whitespace,
// comments, preprocessor lines). This is the "preserve nulls" mode of
// this package's coverage invariant: concatenating every returned token's
// text reproduces src exactly.
func Scan(src string) []token.Token {
	l := New(src)
	var toks []token.Token
	for {
		t, ok := l.next()
		if !ok {
			break
		}
		toks = append(toks, t)
	}
	return relabel(toks)
}

// Clean drops null tokens, the mode most parser/codegen callers want.
func Clean(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if !t.IsNull() {
			out = append(out, t)
		}
	}
	return out
}

// CoalesceNulls merges runs of adjacent null tokens into one, for callers
// that want to preserve the presence of a gap without one token per
// whitespace byte.
func CoalesceNulls(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if t.IsNull() && len(out) > 0 && out[len(out)-1].IsNull() {
			last := out[len(out)-1]
			out[len(out)-1] = token.New(last.Text+t.Text, token.Null, last.Line)
			continue
		}
		out = append(out, t)
	}
	return out
}

// next scans one raw token starting at the lexer's current cursor,
// returning false once the source is exhausted.
func (l *Lexer) next() (token.Token, bool) {
	line := l.line
	switch ch := l.ch; {
	case ch == 0:
		return token.Token{}, false

	case ch == '\n':
		l.read()
		l.line++
		return token.New("\n", token.Null, line), true

	case ch == ' ' || ch == '\t' || ch == '\r':
		start := l.i - 1
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
			l.read()
		}
		return token.New(string(l.src[start:l.i-1]), token.Null, line), true

	case isIdentChar(ch):
		start := l.i - 1
		for isIdentChar(l.ch) {
			l.read()
		}
		return token.New(string(l.src[start:l.i-1]), token.Alpha, line), true

	case ch == '\'':
		return l.scanQuoted('\'', token.Quote), true

	case ch == '"':
		return l.scanQuoted('"', token.DoubleQuote), true

	case ch == '#':
		start := l.i - 1
		for l.ch != 0 && l.ch != '\n' {
			l.read()
		}
		return token.New(string(l.src[start:l.i-1]), token.Null, line), true

	case ch == '/':
		if l.peek() == '/' {
			start := l.i - 1
			for l.ch != 0 && l.ch != '\n' {
				l.read()
			}
			return token.New(string(l.src[start:l.i-1]), token.Null, line), true
		}
		if l.peek() == '*' {
			start := l.i - 1
			l.read()
			l.read()
			for l.ch != 0 {
				if l.ch == '*' && l.peek() == '/' {
					l.read()
					l.read()
					break
				}
				if l.ch == '\n' {
					l.line++
				}
				l.read()
			}
			return token.New(string(l.src[start:l.i-1]), token.Null, line), true
		}
		l.read()
		return token.New("/", token.OpSlash, line), true

	default:
		if tt, ok := punctuation[ch]; ok {
			l.read()
			return token.New(string(ch), tt, line), true
		}
		if tt, ok := singleCharOps[ch]; ok {
			l.read()
			return token.New(string(ch), tt, line), true
		}
		diag.Fatalf(line, "unknown operator character %q", ch)
		return token.Token{}, false
	}
}

// scanQuoted extends from the opening quote to the matching close,
// honoring backslash-escapes (which consume the following byte, updating
// the line counter if that byte is a newline). Unterminated quotes are
// silently bounded at end-of-input, per this package's failure model.
func (l *Lexer) scanQuoted(quote rune, tt token.Type) token.Token {
	line := l.line
	start := l.i - 1
	l.read() // consume opening quote
	for l.ch != 0 && l.ch != quote {
		if l.ch == '\\' {
			l.read()
			if l.ch == '\n' {
				l.line++
			}
			if l.ch != 0 {
				l.read()
			}
			continue
		}
		if l.ch == '\n' {
			l.line++
		}
		l.read()
	}
	if l.ch == quote {
		l.read() // consume closing quote
	}
	return token.New(string(l.src[start:l.i-1]), tt, line)
}
