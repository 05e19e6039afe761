package x86_64

import "fmt"

// internString interns a double-quoted string literal (raw token text,
// quotes included) into .rodata, returning its .LC<n> label. Identical
// literal text reuses the same label.
func (g *CodeGen) internString(quoted string) string {
	if label, ok := g.strings[quoted]; ok {
		return label
	}
	label := fmt.Sprintf(".LC%d", g.stringCount)
	g.stringCount++
	g.strings[quoted] = label
	fmt.Fprintf(&g.rodata, "%s:\n\t.string %s\n", label, quoted)
	return label
}
