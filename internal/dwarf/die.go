package dwarf

import "fmt"

// Attribute pairs an attribute name with its typed value.
type Attribute struct {
	Name  DWAttr
	Value Value
}

// DIE is one Debug Information Entry: a tag, an ordered attribute list,
// and a child list. label is a stable integer assigned when the DIE is
// added to a Tree, used to synthesize the DIE's assembler symbol; it is
// zero (and Label unusable) before that.
type DIE struct {
	Tag      DWTag
	Attrs    []Attribute
	Children []*DIE

	label int
}

// NewDIE returns an empty DIE for tag, ready to accumulate attributes and
// children before being added to a Tree.
func NewDIE(tag DWTag) *DIE {
	return &DIE{Tag: tag}
}

// Add appends an attribute and returns d, so callers can chain
// declarations the way BuildCompileUnit does.
func (d *DIE) Add(name DWAttr, value Value) *DIE {
	d.Attrs = append(d.Attrs, Attribute{Name: name, Value: value})
	return d
}

// AddChild appends a child DIE and returns d.
func (d *DIE) AddChild(child *DIE) *DIE {
	d.Children = append(d.Children, child)
	return d
}

// Label returns this DIE's synthetic assembler symbol. Only meaningful
// after the DIE has been placed in a Tree via SetRoot.
func (d *DIE) Label() string {
	return fmt.Sprintf(".Ldebug_entry%d", d.label)
}
