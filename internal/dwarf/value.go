package dwarf

import "fmt"

// Value is a DIE attribute's typed value. Every implementation knows both
// its wire Form and how to write its two halves — the form's ULEB128 code
// to `.debug_abbrev` and the encoded value to `.debug_info` — while
// bumping both stream's running byte counters, per this package's
// value-emission table. The attribute *name* half of the abbrev entry is
// written by the DIE serialization loop in unit.go, not by Value itself,
// matching how the reserved sibling-terminator carries a name but no form.
type Value interface {
	Form() DWForm
	emitAbbrev(md *MetaData)
	emitInfo(md *MetaData)
}

// InlineString is DW_FORM_string: the text is written directly into
// `.debug_info` as a NUL-terminated `.string` directive.
type InlineString string

func (InlineString) Form() DWForm { return DW_FORM_string }

func (v InlineString) emitAbbrev(md *MetaData) { md.uleb128Abbrev(uint64(DW_FORM_string)) }

func (v InlineString) emitInfo(md *MetaData) {
	fmt.Fprintf(&md.Info, "\t.string %q\n", string(v))
	md.InfoSize += len(v) + 1
}

// StringRef is DW_FORM_strp: the text is interned into `.debug_str` under
// a fresh `.LASF<n>` label, and `.debug_info` carries a 4-byte offset
// relative to the section's base.
type StringRef string

func (StringRef) Form() DWForm { return DW_FORM_strp }

func (v StringRef) emitAbbrev(md *MetaData) { md.uleb128Abbrev(uint64(DW_FORM_strp)) }

func (v StringRef) emitInfo(md *MetaData) {
	label := md.internString(string(v))
	fmt.Fprintf(&md.Info, "\t.long %s - .Ldebug_str0\n", label)
	md.InfoSize += 4
}

// Data1/Data2/Data4/Data8 are the fixed-width unsigned integer forms.

type Data1 uint8

func (Data1) Form() DWForm            { return DW_FORM_data1 }
func (v Data1) emitAbbrev(md *MetaData) { md.uleb128Abbrev(uint64(DW_FORM_data1)) }
func (v Data1) emitInfo(md *MetaData) {
	fmt.Fprintf(&md.Info, "\t.byte %d\n", uint8(v))
	md.InfoSize += 1
}

type Data2 uint16

func (Data2) Form() DWForm            { return DW_FORM_data2 }
func (v Data2) emitAbbrev(md *MetaData) { md.uleb128Abbrev(uint64(DW_FORM_data2)) }
func (v Data2) emitInfo(md *MetaData) {
	fmt.Fprintf(&md.Info, "\t.value %d\n", uint16(v))
	md.InfoSize += 2
}

type Data4 uint32

func (Data4) Form() DWForm            { return DW_FORM_data4 }
func (v Data4) emitAbbrev(md *MetaData) { md.uleb128Abbrev(uint64(DW_FORM_data4)) }
func (v Data4) emitInfo(md *MetaData) {
	fmt.Fprintf(&md.Info, "\t.long %d\n", uint32(v))
	md.InfoSize += 4
}

type Data8 uint64

func (Data8) Form() DWForm            { return DW_FORM_data8 }
func (v Data8) emitAbbrev(md *MetaData) { md.uleb128Abbrev(uint64(DW_FORM_data8)) }
func (v Data8) emitInfo(md *MetaData) {
	fmt.Fprintf(&md.Info, "\t.quad %d\n", uint64(v))
	md.InfoSize += 8
}

// SecOffset is DW_FORM_sec_offset: a 4-byte offset into another debug
// section, e.g. a `.debug_line` stmt_list pointer.
type SecOffset string // an assembler expression, e.g. a bare label

func (SecOffset) Form() DWForm { return DW_FORM_sec_offset }

func (v SecOffset) emitAbbrev(md *MetaData) { md.uleb128Abbrev(uint64(DW_FORM_sec_offset)) }

func (v SecOffset) emitInfo(md *MetaData) {
	fmt.Fprintf(&md.Info, "\t.long %s\n", string(v))
	md.InfoSize += 4
}

// Addr is DW_FORM_addr: a code address, in 32- or 64-bit mode, given
// either as a label (`.Ltext0`) or a bare numeric constant.
type Addr struct {
	Value string // label name or decimal literal
	Wide  bool   // true for 64-bit (.quad), false for 32-bit (.long)
}

func (Addr) Form() DWForm { return DW_FORM_addr }

func (v Addr) emitAbbrev(md *MetaData) { md.uleb128Abbrev(uint64(DW_FORM_addr)) }

func (v Addr) emitInfo(md *MetaData) {
	if v.Wide {
		fmt.Fprintf(&md.Info, "\t.quad %s\n", v.Value)
		md.InfoSize += 8
	} else {
		fmt.Fprintf(&md.Info, "\t.long %s\n", v.Value)
		md.InfoSize += 4
	}
}

// RefAddr is DW_FORM_ref_addr: a relocation to another DIE's label,
// relative to the compilation unit's own `.debug_info` base.
type RefAddr string // target DIE label, e.g. ".Ldebug_entry3"

func (RefAddr) Form() DWForm { return DW_FORM_ref_addr }

func (v RefAddr) emitAbbrev(md *MetaData) { md.uleb128Abbrev(uint64(DW_FORM_ref_addr)) }

func (v RefAddr) emitInfo(md *MetaData) {
	fmt.Fprintf(&md.Info, "\t.long %s - .Ldebug_info0\n", string(v))
	md.InfoSize += 4
}

// ExprLoc is DW_FORM_exprloc: a ULEB128 byte-length prefix followed by a
// DWARF stack-machine expression (see op.go).
type ExprLoc []Op

func (ExprLoc) Form() DWForm { return DW_FORM_exprloc }

func (v ExprLoc) emitAbbrev(md *MetaData) { md.uleb128Abbrev(uint64(DW_FORM_exprloc)) }

func (v ExprLoc) emitInfo(md *MetaData) {
	length := uint64(0)
	for _, op := range v {
		length += uint64(op.byteSize())
	}
	md.uleb128Info(length)
	for _, op := range v {
		op.emit(md)
	}
}

// reserved is the sentinel attribute value DIE-tree flattening attaches
// to the last child of any node with siblings: it terminates the
// abbreviation's attribute list and, when emitted as a standalone DIE
// entry, the end-of-siblings marker DWARF's tree encoding requires.
type reserved struct{}

func (reserved) Form() DWForm { return DW_FORM_reserved }

// emitAbbrev is deliberately a no-op: the terminator's attribute name
// (zero) already closes the abbreviation's attribute list on its own;
// there is no form byte to follow it, so the pair contributes only one
// ULEB128 to `.debug_abbrev`.
func (reserved) emitAbbrev(md *MetaData) {}

func (reserved) emitInfo(md *MetaData) { md.uleb128Info(0) }

// Reserved is the exported constructor for the sentinel value, used by
// callers that want to terminate a DIE's attribute list explicitly (tree
// flattening does this automatically; see tree.go).
var Reserved Value = reserved{}
