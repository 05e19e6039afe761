package dwarf

import (
	"fmt"
	"strings"
)

// EmitCompilationUnit serializes t's flattened DIE order into three
// DWARF section streams (.debug_info, .debug_abbrev, .debug_str; no line
// table section is emitted), computing unit_length from the
// accumulated `.debug_info` byte count rather than measuring the
// generated text after the fact — the same discipline the source's
// MetaData-threaded Generate uses. addressSize is 4 or 8, per the target
// the code generator produced.
func EmitCompilationUnit(t *Tree, addressSize int) string {
	md := NewMetaData()

	abbrevCode := uint64(1)
	for _, d := range t.Entries() {
		fmt.Fprintf(&md.Info, "%s:\n", d.Label())
		md.uleb128Info(abbrevCode)
		md.uleb128Abbrev(abbrevCode)

		md.uleb128Abbrev(uint64(d.Tag))
		if d.HasChildren() {
			md.Abbrev.WriteString("\t.byte 1\n")
		} else {
			md.Abbrev.WriteString("\t.byte 0\n")
		}
		md.AbbrevSize++

		for _, attr := range d.Attrs {
			md.uleb128Abbrev(uint64(attr.Name))
			attr.Value.emitAbbrev(md)
			attr.Value.emitInfo(md)
		}
		// terminate this DIE's attribute list
		md.uleb128Abbrev(0)
		md.uleb128Abbrev(0)

		abbrevCode++
	}
	// terminate .debug_info and .debug_abbrev
	md.uleb128Info(0)
	md.uleb128Abbrev(0)

	unitLength := md.InfoSize + 2 /* version */ + 4 /* abbrev_offset */ + 1 /* address_size */

	var out strings.Builder
	out.WriteString(".section .debug_info,\"\",@progbits\n")
	out.WriteString(".Ldebug_info0:\n")
	fmt.Fprintf(&out, "\t.long %d\n", unitLength)
	out.WriteString("\t.value 4\n") // DWARF version 4
	out.WriteString("\t.long .Ldebug_abbrev0\n")
	fmt.Fprintf(&out, "\t.byte %d\n", addressSize)
	out.WriteString(md.Info.String())

	out.WriteString(".section .debug_abbrev,\"\",@progbits\n")
	out.WriteString(".Ldebug_abbrev0:\n")
	out.WriteString(md.Abbrev.String())

	out.WriteString(".section .debug_str,\"\",@progbits\n")
	out.WriteString(".Ldebug_str0:\n")
	out.WriteString(md.Str.String())

	return out.String()
}

// BuildCompileUnit constructs a single childless compile-unit DIE
// carrying the name/producer/language/low_pc/high_pc attributes
// `tool/dw-example.cc` wires by hand, generalized to accept the caller's
// actual source name and compiled address range instead of the fixed
// example values.
func BuildCompileUnit(sourceName, compDir, producer string, lang DWLang, lowPC, highPC string, addressSize int) *DIE {
	wide := addressSize == 8
	return NewDIE(DW_TAG_compile_unit).
		Add(DW_AT_name, StringRef(sourceName)).
		Add(DW_AT_comp_dir, StringRef(compDir)).
		Add(DW_AT_producer, StringRef(producer)).
		Add(DW_AT_language, Data1(lang)).
		Add(DW_AT_low_pc, Addr{Value: lowPC, Wide: wide}).
		Add(DW_AT_high_pc, Addr{Value: highPC, Wide: wide})
}

// BuildSubprogramDIE builds a DW_TAG_subprogram entry describing one
// compiled function, per this package's note that a debug-aware generator
// mode documents this shape even though full line-table emission is out
// of scope.
func BuildSubprogramDIE(name string, declLine int, lowPC, highPC string, addressSize int, external bool) *DIE {
	wide := addressSize == 8
	d := NewDIE(DW_TAG_subprogram).
		Add(DW_AT_name, StringRef(name)).
		Add(DW_AT_decl_line, Data4(uint32(declLine))).
		Add(DW_AT_low_pc, Addr{Value: lowPC, Wide: wide}).
		Add(DW_AT_high_pc, Addr{Value: highPC, Wide: wide}).
		Add(DW_AT_frame_base, ExprLoc{{Code: DW_OP_call_frame_cfa}})
	if external {
		d.Add(DW_AT_external, Data1(1))
	}
	return d
}

// BuildVariableDIE builds a DW_TAG_variable entry for a local or global
// symbol, locating it either at a frame-base-relative offset (locals) or
// a fixed address (globals).
func BuildVariableDIE(name string, byteSize int, loc ExprLoc) *DIE {
	return NewDIE(DW_TAG_variable).
		Add(DW_AT_name, StringRef(name)).
		Add(DW_AT_byte_size, Data1(uint8(byteSize))).
		Add(DW_AT_location, loc)
}
