package dwarf

import (
	"strings"
	"testing"
)

func TestFlattenAssignsStableLabelsAndSiblingTerminator(t *testing.T) {
	root := NewDIE(DW_TAG_compile_unit)
	a := NewDIE(DW_TAG_subprogram).Add(DW_AT_name, StringRef("a"))
	b := NewDIE(DW_TAG_subprogram).Add(DW_AT_name, StringRef("b"))
	root.AddChild(a).AddChild(b)

	tree := NewTree().SetRoot(root)
	entries := tree.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 flattened entries, got %d", len(entries))
	}
	if entries[0] != root || entries[1] != a || entries[2] != b {
		t.Fatalf("expected pre-order root, a, b")
	}
	if root.Label() != ".Ldebug_entry0" || a.Label() != ".Ldebug_entry1" || b.Label() != ".Ldebug_entry2" {
		t.Errorf("unexpected labels: %s %s %s", root.Label(), a.Label(), b.Label())
	}
	last := b.Attrs[len(b.Attrs)-1]
	if last.Name != DW_AT_reserved {
		t.Errorf("expected the last child to carry the sibling terminator, got %v", last.Name)
	}
	if len(a.Attrs) != 1 {
		t.Errorf("non-last child should not receive a terminator, got %d attrs", len(a.Attrs))
	}
}

func TestCompileUnitEmitsAbbrevAndComputesUnitLength(t *testing.T) {
	cu := BuildCompileUnit("hello.c", "/src", "ccdwarf", DW_LANG_C, "main", "main_end", 8)
	tree := NewTree().SetRoot(cu)
	asm := EmitCompilationUnit(tree, 8)

	if !strings.Contains(asm, ".long 38") {
		t.Errorf("expected unit_length 38 (30 info bytes + 1 terminator + 7 header bytes), got:\n%s", asm)
	}
	for _, want := range []string{
		"\t.uleb128 1\n",  // abbrev code
		"\t.uleb128 17\n", // DW_TAG_compile_unit
		"\t.byte 0\n",     // no children
		"\t.uleb128 3\n",  // DW_AT_name
		"\t.uleb128 14\n", // DW_FORM_strp
	} {
		if !strings.Contains(asm, want) {
			t.Errorf("expected abbrev stream to contain %q, got:\n%s", want, asm)
		}
	}
	if strings.Count(asm, ".LASF") != 2*3 {
		// each of the 3 interned strings appears once as a label def and once as a reference
		t.Errorf("expected 3 interned strings (name, comp_dir, producer), got:\n%s", asm)
	}
}

func TestExprLocLengthPrefixMatchesEmittedOperandBytes(t *testing.T) {
	loc := ExprLoc{Fbreg(-8)}
	md := NewMetaData()
	loc.emitInfo(md)
	// DW_OP_fbreg (1 byte) + sleb128(-8) (1 byte) == length 2, written as .uleb128 2
	if !strings.Contains(md.Info.String(), "\t.uleb128 2\n") {
		t.Errorf("expected exprloc length prefix 2, got:\n%s", md.Info.String())
	}
	if !strings.Contains(md.Info.String(), "\t.sleb128 -8\n") {
		t.Errorf("expected the fbreg offset operand, got:\n%s", md.Info.String())
	}
}

func TestReservedTerminatorContributesOneAbbrevByte(t *testing.T) {
	before := NewMetaData()
	Reserved.emitAbbrev(before)
	if before.AbbrevSize != 0 {
		t.Errorf("reserved's form half should write nothing to .debug_abbrev, got %d bytes", before.AbbrevSize)
	}
	Reserved.emitInfo(before)
	if before.InfoSize != 1 {
		t.Errorf("reserved's info half should be exactly one ULEB128(0) byte, got %d", before.InfoSize)
	}
}

func TestSubprogramDIEUsesCallFrameCFA(t *testing.T) {
	d := BuildSubprogramDIE("main", 3, "main", "main_end", 8, true)
	tree := NewTree().SetRoot(d)
	asm := EmitCompilationUnit(tree, 8)
	if !strings.Contains(asm, "\t.byte 156\n") { // DW_OP_call_frame_cfa == 0x9c == 156
		t.Errorf("expected the frame_base exprloc to encode DW_OP_call_frame_cfa, got:\n%s", asm)
	}
}
