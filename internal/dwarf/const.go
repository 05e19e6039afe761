// Package dwarf builds DWARF v4 debug information as GNU assembler
// directives: a tree of Debug Information Entries with typed, polymorphic
// attribute values, flattened into the sibling-terminated linear order
// DWARF's abbreviation/info encoding expects, and serialized into
// `.debug_info`, `.debug_abbrev`, and `.debug_str` text.
//
// This package has no dependency on the compiler frontend; a caller
// assembles a *DIE tree by hand (or via BuildCompileUnit) and calls
// EmitCompilationUnit.
package dwarf

// DWTag is a DWARF tag (DW_TAG_*), identifying what kind of entity a DIE
// describes.
type DWTag uint64

const (
	DW_TAG_array_type       DWTag = 0x01
	DW_TAG_enumeration_type DWTag = 0x04
	DW_TAG_formal_parameter DWTag = 0x05
	DW_TAG_lexical_block    DWTag = 0x0b
	DW_TAG_member           DWTag = 0x0d
	DW_TAG_pointer_type     DWTag = 0x0f
	DW_TAG_compile_unit     DWTag = 0x11
	DW_TAG_structure_type   DWTag = 0x13
	DW_TAG_subroutine_type  DWTag = 0x15
	DW_TAG_typedef          DWTag = 0x16
	DW_TAG_union_type       DWTag = 0x17
	DW_TAG_base_type        DWTag = 0x24
	DW_TAG_const_type       DWTag = 0x26
	DW_TAG_enumerator       DWTag = 0x28
	DW_TAG_subprogram       DWTag = 0x2e
	DW_TAG_variable         DWTag = 0x34
	DW_TAG_volatile_type    DWTag = 0x35
)

// DWAttr is a DWARF attribute name (DW_AT_*).
type DWAttr uint64

const (
	DW_AT_reserved            DWAttr = 0x00 // sentinel: end-of-siblings/end-of-attribute-list marker
	DW_AT_sibling             DWAttr = 0x01
	DW_AT_location            DWAttr = 0x02
	DW_AT_name                DWAttr = 0x03
	DW_AT_byte_size           DWAttr = 0x0b
	DW_AT_stmt_list           DWAttr = 0x10
	DW_AT_low_pc              DWAttr = 0x11
	DW_AT_high_pc             DWAttr = 0x12
	DW_AT_language            DWAttr = 0x13
	DW_AT_comp_dir            DWAttr = 0x1b
	DW_AT_const_value         DWAttr = 0x1c
	DW_AT_upper_bound         DWAttr = 0x2f
	DW_AT_producer            DWAttr = 0x25
	DW_AT_prototyped          DWAttr = 0x27
	DW_AT_count               DWAttr = 0x37
	DW_AT_data_member_location DWAttr = 0x38
	DW_AT_decl_file           DWAttr = 0x3a
	DW_AT_decl_line           DWAttr = 0x3b
	DW_AT_declaration         DWAttr = 0x3c
	DW_AT_encoding            DWAttr = 0x3e
	DW_AT_external            DWAttr = 0x3f
	DW_AT_frame_base          DWAttr = 0x40
	DW_AT_type                DWAttr = 0x49
)

// DWForm is a DWARF attribute form (DW_FORM_*), describing how an
// attribute's value is encoded on the wire.
type DWForm uint64

const (
	DW_FORM_reserved   DWForm = 0x00
	DW_FORM_addr       DWForm = 0x01
	DW_FORM_data2      DWForm = 0x05
	DW_FORM_data4      DWForm = 0x06
	DW_FORM_data8      DWForm = 0x07
	DW_FORM_string     DWForm = 0x08
	DW_FORM_data1      DWForm = 0x0b
	DW_FORM_flag       DWForm = 0x0c
	DW_FORM_strp       DWForm = 0x0e
	DW_FORM_udata      DWForm = 0x0f
	DW_FORM_ref_addr   DWForm = 0x10
	DW_FORM_sec_offset DWForm = 0x17
	DW_FORM_exprloc    DWForm = 0x18
)

// DWOp is a DWARF stack-machine expression opcode (DW_OP_*), used inside
// an exprloc attribute value.
type DWOp uint8

const (
	DW_OP_addr           DWOp = 0x03
	DW_OP_deref          DWOp = 0x06
	DW_OP_const1u        DWOp = 0x08
	DW_OP_const1s        DWOp = 0x09
	DW_OP_const2u        DWOp = 0x0a
	DW_OP_const2s        DWOp = 0x0b
	DW_OP_const4u        DWOp = 0x0c
	DW_OP_const4s        DWOp = 0x0d
	DW_OP_const8u        DWOp = 0x0e
	DW_OP_const8s        DWOp = 0x0f
	DW_OP_constu         DWOp = 0x10
	DW_OP_consts         DWOp = 0x11
	DW_OP_dup            DWOp = 0x12
	DW_OP_drop           DWOp = 0x13
	DW_OP_over           DWOp = 0x14
	DW_OP_swap           DWOp = 0x16
	DW_OP_and            DWOp = 0x1a
	DW_OP_div            DWOp = 0x1b
	DW_OP_minus          DWOp = 0x1c
	DW_OP_mod            DWOp = 0x1d
	DW_OP_mul            DWOp = 0x1e
	DW_OP_neg            DWOp = 0x1f
	DW_OP_not            DWOp = 0x20
	DW_OP_or             DWOp = 0x21
	DW_OP_plus           DWOp = 0x22
	DW_OP_plus_uconst    DWOp = 0x23
	DW_OP_shl            DWOp = 0x24
	DW_OP_shr            DWOp = 0x25
	DW_OP_shra           DWOp = 0x26
	DW_OP_xor            DWOp = 0x27
	DW_OP_bra            DWOp = 0x28
	DW_OP_eq             DWOp = 0x29
	DW_OP_ge             DWOp = 0x2a
	DW_OP_gt             DWOp = 0x2b
	DW_OP_le             DWOp = 0x2c
	DW_OP_lt             DWOp = 0x2d
	DW_OP_ne             DWOp = 0x2e
	// DW_OP_skip is 0x2f per the published DWARF v4 opcode table — see
	// DESIGN.md's Open Question (c). The value looks adjacent to
	// DW_OP_xor's neighbors, but it is the correct standard value.
	DW_OP_skip     DWOp = 0x2f
	DW_OP_lit0     DWOp = 0x30 // DW_OP_lit0..DW_OP_lit31 follow contiguously
	DW_OP_reg0     DWOp = 0x50 // DW_OP_reg0..DW_OP_reg31 follow contiguously
	DW_OP_breg0    DWOp = 0x70 // DW_OP_breg0..DW_OP_breg31 follow contiguously
	DW_OP_fbreg    DWOp = 0x91
	DW_OP_call_frame_cfa DWOp = 0x9c
)

// DWLang is a DW_AT_language encoding.
type DWLang uint8

const (
	DW_LANG_C89           DWLang = 0x01
	DW_LANG_C             DWLang = 0x02
	DW_LANG_C_plus_plus   DWLang = 0x04
	DW_LANG_C99           DWLang = 0x0c
)

// DWAte is a DW_AT_encoding value describing a base type's representation.
type DWAte uint8

const (
	DW_ATE_boolean       DWAte = 0x02
	DW_ATE_float         DWAte = 0x04
	DW_ATE_signed        DWAte = 0x05
	DW_ATE_signed_char   DWAte = 0x06
	DW_ATE_unsigned      DWAte = 0x07
	DW_ATE_unsigned_char DWAte = 0x08
)
