package dwarf

import (
	"fmt"
	"strings"

	"github.com/ccdwarf/ccdwarf/internal/encoding"
)

// MetaData is the accumulator EmitCompilationUnit threads through DIE and
// Value serialization: three output streams plus running byte counters
// for each, plus a monotone counter for `.LASF<n>` string-pool labels.
// The byte counters must match what the assembler would actually emit,
// since `unit_length` is computed from them rather than measured after
// the fact.
type MetaData struct {
	Info     strings.Builder
	InfoSize int

	Abbrev     strings.Builder
	AbbrevSize int

	Str      strings.Builder
	StrCount int
}

// NewMetaData returns an accumulator with empty streams.
func NewMetaData() *MetaData {
	return &MetaData{}
}

func (md *MetaData) uleb128Info(v uint64) {
	fmt.Fprintf(&md.Info, "\t.uleb128 %d\n", v)
	md.InfoSize += encoding.ULEB128Size(v)
}

func (md *MetaData) uleb128Abbrev(v uint64) {
	fmt.Fprintf(&md.Abbrev, "\t.uleb128 %d\n", v)
	md.AbbrevSize += encoding.ULEB128Size(v)
}

// internString interns s into the string pool, returning its `.LASF<n>`
// label. Every call allocates a fresh label rather than deduplicating
// (unlike internal/codegen/x86_64's .rodata string interning, the DWARF
// string pool is rarely large enough to make dedup worth the
// bookkeeping).
func (md *MetaData) internString(s string) string {
	label := fmt.Sprintf(".LASF%d", md.StrCount)
	fmt.Fprintf(&md.Str, "%s:\n\t.string %q\n", label, s)
	md.StrCount++
	return label
}
