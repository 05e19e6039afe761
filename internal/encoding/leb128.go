// Package encoding holds the small byte-level and text-level utilities
// shared by the code generator, the DWARF emitter, and the CLI dump tools: LEB128
// size/emission, source-literal escaping, and integer literal parsing.
package encoding

import "bytes"

// ULEB128Size returns the number of bytes an assembler emits for
// `.uleb128 v`. Matches the loop AppendULEB128 uses byte-for-byte, kept
// separate so callers that only need a running byte count (DWARF's
// MetaData accumulator) never have to allocate a buffer.
func ULEB128Size(v uint64) int {
	n := 1
	for v >>= 7; v != 0; v >>= 7 {
		n++
	}
	return n
}

// SLEB128Size returns the number of bytes an assembler emits for
// `.sleb128 v`.
func SLEB128Size(v int64) int {
	n := 0
	for {
		b := byte(v & 0x7f)
		sign := b&0x40 != 0
		v >>= 7
		n++
		if (v == 0 && !sign) || (v == -1 && sign) {
			break
		}
	}
	return n
}

// AppendULEB128 appends the ULEB128 encoding of v to buf and returns the
// extended buffer.
func AppendULEB128(buf []byte, v uint64) []byte {
	for {
		c := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			c |= 0x80
		}
		buf = append(buf, c)
		if v == 0 {
			return buf
		}
	}
}

// AppendSLEB128 appends the SLEB128 encoding of v to buf and returns the
// extended buffer.
func AppendSLEB128(buf []byte, v int64) []byte {
	for {
		c := byte(v & 0x7f)
		sign := c&0x40 != 0
		v >>= 7
		done := (v == 0 && !sign) || (v == -1 && sign)
		if !done {
			c |= 0x80
		}
		buf = append(buf, c)
		if done {
			return buf
		}
	}
}

// WriteULEB128 writes the ULEB128 encoding of v to a bytes.Buffer.
// internal/dwarf does not use it: its streams are assembler text, which
// only needs ULEB128Size for byte counting.
func WriteULEB128(b *bytes.Buffer, v uint64) {
	b.Write(AppendULEB128(nil, v))
}

// WriteSLEB128 writes the SLEB128 encoding of v to a bytes.Buffer.
func WriteSLEB128(b *bytes.Buffer, v int64) {
	b.Write(AppendSLEB128(nil, v))
}
