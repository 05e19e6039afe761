package encoding

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIntLiteral parses a decimal or 0x-prefixed hexadecimal integer
// literal (no octal, no sign prefix in the literal itself). The lexer's
// re-labeling pass tags every identifier whose first byte is a digit as Digit, including
// "0xFF", so this is the single place that must recognize the 0x prefix
// regardless of how the caller arrived at the text.
func ParseIntLiteral(text string) (int64, error) {
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		v, err := strconv.ParseUint(text[2:], 16, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed hex literal %q: %w", text, err)
		}
		return int64(v), nil
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed decimal literal %q: %w", text, err)
	}
	return v, nil
}

// IsIntLiteral reports whether text looks like a literal ParseIntLiteral
// can consume (its first byte is a decimal digit), distinguishing a
// decimal/hex constant from an identifier without attempting a full
// parse. The code generator does not call it; it dispatches on the
// token's Digit tag instead.
func IsIntLiteral(text string) bool {
	if text == "" {
		return false
	}
	return text[0] >= '0' && text[0] <= '9'
}
