// Package diag centralizes a fail-fast, line-numbered diagnostic policy:
// one-line message to stderr, then process abort. No error is recovered
// locally anywhere in the pipeline.
package diag

import (
	"fmt"
	"os"
)

// Fatalf reports a lexical, syntactic, or semantic error at the given
// 1-based source line and aborts the process. line may be 0 for errors
// with no useful source position (e.g. a malformed CLI invocation).
func Fatalf(line int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if line > 0 {
		fmt.Fprintf(os.Stderr, "line %d: %s\n", line, msg)
	} else {
		fmt.Fprintf(os.Stderr, "%s\n", msg)
	}
	os.Exit(1)
}

// Internal reports an assertion-like invariant violation — a bug in this
// program rather than bad input — and aborts.
func Internal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "internal error: %s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
