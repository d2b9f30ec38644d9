// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to the writer. A nil writer discards output,
// so progress reporting can be switched off by leaving the writer unset.
// If the write fails, it logs to stderr.
func Writef(w io.Writer, format string, args ...any) {
	if w == nil {
		return
	}
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
