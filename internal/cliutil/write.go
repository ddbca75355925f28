// Package cliutil holds small output helpers shared by the CLI commands.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef formats to w, reporting a failed write on stderr instead of
// returning an error. Flag usage closures have no error path to surface one.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
