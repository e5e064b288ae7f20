//go:build debug

package debug

import (
	"fmt"
	"log/slog"
)

const Enabled = true

func Log(format string, args ...interface{}) {
	slog.Debug("[DEBUG]" + fmt.Sprintf(format, args...))
}

// Assert panics with the formatted message if cond is false.
func Assert(cond bool, format string, args ...interface{}) {
	if !cond {
		panic("assertion failed: " + fmt.Sprintf(format, args...))
	}
}
