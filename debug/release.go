//go:build !debug

package debug

const Enabled = false

func Log(format string, args ...interface{}) {}

// Assert is compiled out of release builds; query preconditions are trusted.
func Assert(cond bool, format string, args ...interface{}) {}
