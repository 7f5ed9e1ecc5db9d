// Package logging provides debug output gated behind the TODO_DEBUG
// environment variable. Debug lines go to stderr so they never mix with
// the interactive menu output.
package logging

import (
	"fmt"
	"os"
	"sync"
)

var debugEnabled = sync.OnceValue(func() bool {
	return os.Getenv("TODO_DEBUG") != ""
})

// DebugEnabled reports whether debug output is switched on.
func DebugEnabled() bool {
	return debugEnabled()
}

// Debugf prints a formatted debug message when debug mode is enabled.
func Debugf(format string, args ...interface{}) {
	if debugEnabled() {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// Debugln prints a debug message followed by a newline when debug mode
// is enabled.
func Debugln(args ...interface{}) {
	if debugEnabled() {
		fmt.Fprintln(os.Stderr, args...)
	}
}
