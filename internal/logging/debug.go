package logging

import (
	"fmt"
	"io"
	"os"
)

// warnOutput is where warnings are written; replaced in tests
var warnOutput io.Writer = os.Stderr

// DebugEnabled returns true if debug mode is enabled via WT_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("WT_DEBUG") != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintln(os.Stderr, args...)
	}
}

// Warnf reports a recovered problem. Warnings are always printed.
func Warnf(format string, args ...interface{}) {
	fmt.Fprintf(warnOutput, "warning: "+format+"\n", args...)
}

// SetWarnOutput redirects warnings and returns a func restoring the previous writer
func SetWarnOutput(w io.Writer) func() {
	prev := warnOutput
	warnOutput = w
	return func() { warnOutput = prev }
}
