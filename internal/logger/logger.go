package logger

import (
	"fmt"
	"io"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// tag prefixes every line so output from the tool is easy to pick out of npm or build noise.
var tag = color.New(color.FgCyan).Sprint("[Dora Styles]")

// out and errOut are where messages go. They default to the color-aware
// stdout/stderr writers so Windows consoles render colors correctly.
var (
	out    io.Writer = color.Output
	errOut io.Writer = color.Error
)

// Define colorized printing functions for different log levels using fatih/color.
// These are package-level variables holding functions that behave like fmt.Printf,
// but with text colored appropriately for the log level.

// Info logs informational messages in green color.
var Info = printer(color.FgGreen, false)

// Warn logs warning messages in bright magenta color.
var Warn = printer(color.FgHiMagenta, false)

// Error logs error messages in red color to stderr.
var Error = printer(color.FgRed, true)

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It starts as a no-op so packages can log before Init runs (e.g. in tests).
var Debug = func(format string, a ...any) {}

// Init initializes the logger package, specifically enabling or disabling debug logging.
// When enabled, Debug will print messages in cyan color.
// When disabled, Debug will be a no-op function that silently ignores debug logs.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = printer(color.FgCyan, false)
	} else {
		Debug = func(format string, a ...any) {}
	}
}

// SetOutput redirects both the regular and the error stream, mostly for tests.
func SetOutput(w io.Writer) {
	out = w
	errOut = w
}

func printer(attr color.Attribute, toErr bool) func(format string, a ...any) {
	c := color.New(attr)
	return func(format string, a ...any) {
		w := out
		if toErr {
			w = errOut
		}
		_, _ = fmt.Fprintf(w, "%s %s", tag, c.Sprintf(format, a...))
	}
}
