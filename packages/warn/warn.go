// Package warn emits non-fatal warnings for configuration problems.
//
// Option resolution never fails the caller over bad user input: a value that
// cannot be cast, or a type hint that disagrees with the declared one, is
// reported here and resolution degrades to the raw value. The default handler
// writes to stderr; tests swap it out to capture warnings.
package warn

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Handler receives formatted warning messages.
type Handler func(msg string)

var handler Handler = defaultHandler

var prefix = color.New(color.FgYellow, color.Bold).SprintFunc()

func defaultHandler(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", prefix("warning:"), msg)
}

// Warnf formats and emits a warning through the current handler.
func Warnf(format string, args ...any) {
	handler(fmt.Sprintf(format, args...))
}

// SetHandler replaces the warning handler and returns the previous one so
// callers can restore it.
func SetHandler(h Handler) Handler {
	prev := handler
	if h == nil {
		h = defaultHandler
	}
	handler = h
	return prev
}
