// Package logging builds the diagnostic logger used across jsrgen.
// Diagnostics go to stderr so stdout stays reserved for the result line.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Prefix is prepended to every log line.
const Prefix = "jsrgen"

// Options configures New.
type Options struct {
	Verbose bool
	NoColor bool
}

// New returns a logger writing to w. Warnings and errors are always shown,
// debug output only when Verbose is set.
func New(w io.Writer, opts Options) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  log.WarnLevel,
	})
	if opts.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if opts.NoColor {
		logger.SetColorProfile(termenv.Ascii)
	}
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return Discard()
	}
	return l
}
