// Package printer renders the user-facing lines jsrgen prints on stdout and
// stderr.
package printer

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Style definitions for consistent console output.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
)

var (
	mu     sync.Mutex
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetNoColor disables (or re-enables) ANSI styling for every renderer.
func SetNoColor(disabled bool) {
	if disabled {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// SetOutput redirects stdout and stderr output and returns a function
// restoring the previous writers.
func SetOutput(out, errOut io.Writer) (restore func()) {
	mu.Lock()
	defer mu.Unlock()

	prevOut, prevErr := stdout, stderr
	stdout, stderr = out, errOut
	return func() {
		mu.Lock()
		defer mu.Unlock()
		stdout, stderr = prevOut, prevErr
	}
}

// Render functions return styled strings without printing.

// Success returns text with success (green) styling.
func Success(text string) string {
	return successStyle.Render(text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return errorStyle.Render(text)
}

// Warning returns text with warning (yellow) styling.
func Warning(text string) string {
	return warningStyle.Render(text)
}

func writeLine(w func() io.Writer, text string) {
	_, _ = fmt.Fprintln(w(), text)
}

func out() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return stdout
}

func errOut() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return stderr
}

// PrintPlain prints text to stdout without styling.
func PrintPlain(text string) {
	writeLine(out, text)
}

// PrintSuccess prints text with success (green) styling to stdout.
func PrintSuccess(text string) {
	writeLine(out, Success(text))
}

// PrintWarning prints text with warning (yellow) styling to stderr.
func PrintWarning(text string) {
	writeLine(errOut, Warning(text))
}

// PrintError prints text with error (red) styling to stderr.
func PrintError(text string) {
	writeLine(errOut, Error(text))
}
