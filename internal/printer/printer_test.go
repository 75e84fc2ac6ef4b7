package printer

import (
	"bytes"
	"strings"
	"testing"
)

// TestRenderFunctions verifies that all render functions keep the input text.
func TestRenderFunctions(t *testing.T) {
	tests := []struct {
		name     string
		function func(string) string
		input    string
	}{
		{"Success", Success, "test text"},
		{"Error", Error, "test text"},
		{"Warning", Warning, "test text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.function(tt.input)

			// The styled output may or may not contain ANSI codes depending on
			// terminal detection, but it always contains the original text.
			if !strings.Contains(result, tt.input) {
				t.Errorf("%s() result does not contain input text. got %q, want to contain %q", tt.name, result, tt.input)
			}
		})
	}
}

// TestPrintFunctions verifies which stream each print function writes to.
func TestPrintFunctions(t *testing.T) {
	SetNoColor(true)
	t.Cleanup(func() { SetNoColor(false) })

	tests := []struct {
		name       string
		function   func(string)
		wantStdout bool
	}{
		{"PrintPlain", PrintPlain, true},
		{"PrintSuccess", PrintSuccess, true},
		{"PrintWarning", PrintWarning, false},
		{"PrintError", PrintError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var outBuf, errBuf bytes.Buffer
			restore := SetOutput(&outBuf, &errBuf)
			defer restore()

			tt.function("Updated jsr.json")

			got, other := outBuf.String(), errBuf.String()
			if !tt.wantStdout {
				got, other = other, got
			}
			if got != "Updated jsr.json\n" {
				t.Errorf("%s() wrote %q, want %q", tt.name, got, "Updated jsr.json\n")
			}
			if other != "" {
				t.Errorf("%s() wrote to the wrong stream: %q", tt.name, other)
			}
		})
	}
}

func TestSetNoColor(t *testing.T) {
	SetNoColor(true)
	t.Cleanup(func() { SetNoColor(false) })

	if got := Error("boom"); got != "boom" {
		t.Errorf("expected plain text with colors disabled, got %q", got)
	}
}
