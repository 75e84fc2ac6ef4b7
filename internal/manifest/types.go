package manifest

import (
	"fmt"

	"github.com/indaco/jsrgen/internal/exports"
)

// Candidates are the configuration files probed, in priority order.
var Candidates = []string{"deno.json", "deno.jsonc", "jsr.json", "jsr.jsonc"}

// DefaultFile is created when no candidate can be used.
const DefaultFile = "jsr.json"

// Keys owned by jsrgen. Everything else in a document is left alone.
const (
	KeyName    = "name"
	KeyVersion = "version"
	KeyExports = "exports"
)

// Fragment is the generated part of the manifest.
type Fragment struct {
	Name    string
	Version string
	Exports *exports.Map
}

// ProbeStatus is the outcome of reading one candidate file.
type ProbeStatus int

const (
	// ProbeNotFound means the file does not exist.
	ProbeNotFound ProbeStatus = iota
	// ProbeInvalid means the file exists but could not be read or parsed.
	ProbeInvalid
	// ProbeFound means the file holds a JSON object.
	ProbeFound
)

// String returns the status name.
func (s ProbeStatus) String() string {
	switch s {
	case ProbeNotFound:
		return "not-found"
	case ProbeInvalid:
		return "invalid"
	case ProbeFound:
		return "found"
	default:
		return fmt.Sprintf("ProbeStatus(%d)", int(s))
	}
}

// Probe is the result of reading one candidate.
type Probe struct {
	File   string
	Status ProbeStatus
	// Data is the normalized JSON object, set when Status is ProbeFound.
	Data []byte
	// Err explains a ProbeInvalid result.
	Err error
}

// ProbeError describes why a candidate file was skipped.
type ProbeError struct {
	File string
	Err  error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("cannot use %s: %v", e.File, e.Err)
}

// Unwrap returns the underlying error.
func (e *ProbeError) Unwrap() error {
	return e.Err
}
