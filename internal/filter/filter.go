// Package filter decides which discovered files are publishable exports.
package filter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Extensions lists the file extensions that may be exported.
var Extensions = []string{".ts", ".js", ".tsx", ".jsx", ".mjs"}

// excludedSegments are substrings that disqualify a path wherever they occur.
var excludedSegments = []string{
	"/tests/",
	"/test/",
	"/docs/",
	"/deps.",
	"/deps/",
	"/node_modules/",
	"/test.",
	".test.",
	"_test.",
	"/bench.",
	".bench.",
	"_bench.",
	"/.",
	"/_",
}

// IsIgnored reports whether path must not be exported. path is a specifier
// such as "./src/util.ts".
//
// The extension is everything from the last "." of the whole path, so a file
// without an extension yields a bogus extension and is always ignored.
func IsIgnored(path string) bool {
	ext := path
	if i := strings.LastIndex(path, "."); i >= 0 {
		ext = path[i:]
	}
	if !slices.Contains(Extensions, ext) {
		return true
	}

	if strings.HasSuffix(path, ".d.ts") {
		return true
	}

	for _, segment := range excludedSegments {
		if strings.Contains(path, segment) {
			return true
		}
	}

	return false
}

// Matcher combines IsIgnored with user supplied doublestar ignore patterns.
type Matcher struct {
	patterns []string
}

// NewMatcher validates the extra patterns and returns a Matcher.
// Patterns are matched against the specifier without its "./" prefix.
func NewMatcher(patterns []string) (*Matcher, error) {
	cleaned := make([]string, 0, len(patterns))
	for _, pat := range patterns {
		pat = strings.TrimPrefix(strings.TrimSpace(pat), "./")
		if pat == "" {
			continue
		}
		if !doublestar.ValidatePattern(pat) {
			return nil, fmt.Errorf("invalid ignore pattern %q", pat)
		}
		cleaned = append(cleaned, pat)
	}
	return &Matcher{patterns: cleaned}, nil
}

// Patterns returns the extra ignore patterns.
func (m *Matcher) Patterns() []string {
	return slices.Clone(m.patterns)
}

// Ignored reports whether spec is rejected by the built-in rules or by any
// extra pattern. A nil Matcher applies the built-in rules only.
func (m *Matcher) Ignored(spec string) bool {
	if IsIgnored(spec) {
		return true
	}
	if m == nil {
		return false
	}

	rel := strings.TrimPrefix(spec, "./")
	for _, pat := range m.patterns {
		if matched, err := doublestar.Match(pat, rel); err == nil && matched {
			return true
		}
	}
	return false
}
