package exports

import (
	"context"
	"fmt"
	"io/fs"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/indaco/jsrgen/internal/filter"
	"github.com/indaco/jsrgen/internal/logging"
)

// DefaultPatterns match every TypeScript file at the top level and below.
var DefaultPatterns = []string{"./*.ts", "./**/*.ts"}

// rootEntryRegex matches a top-level "mod" file with a single extension.
var rootEntryRegex = regexp.MustCompile(`^\./mod\.\w+$`)

// Resolver builds export maps from glob patterns.
type Resolver struct {
	fsys    fs.FS
	matcher *filter.Matcher
	logger  *log.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMatcher replaces the default built-in filter.
func WithMatcher(m *filter.Matcher) Option {
	return func(r *Resolver) {
		r.matcher = m
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// NewResolver returns a Resolver that expands patterns against fsys.
func NewResolver(fsys fs.FS, opts ...Option) *Resolver {
	r := &Resolver{fsys: fsys}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logging.OrDiscard(r.logger)
	return r
}

// Resolve expands each pattern in order and returns the export map.
// Entries found later overwrite earlier ones with the same key.
func (r *Resolver) Resolve(ctx context.Context, patterns []string) (*Map, error) {
	result := NewMap()

	for _, pattern := range patterns {
		glob := normalizePattern(pattern)
		if glob == "" {
			continue
		}

		r.logger.Debug("expanding pattern", "pattern", pattern)

		err := doublestar.GlobWalk(r.fsys, glob, func(path string, d fs.DirEntry) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}

			spec := Specifier(path)
			if r.matcher.Ignored(spec) {
				r.logger.Debug("ignored", "path", spec)
				return nil
			}

			key := KeyFor(spec)
			if prev, ok := result.Get(key); ok && key == RootKey && prev != spec {
				r.logger.Warn("root entry replaced", "previous", prev, "current", spec)
			}
			result.Set(key, spec)
			return nil
		}, doublestar.WithFailOnIOErrors(), doublestar.WithNoHidden())
		if err != nil {
			return nil, fmt.Errorf("failed to expand pattern %q: %w", pattern, err)
		}
	}

	return result, nil
}

// Specifier turns a slash-separated path relative to the root into a
// relative import specifier ("src/a.ts" -> "./src/a.ts").
func Specifier(rel string) string {
	return "./" + strings.TrimPrefix(rel, "/")
}

// KeyFor returns the export key for an accepted specifier: RootKey for a
// top-level mod.<ext> file, the specifier itself otherwise.
func KeyFor(spec string) string {
	if rootEntryRegex.MatchString(spec) {
		return RootKey
	}
	return spec
}

// ParsePatterns splits a comma-separated pattern list, dropping blanks.
// An empty result falls back to DefaultPatterns.
func ParsePatterns(list string) []string {
	var patterns []string
	for part := range strings.SplitSeq(list, ",") {
		if p := strings.TrimSpace(part); p != "" {
			patterns = append(patterns, p)
		}
	}
	if len(patterns) == 0 {
		return append([]string(nil), DefaultPatterns...)
	}
	return patterns
}

// ValidatePatterns reports the first malformed pattern.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(normalizePattern(p)) {
			return fmt.Errorf("invalid export pattern %q", p)
		}
	}
	return nil
}

// normalizePattern makes a pattern relative to the fs.FS root.
func normalizePattern(pattern string) string {
	p := strings.TrimSpace(pattern)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return strings.TrimPrefix(p, "/")
}
