package semver

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/indaco/jsrgen/internal/core"
	"github.com/indaco/jsrgen/internal/logging"
)

// ErrVersionNotFound is returned when neither an explicit version nor a
// usable git tag is available.
var ErrVersionNotFound = errors.New("No version found") //nolint:staticcheck // user-facing message

// Resolver determines the package version.
type Resolver struct {
	tags   core.GitTagOperations
	logger *log.Logger
}

// NewResolver returns a Resolver that falls back to tags when no explicit
// version is given. tags may be nil, in which case only explicit versions
// resolve.
func NewResolver(tags core.GitTagOperations, logger *log.Logger) *Resolver {
	return &Resolver{tags: tags, logger: logging.OrDiscard(logger)}
}

// Resolve returns explicit when it is not blank, otherwise the latest
// release tag. The result never carries a leading "v".
//
// Explicit values are taken as given; only tags must match IsReleaseTag.
func (r *Resolver) Resolve(ctx context.Context, explicit string) (string, error) {
	v := strings.TrimSpace(explicit)
	if v == "" {
		tag, err := r.latestTag(ctx)
		if err != nil {
			return "", err
		}
		v = tag
	} else if _, err := ParseVersion(v); err != nil {
		r.logger.Warn("explicit version is not a semantic version", "version", v)
	}

	if v == "" {
		return "", ErrVersionNotFound
	}

	return StripPrefix(v), nil
}

// latestTag returns the latest release tag, or "" when there is none.
// A failing git query counts as "no tag"; only a missing git binary is
// reported.
func (r *Resolver) latestTag(ctx context.Context) (string, error) {
	if r.tags == nil {
		return "", nil
	}

	tag, err := r.tags.LatestTag(ctx)
	if err != nil {
		if errors.Is(err, core.ErrGitNotInstalled) {
			return "", err
		}
		r.logger.Debug("tag lookup failed", "err", err)
		return "", nil
	}

	tag = strings.TrimSpace(tag)
	if !IsReleaseTag(tag) {
		r.logger.Debug("latest tag is not a release version", "tag", tag)
		return "", nil
	}

	return tag, nil
}
