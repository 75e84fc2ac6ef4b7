package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SemVersion represents a semantic version (major.minor.patch-preRelease+build).
type SemVersion struct {
	Major      int
	Minor      int
	Patch      int
	PreRelease string
	Build      string
}

var (
	// versionRegex matches semantic version strings with optional "v" prefix,
	// optional pre-release and optional build metadata.
	versionRegex = regexp.MustCompile(
		`^v?(\d+)\.(\d+)\.(\d+)` + // major.minor.patch
			`(?:-([0-9A-Za-z\-\.]+))?` + // optional pre-release
			`(?:\+([0-9A-Za-z\-\.]+))?$`, // optional build metadata
	)

	// releaseTagRegex is the only tag shape accepted as a package version:
	// an optional "v" and three numeric components, nothing else.
	releaseTagRegex = regexp.MustCompile(`^v?\d+\.\d+\.\d+$`)

	errInvalidVersion = errors.New("invalid version format")
)

// maxVersionLength caps the input handed to the regex parser.
const maxVersionLength = 128

// ParseVersion parses a semantic version string such as "1.2.3",
// "v1.2.3-rc.1" or "1.2.3+build.5".
func ParseVersion(s string) (SemVersion, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) > maxVersionLength {
		return SemVersion{}, fmt.Errorf("%w: version string exceeds maximum length of %d", errInvalidVersion, maxVersionLength)
	}

	matches := versionRegex.FindStringSubmatch(trimmed)
	if len(matches) < 4 {
		return SemVersion{}, errInvalidVersion
	}

	major, err := strconv.Atoi(matches[1])
	if err != nil {
		return SemVersion{}, fmt.Errorf("%w: invalid major version: %s", errInvalidVersion, err.Error())
	}
	minor, err := strconv.Atoi(matches[2])
	if err != nil {
		return SemVersion{}, fmt.Errorf("%w: invalid minor version: %s", errInvalidVersion, err.Error())
	}
	patch, err := strconv.Atoi(matches[3])
	if err != nil {
		return SemVersion{}, fmt.Errorf("%w: invalid patch version: %s", errInvalidVersion, err.Error())
	}

	return SemVersion{Major: major, Minor: minor, Patch: patch, PreRelease: matches[4], Build: matches[5]}, nil
}

// IsReleaseTag reports whether tag has the strict vMAJOR.MINOR.PATCH shape.
func IsReleaseTag(tag string) bool {
	return releaseTagRegex.MatchString(tag)
}

// StripPrefix removes a single leading "v".
func StripPrefix(v string) string {
	return strings.TrimPrefix(v, "v")
}
