// Package semver parses semantic versions and resolves the version jsrgen
// publishes: an explicit value, or the latest vMAJOR.MINOR.PATCH git tag.
package semver
