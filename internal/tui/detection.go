// Package tui holds the optional interactive pieces of jsrgen.
package tui

import (
	"os"

	"golang.org/x/term"
)

// isTerminalFn reports whether fd is a terminal. Tests may replace it.
var isTerminalFn = term.IsTerminal

// ciEnvs are environment variables set by common CI systems.
var ciEnvs = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"GITLAB_CI",              // GitLab CI
	"CIRCLECI",               // CircleCI
	"TRAVIS",                 // Travis CI
	"JENKINS_HOME",           // Jenkins
	"BUILDKITE",              // Buildkite
	"BITBUCKET_BUILD_NUMBER", // Bitbucket Pipelines
	"DRONE",                  // Drone CI
	"TF_BUILD",               // Azure Pipelines
}

// IsInteractive reports whether prompts can be shown: stdin and stdout are
// terminals and no CI environment is detected.
func IsInteractive() bool {
	if !isTerminalFn(int(os.Stdin.Fd())) || !isTerminalFn(int(os.Stdout.Fd())) { //nolint:gosec // G115: fd is a small value, no overflow risk
		return false
	}

	for _, env := range ciEnvs {
		if os.Getenv(env) != "" {
			return false
		}
	}

	return true
}
