// Package git runs the git queries jsrgen relies on.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/indaco/jsrgen/internal/core"
)

// ErrNoTags is returned when the repository has no reachable tag.
var ErrNoTags = errors.New("no tags found")

// TagOperations implements core.GitTagOperations using the git binary.
type TagOperations struct {
	dir         string
	execCommand func(ctx context.Context, name string, arg ...string) *exec.Cmd
}

// NewTagOperations returns TagOperations that run git inside dir.
// An empty dir means the current directory.
func NewTagOperations(dir string) *TagOperations {
	return &TagOperations{
		dir:         dir,
		execCommand: exec.CommandContext,
	}
}

// Verify TagOperations implements core.GitTagOperations.
var _ core.GitTagOperations = (*TagOperations)(nil)

// LatestTag returns the most recent tag reachable from HEAD, without the
// commit-distance suffix (git describe --tags --abbrev=0).
func (g *TagOperations) LatestTag(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, core.TimeoutGit)
	defer cancel()

	cmd := g.execCommand(ctx, "git", "describe", "--tags", "--abbrev=0")
	cmd.Dir = g.dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %w", core.ErrGitNotInstalled, err)
		}
		stderrMsg := strings.TrimSpace(stderr.String())
		if stderrMsg != "" {
			return "", fmt.Errorf("%s: %w", stderrMsg, err)
		}
		return "", fmt.Errorf("git describe failed: %w", err)
	}

	tag := strings.TrimSpace(stdout.String())
	if tag == "" {
		return "", ErrNoTags
	}

	return tag, nil
}
