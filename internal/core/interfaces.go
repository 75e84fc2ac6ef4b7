// Package core holds the small abstractions shared by every jsrgen package:
// a context-aware filesystem, the git tag query contract and common constants.
package core

import (
	"context"
	"errors"
	"io/fs"
	"os"
)

// ErrGitNotInstalled is returned when the git binary cannot be started.
var ErrGitNotInstalled = errors.New("git executable not found")

// FileSystem abstracts the file operations jsrgen performs on the working
// directory so they can be replaced in tests.
type FileSystem interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, data []byte, perm os.FileMode) error
	Stat(ctx context.Context, path string) (os.FileInfo, error)
}

// DirFS is implemented by filesystems that can expose themselves as an fs.FS
// for glob expansion.
type DirFS interface {
	FS() fs.FS
}

// GitTagOperations defines the git tag queries jsrgen needs.
type GitTagOperations interface {
	LatestTag(ctx context.Context) (string, error)
}
