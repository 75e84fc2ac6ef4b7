package core

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
)

// OSFileSystem implements FileSystem on the real filesystem. Relative paths
// are resolved against Root, so callers never depend on the process working
// directory.
type OSFileSystem struct {
	Root string
}

// NewOSFileSystem returns an OSFileSystem rooted at root.
// An empty root means the current directory.
func NewOSFileSystem(root string) *OSFileSystem {
	if root == "" {
		root = "."
	}
	return &OSFileSystem{Root: root}
}

// Verify OSFileSystem implements FileSystem and DirFS.
var (
	_ FileSystem = (*OSFileSystem)(nil)
	_ DirFS      = (*OSFileSystem)(nil)
)

func (f *OSFileSystem) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(f.Root, path)
}

func (f *OSFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(f.resolve(path))
}

func (f *OSFileSystem) WriteFile(ctx context.Context, path string, data []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(f.resolve(path), data, perm)
}

func (f *OSFileSystem) Stat(ctx context.Context, path string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Stat(f.resolve(path))
}

// FS returns the root directory as an fs.FS.
func (f *OSFileSystem) FS() fs.FS {
	return os.DirFS(f.Root)
}
