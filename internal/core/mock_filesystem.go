package core

import (
	"context"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests.
type MockFileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte

	// ReadErr and WriteErr, when set, are returned by every read or write.
	ReadErr  error
	WriteErr error
}

// NewMockFileSystem returns an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{files: make(map[string][]byte)}
}

// Verify MockFileSystem implements FileSystem and DirFS.
var (
	_ FileSystem = (*MockFileSystem)(nil)
	_ DirFS      = (*MockFileSystem)(nil)
)

func cleanKey(name string) string {
	return strings.TrimPrefix(path.Clean("/"+name), "/")
}

// SetFile stores content at name.
func (m *MockFileSystem) SetFile(name string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[cleanKey(name)] = content
}

// GetFile returns the content stored at name.
func (m *MockFileSystem) GetFile(name string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[cleanKey(name)]
	return data, ok
}

func (m *MockFileSystem) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	data, ok := m.GetFile(name)
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (m *MockFileSystem) WriteFile(ctx context.Context, name string, data []byte, _ os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.SetFile(name, append([]byte(nil), data...))
	return nil
}

func (m *MockFileSystem) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fs.Stat(m.FS(), cleanKey(name))
}

// FS returns a read-only snapshot of the stored files.
func (m *MockFileSystem) FS() fs.FS {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snapshot := make(fstest.MapFS, len(m.files))
	for name, data := range m.files {
		snapshot[name] = &fstest.MapFile{Data: data, Mode: PermOwnerRW, ModTime: time.Time{}}
	}
	return snapshot
}
