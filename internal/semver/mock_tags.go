package semver

import (
	"context"

	"github.com/indaco/jsrgen/internal/core"
)

// MockTagOperations is a core.GitTagOperations stub for tests.
type MockTagOperations struct {
	LatestTagFn func(ctx context.Context) (string, error)
	Calls       int
}

// Verify MockTagOperations implements core.GitTagOperations.
var _ core.GitTagOperations = (*MockTagOperations)(nil)

// LatestTag implements core.GitTagOperations.
func (m *MockTagOperations) LatestTag(ctx context.Context) (string, error) {
	m.Calls++
	if m.LatestTagFn != nil {
		return m.LatestTagFn(ctx)
	}
	return "", nil
}

// StaticTag returns a MockTagOperations that always reports tag.
func StaticTag(tag string) *MockTagOperations {
	return &MockTagOperations{
		LatestTagFn: func(context.Context) (string, error) { return tag, nil },
	}
}
