package filter

import "testing"

func TestIsIgnored(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		// accepted
		{"./mod.ts", false},
		{"./util.ts", false},
		{"./src/index.js", false},
		{"./components/button.tsx", false},
		{"./components/button.jsx", false},
		{"./esm/entry.mjs", false},
		{"./latest.ts", false},
		{"./contest.ts", false},

		// extension whitelist
		{"./README.md", true},
		{"./data.json", true},
		{"./mod.cjs", true},
		{"./Makefile", true},
		{"./src/LICENSE", true},
		{"./v1.2/LICENSE", true},

		// directories
		{"./tests/util.ts", true},
		{"./test/util.ts", true},
		{"./docs/guide.ts", true},
		{"./deps.ts", true},
		{"./deps/lib.ts", true},
		{"./node_modules/pkg/index.js", true},
		{"./.github/script.ts", true},
		{"./.hidden.ts", true},
		{"./_internal/util.ts", true},
		{"./src/_private.ts", true},

		// declarations
		{"./types.d.ts", true},

		// test and bench naming
		{"./test.ts", true},
		{"./util.test.ts", true},
		{"./util_test.ts", true},
		{"./bench.ts", true},
		{"./util.bench.ts", true},
		{"./util_bench.ts", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsIgnored(tt.path); got != tt.want {
				t.Errorf("IsIgnored(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsIgnored_HiddenAndUnderscoreRegardlessOfExtension(t *testing.T) {
	for _, ext := range Extensions {
		for _, path := range []string{"./.cache/file" + ext, "./src/_gen/file" + ext, "./_file" + ext} {
			if !IsIgnored(path) {
				t.Errorf("IsIgnored(%q) = false, want true", path)
			}
		}
	}
}

func TestMatcher(t *testing.T) {
	m, err := NewMatcher([]string{"./scripts/**", "examples/*.ts", " "})
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}

	if got := m.Patterns(); len(got) != 2 {
		t.Fatalf("expected 2 patterns, got %v", got)
	}

	tests := []struct {
		spec string
		want bool
	}{
		{"./mod.ts", false},
		{"./scripts/build.ts", true},
		{"./scripts/nested/deep.ts", true},
		{"./examples/basic.ts", true},
		{"./examples/nested/basic.ts", false},
		{"./util.test.ts", true},
	}

	for _, tt := range tests {
		if got := m.Ignored(tt.spec); got != tt.want {
			t.Errorf("Ignored(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}
}

func TestMatcher_Nil(t *testing.T) {
	var m *Matcher
	if m.Ignored("./mod.ts") {
		t.Error("nil matcher should accept ./mod.ts")
	}
	if !m.Ignored("./mod_test.ts") {
		t.Error("nil matcher should still apply built-in rules")
	}
}

func TestNewMatcher_InvalidPattern(t *testing.T) {
	if _, err := NewMatcher([]string{"src/[unclosed"}); err == nil {
		t.Error("expected error for invalid pattern")
	}
}
