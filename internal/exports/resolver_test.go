package exports

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"testing"
	"testing/fstest"

	"github.com/indaco/jsrgen/internal/filter"
)

func tree(paths ...string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, p := range paths {
		fsys[p] = &fstest.MapFile{Data: []byte("export {};\n")}
	}
	return fsys
}

func TestResolver_Resolve_DefaultPatterns(t *testing.T) {
	fsys := tree("mod.ts", "util.ts", "tests/util.test.ts")

	got, err := NewResolver(fsys).Resolve(context.Background(), DefaultPatterns)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	want := []string{".", "./util.ts"}
	if !slices.Equal(got.Keys(), want) {
		t.Fatalf("keys = %v, want %v", got.Keys(), want)
	}
	if v, _ := got.Get("."); v != "./mod.ts" {
		t.Errorf(`"." = %q, want "./mod.ts"`, v)
	}
	if v, _ := got.Get("./util.ts"); v != "./util.ts" {
		t.Errorf(`"./util.ts" = %q, want "./util.ts"`, v)
	}

	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `{".":"./mod.ts","./util.ts":"./util.ts"}` {
		t.Errorf("json = %s", data)
	}
}

func TestResolver_Resolve_FiltersAndNesting(t *testing.T) {
	fsys := tree(
		"mod.ts",
		"src/mod.ts",
		"src/client.ts",
		"src/types.d.ts",
		"src/client_test.ts",
		"src/_internal.ts",
		"docs/example.ts",
		"node_modules/dep/index.ts",
		".github/workflows/check.ts",
		"bench.ts",
		"README.md",
	)

	got, err := NewResolver(fsys).Resolve(context.Background(), DefaultPatterns)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	want := []string{".", "./src/client.ts", "./src/mod.ts"}
	if !slices.Equal(got.Keys(), want) {
		t.Errorf("keys = %v, want %v", got.Keys(), want)
	}
}

func TestResolver_Resolve_SkipsDirectories(t *testing.T) {
	fsys := fstest.MapFS{
		"lib.ts/inner.ts": &fstest.MapFile{Data: []byte("x")},
	}

	got, err := NewResolver(fsys).Resolve(context.Background(), []string{"*.ts"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Len() != 0 {
		t.Errorf("expected no exports, got %v", got.Keys())
	}
}

// Several mod.<ext> files compete for the root key; the last one found wins.
func TestResolver_Resolve_RootEntryLastWriteWins(t *testing.T) {
	fsys := tree("mod.ts", "mod.js")

	got, err := NewResolver(fsys).Resolve(context.Background(), []string{"./mod.ts", "./mod.js"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Len() != 1 {
		t.Fatalf("expected a single entry, got %v", got.Keys())
	}
	if v, _ := got.Get(RootKey); v != "./mod.js" {
		t.Errorf(`"." = %q, want "./mod.js"`, v)
	}
}

func TestResolver_Resolve_PatternOrder(t *testing.T) {
	fsys := tree("b.ts", "a.js", "c.ts")

	got, err := NewResolver(fsys).Resolve(context.Background(), []string{"*.ts", "*.js"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	want := []string{"./b.ts", "./c.ts", "./a.js"}
	if !slices.Equal(got.Keys(), want) {
		t.Errorf("keys = %v, want %v", got.Keys(), want)
	}
}

func TestResolver_Resolve_ExtraIgnore(t *testing.T) {
	fsys := tree("mod.ts", "scripts/release.ts", "src/a.ts")

	m, err := filter.NewMatcher([]string{"scripts/**"})
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}

	got, err := NewResolver(fsys, WithMatcher(m)).Resolve(context.Background(), DefaultPatterns)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	want := []string{".", "./src/a.ts"}
	if !slices.Equal(got.Keys(), want) {
		t.Errorf("keys = %v, want %v", got.Keys(), want)
	}
}

func TestResolver_Resolve_BadPattern(t *testing.T) {
	_, err := NewResolver(tree("mod.ts")).Resolve(context.Background(), []string{"src/[abc"})
	if err == nil {
		t.Fatal("expected error for malformed pattern")
	}
}

func TestResolver_Resolve_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewResolver(tree("mod.ts")).Resolve(ctx, DefaultPatterns)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestKeyFor(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"./mod.ts", "."},
		{"./mod.js", "."},
		{"./mod.test.ts", "./mod.test.ts"},
		{"./src/mod.ts", "./src/mod.ts"},
		{"./module.ts", "./module.ts"},
	}

	for _, tt := range tests {
		if got := KeyFor(tt.spec); got != tt.want {
			t.Errorf("KeyFor(%q) = %q, want %q", tt.spec, got, tt.want)
		}
	}
}

func TestParsePatterns(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty uses defaults", "", DefaultPatterns},
		{"only commas uses defaults", " , ,", DefaultPatterns},
		{"single", "./src/**/*.ts", []string{"./src/**/*.ts"}},
		{"trims and drops blanks", "./a.ts, ./b.ts,,", []string{"./a.ts", "./b.ts"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParsePatterns(tt.in); !slices.Equal(got, tt.want) {
				t.Errorf("ParsePatterns(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidatePatterns(t *testing.T) {
	if err := ValidatePatterns(DefaultPatterns); err != nil {
		t.Errorf("default patterns should be valid: %v", err)
	}
	if err := ValidatePatterns([]string{"./ok.ts", "{a,b"}); err == nil {
		t.Error("expected error for unclosed alternation")
	}
}

func TestMap_MarshalJSON(t *testing.T) {
	m := NewMap()
	m.Set("./b.ts", "./b.ts")
	m.Set(".", "./mod.ts")
	m.Set("./b.ts", "./b2.ts")
	m.Set("./<x>.ts", "./<x>.ts")

	data, err := m.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	want := `{"./b.ts":"./b2.ts",".":"./mod.ts","./<x>.ts":"./<x>.ts"}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}

	quoted := NewMap()
	quoted.Set(`./a"b.ts`, `./a"b.ts`)
	quoted.Set("./ü.ts", "./ü.ts")
	data, err = quoted.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if want := `{"./a\"b.ts":"./a\"b.ts","./ü.ts":"./ü.ts"}`; string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}

	var empty Map
	data, err = empty.MarshalJSON()
	if err != nil || string(data) != "{}" {
		t.Errorf("empty map: got %s, %v", data, err)
	}
}
