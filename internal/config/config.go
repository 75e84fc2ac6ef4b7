// Package config loads the optional jsrgen configuration file, which supplies
// defaults for the command-line flags.
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/jsrgen/internal/core"
	"github.com/pelletier/go-toml/v2"
)

// EnvConfigPath overrides the configuration file location.
const EnvConfigPath = "JSRGEN_CONFIG"

// DefaultFiles are probed in order when EnvConfigPath is not set.
var DefaultFiles = []string{".jsrgen.yaml", ".jsrgen.yml", ".jsrgen.toml"}

// Config is the structure of a jsrgen configuration file.
type Config struct {
	Name    string   `yaml:"name" toml:"name"`
	Version string   `yaml:"version,omitempty" toml:"version,omitempty"`
	Exports []string `yaml:"exports,omitempty" toml:"exports,omitempty"`
	Ignore  []string `yaml:"ignore,omitempty" toml:"ignore,omitempty"`

	// Source is the file the configuration was read from.
	Source string `yaml:"-" toml:"-"`
}

// LoadConfigFn is the loader used by the CLI. Tests may replace it.
var LoadConfigFn = Load

// Load reads the configuration file from fsys. It returns nil, nil when no
// configuration file exists.
func Load(ctx context.Context, fsys core.FileSystem) (*Config, error) {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		cleanPath := filepath.Clean(envPath)
		if slices.Contains(strings.Split(filepath.ToSlash(cleanPath), "/"), "..") {
			return nil, fmt.Errorf("invalid %s: path traversal not allowed, use absolute path instead", EnvConfigPath)
		}
		return loadFile(ctx, fsys, cleanPath)
	}

	for _, file := range DefaultFiles {
		cfg, err := loadFile(ctx, fsys, file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return cfg, err
	}

	return nil, nil
}

func loadFile(ctx context.Context, fsys core.FileSystem, path string) (*Config, error) {
	data, err := fsys.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		if len(bytes.TrimSpace(data)) > 0 {
			decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
			if err := decoder.Decode(&cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	cfg.Source = path
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	return &cfg, nil
}
