// Package cli defines the jsrgen command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/indaco/jsrgen/internal/config"
	"github.com/indaco/jsrgen/internal/core"
	"github.com/indaco/jsrgen/internal/exports"
	"github.com/indaco/jsrgen/internal/filter"
	"github.com/indaco/jsrgen/internal/generator"
	"github.com/indaco/jsrgen/internal/git"
	"github.com/indaco/jsrgen/internal/logging"
	"github.com/indaco/jsrgen/internal/manifest"
	"github.com/indaco/jsrgen/internal/printer"
	"github.com/indaco/jsrgen/internal/semver"
	"github.com/indaco/jsrgen/internal/tui"
	urfavecli "github.com/urfave/cli/v3"
)

// Function variables for testability.
var (
	newTagOperationsFn = func(dir string) core.GitTagOperations {
		return git.NewTagOperations(dir)
	}
	newConfirmerFn = func() tui.Confirmer {
		return tui.NewPrompter()
	}
	isInteractiveFn = tui.IsInteractive
)

// New builds the root jsrgen command.
func New() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "jsrgen",
		Usage: "Write the JSR name, version and exports of a project into its config file",
		UsageText: `jsrgen --name @scope/pkg [options]

Scans the project for publishable modules, takes the version from --version
or from the latest vX.Y.Z git tag, and merges name, version and exports into
the first of deno.json, deno.jsonc, jsr.json, jsr.jsonc (jsr.json is created
when none exists).`,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "Package name, e.g. @scope/pkg",
				Sources: urfavecli.EnvVars("JSRGEN_NAME"),
			},
			&urfavecli.StringFlag{
				Name:        "version",
				Usage:       "Package version (defaults to the latest git tag)",
				Sources:     urfavecli.EnvVars("JSRGEN_VERSION"),
				DefaultText: "latest tag",
			},
			&urfavecli.StringFlag{
				Name:        "exports",
				Aliases:     []string{"e"},
				Usage:       "Comma-separated glob patterns of exported files",
				DefaultText: strings.Join(exports.DefaultPatterns, ","),
			},
			&urfavecli.StringFlag{
				Name:  "ignore",
				Usage: "Comma-separated glob patterns of files never exported",
			},
			&urfavecli.StringFlag{
				Name:    "dir",
				Aliases: []string{"C"},
				Usage:   "Project directory",
				Value:   ".",
			},
			&urfavecli.BoolFlag{
				Name:  "dry-run",
				Usage: "Print the merged configuration instead of writing it",
			},
			&urfavecli.BoolFlag{
				Name:  "confirm",
				Usage: "Ask before writing (only in interactive terminals)",
			},
			&urfavecli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"V"},
				Usage:   "Print debug information to stderr",
			},
			&urfavecli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(cmd.Bool("no-color"))
			return ctx, nil
		},
		Action: run,
	}
}

// run executes the generation pipeline.
func run(ctx context.Context, cmd *urfavecli.Command) error {
	dir := cmd.String("dir")
	fsys := core.NewOSFileSystem(dir)
	logger := logging.New(errWriter(cmd), logging.Options{
		Verbose: cmd.Bool("verbose"),
		NoColor: cmd.Bool("no-color"),
	})

	cfg, err := config.LoadConfigFn(ctx, fsys)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg == nil {
		cfg = &config.Config{}
	} else {
		logger.Debug("loaded configuration", "file", cfg.Source)
	}

	opts := generator.Options{
		Name:    firstNonEmpty(cmd.String("name"), cfg.Name),
		Version: firstNonEmpty(cmd.String("version"), cfg.Version),
		Exports: cfg.Exports,
		DryRun:  cmd.Bool("dry-run"),
	}
	if cmd.IsSet("exports") {
		opts.Exports = exports.ParsePatterns(cmd.String("exports"))
	}
	if err := exports.ValidatePatterns(opts.Exports); err != nil {
		return err
	}

	ignore := append(splitList(cmd.String("ignore")), cfg.Ignore...)
	matcher, err := filter.NewMatcher(ignore)
	if err != nil {
		return err
	}
	if extra := matcher.Patterns(); len(extra) > 0 {
		logger.Debug("extra ignore patterns", "patterns", strings.Join(extra, ","))
	}

	if cmd.Bool("confirm") && !opts.DryRun {
		if isInteractiveFn() {
			opts.Confirmer = newConfirmerFn()
		} else {
			logger.Warn("--confirm ignored: not an interactive terminal")
		}
	}

	gen := generator.New(
		exports.NewResolver(fsys.FS(), exports.WithMatcher(matcher), exports.WithLogger(logger)),
		semver.NewResolver(newTagOperationsFn(dir), logger),
		manifest.NewStore(fsys, logger),
		logger,
	)

	result, err := gen.Run(ctx, opts)
	if err != nil {
		return err
	}

	action := "created"
	if result.Document.Existing() {
		action = "updated"
	}
	logger.Debug(action, "file", result.Path, "exports", result.Fragment.Exports.Len())
	logger.Debug("version", "previous", result.PreviousVersion, "new", result.Fragment.Version)

	switch {
	case opts.DryRun:
		printer.PrintPlain(string(result.Document.Bytes()))
	case result.Written:
		printer.PrintSuccess(fmt.Sprintf("Updated %s", result.Path))
	default:
		printer.PrintWarning(fmt.Sprintf("Skipped %s", result.Path))
	}

	return nil
}

// errWriter returns the diagnostics writer of the root command.
func errWriter(cmd *urfavecli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// splitList splits a comma-separated flag value, dropping blanks.
func splitList(value string) []string {
	var items []string
	for part := range strings.SplitSeq(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			items = append(items, p)
		}
	}
	return items
}
