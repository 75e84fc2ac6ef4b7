// Package generator runs the jsrgen pipeline: resolve the version and the
// export map, merge them into the project configuration and write it back.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/indaco/jsrgen/internal/exports"
	"github.com/indaco/jsrgen/internal/logging"
	"github.com/indaco/jsrgen/internal/manifest"
	"github.com/indaco/jsrgen/internal/tui"
	"golang.org/x/sync/errgroup"
)

// ErrMissingName is returned when no package name is given.
var ErrMissingName = errors.New("Missing name") //nolint:staticcheck // user-facing message

// ExportResolver builds the export map.
type ExportResolver interface {
	Resolve(ctx context.Context, patterns []string) (*exports.Map, error)
}

// VersionResolver determines the package version.
type VersionResolver interface {
	Resolve(ctx context.Context, explicit string) (string, error)
}

// DocumentStore locates and persists the configuration document.
type DocumentStore interface {
	Locate(ctx context.Context) (*manifest.Document, error)
	Save(ctx context.Context, doc *manifest.Document) error
}

// Options are the inputs of a single run.
type Options struct {
	Name    string
	Version string
	// Exports are glob patterns; empty means exports.DefaultPatterns.
	Exports []string
	// DryRun merges in memory without writing.
	DryRun bool
	// Confirmer, when set, is asked before writing.
	Confirmer tui.Confirmer
}

// Result describes the outcome of Run.
type Result struct {
	Path     string
	Fragment *manifest.Fragment
	Document *manifest.Document
	// PreviousVersion is the version found in the document before merging.
	PreviousVersion string
	Written         bool
}

// Generator wires the pipeline stages together.
type Generator struct {
	exports  ExportResolver
	versions VersionResolver
	store    DocumentStore
	logger   *log.Logger
}

// New returns a Generator.
func New(exportResolver ExportResolver, versionResolver VersionResolver, store DocumentStore, logger *log.Logger) *Generator {
	return &Generator{
		exports:  exportResolver,
		versions: versionResolver,
		store:    store,
		logger:   logging.OrDiscard(logger),
	}
}

// Build validates the options and computes the manifest fragment. The version
// and the export map are resolved concurrently.
func (g *Generator) Build(ctx context.Context, opts Options) (*manifest.Fragment, error) {
	name := opts.Name
	if name == "" {
		return nil, ErrMissingName
	}

	patterns := opts.Exports
	if len(patterns) == 0 {
		patterns = exports.DefaultPatterns
	}

	fragment := &manifest.Fragment{Name: name}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		version, err := g.versions.Resolve(egCtx, opts.Version)
		if err != nil {
			return err
		}
		fragment.Version = version
		return nil
	})
	eg.Go(func() error {
		exportMap, err := g.exports.Resolve(egCtx, patterns)
		if err != nil {
			return err
		}
		fragment.Exports = exportMap
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	g.logger.Debug("fragment ready", "name", fragment.Name, "version", fragment.Version, "exports", fragment.Exports.Len())
	if fragment.Exports.Len() == 0 {
		g.logger.Warn("no exports found", "patterns", strings.Join(patterns, ","))
	}

	return fragment, nil
}

// Run builds the fragment, merges it into the located document and writes it.
func (g *Generator) Run(ctx context.Context, opts Options) (*Result, error) {
	fragment, err := g.Build(ctx, opts)
	if err != nil {
		return nil, err
	}

	doc, err := g.store.Locate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to locate configuration: %w", err)
	}

	result := &Result{
		Path:            doc.Path,
		Fragment:        fragment,
		Document:        doc,
		PreviousVersion: doc.Get(manifest.KeyVersion).String(),
	}

	if err := doc.Merge(fragment); err != nil {
		return nil, err
	}

	if opts.DryRun {
		return result, nil
	}

	if opts.Confirmer != nil {
		ok, err := opts.Confirmer.Confirm(
			fmt.Sprintf("Write %s?", doc.Path),
			fmt.Sprintf("%s@%s with %d exports", fragment.Name, fragment.Version, fragment.Exports.Len()),
		)
		if err != nil {
			return nil, fmt.Errorf("confirmation failed: %w", err)
		}
		if !ok {
			g.logger.Info("write cancelled", "file", doc.Path)
			return result, nil
		}
	}

	if err := g.store.Save(ctx, doc); err != nil {
		return nil, err
	}
	result.Written = true

	return result, nil
}
