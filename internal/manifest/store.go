package manifest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/indaco/jsrgen/internal/core"
	"github.com/indaco/jsrgen/internal/logging"
	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

var errNotObject = errors.New("document is not a JSON object")

// Store reads and writes configuration documents.
type Store struct {
	fs         core.FileSystem
	candidates []string
	logger     *log.Logger
}

// NewStore returns a Store probing Candidates on fsys.
func NewStore(fsys core.FileSystem, logger *log.Logger) *Store {
	return &Store{
		fs:         fsys,
		candidates: Candidates,
		logger:     logging.OrDiscard(logger),
	}
}

// Probe reads and parses a single candidate file.
// Files ending in ".jsonc" may contain comments and trailing commas.
func (s *Store) Probe(ctx context.Context, file string) Probe {
	data, err := s.fs.ReadFile(ctx, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Probe{File: file, Status: ProbeNotFound}
		}
		return Probe{File: file, Status: ProbeInvalid, Err: &ProbeError{File: file, Err: err}}
	}

	if strings.EqualFold(filepath.Ext(file), ".jsonc") {
		data = jsonc.ToJSON(data)
	}

	if !gjson.ValidBytes(data) {
		return Probe{File: file, Status: ProbeInvalid, Err: &ProbeError{File: file, Err: errors.New("invalid JSON")}}
	}
	if !gjson.ParseBytes(data).IsObject() {
		return Probe{File: file, Status: ProbeInvalid, Err: &ProbeError{File: file, Err: errNotObject}}
	}

	return Probe{File: file, Status: ProbeFound, Data: data}
}

// Locate returns the first candidate holding a JSON object. Missing and
// unparsable files are skipped; when none is usable an empty document for
// DefaultFile is returned. Only context cancellation is reported as an error.
func (s *Store) Locate(ctx context.Context) (*Document, error) {
	for _, file := range s.candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		probe := s.Probe(ctx, file)
		switch probe.Status {
		case ProbeFound:
			s.logger.Debug("using config", "file", file)
			doc := NewDocument(file, probe.Data)
			doc.fromDisk = true
			return doc, nil
		case ProbeInvalid:
			if errors.Is(probe.Err, context.Canceled) || errors.Is(probe.Err, context.DeadlineExceeded) {
				return nil, probe.Err
			}
			s.logger.Warn("skipping config", "file", file, "err", probe.Err)
		default:
			s.logger.Debug("config not found", "file", file)
		}
	}

	s.logger.Debug("no usable config, creating default", "file", DefaultFile)
	return NewDocument(DefaultFile, nil), nil
}

// Save writes the document to its Path, replacing the previous content.
func (s *Store) Save(ctx context.Context, doc *Document) error {
	if err := s.fs.WriteFile(ctx, doc.Path, doc.Bytes(), core.PermOwnerRW); err != nil {
		return fmt.Errorf("failed to write %s: %w", doc.Path, err)
	}
	return nil
}
