// Package dataio serializes the three collections into one JSON
// document and restores them from one, delegating the per-collection
// replacement to each store.
package dataio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"jornada/internal/models"
	"jornada/internal/services/issue"
	"jornada/internal/services/journey"
	"jornada/internal/services/release"
)

// DefaultExportFilename is used when the caller gives no path.
const DefaultExportFilename = "storymap-export.json"

// Service is the import/export gateway over the three stores.
type Service struct {
	journeys *journey.Service
	issues   *issue.Service
	releases *release.Service
}

// NewService creates the gateway.
func NewService(journeys *journey.Service, issues *issue.Service, releases *release.Service) *Service {
	return &Service{journeys: journeys, issues: issues, releases: releases}
}

// Export writes the current collections as one indented JSON document.
func (s *Service) Export(w io.Writer) error {
	doc := models.Document{
		Journeys: s.journeys.Journeys(),
		Issues:   s.issues.Issues(),
		Releases: s.releases.Releases(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// ExportToFile exports to the given path, or DefaultExportFilename when
// path is empty.
func (s *Service) ExportToFile(path string) error {
	if path == "" {
		path = DefaultExportFilename
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export to %s: %w", path, err)
	}
	defer f.Close()

	if err := s.Export(f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export to %s: %w", path, err)
	}
	slog.Info("exported story map", "path", path)
	return nil
}

// Import parses a document and replaces all three collections, in
// journey, issue, release order. The journeys and issues keys are
// required; when either is missing the import fails with
// ErrMalformedImport and no store is touched. The document is a full
// snapshot, so a missing releases key clears the release store.
func (s *Service) Import(ctx context.Context, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	// Probe key presence before decoding into entities, so a document
	// without the required keys is rejected with zero side effects.
	var probe struct {
		Journeys json.RawMessage `json:"journeys"`
		Issues   json.RawMessage `json:"issues"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}
	if probe.Journeys == nil || probe.Issues == nil {
		return fmt.Errorf("%w: missing required keys \"journeys\" or \"issues\"", ErrMalformedImport)
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}

	if err := s.journeys.ReplaceAll(ctx, doc.Journeys); err != nil {
		return fmt.Errorf("import journeys: %w", err)
	}
	if err := s.issues.ReplaceAll(ctx, doc.Issues); err != nil {
		return fmt.Errorf("import issues: %w", err)
	}
	if err := s.releases.ReplaceAll(ctx, doc.Releases); err != nil {
		return fmt.Errorf("import releases: %w", err)
	}
	return nil
}

// ImportFromFile imports the document at path.
func (s *Service) ImportFromFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("import from %s: %w", path, err)
	}
	defer f.Close()

	if err := s.Import(ctx, f); err != nil {
		return err
	}
	slog.Info("imported story map", "path", path)
	return nil
}
