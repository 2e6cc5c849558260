// Package release owns the release collection. Deleting a release
// cascades: affected issues lose their releaseId so nothing ever points
// at a release that no longer exists.
package release

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"jornada/internal/database"
	"jornada/internal/models"
	"jornada/internal/observe"
	"jornada/internal/services/issue"
	"jornada/internal/services/undo"
)

// Service is the single writer for the release collection.
type Service struct {
	mu     sync.Mutex
	table  database.ReleaseTable
	undo   *undo.Service
	issues *issue.Service
	cell   *observe.Cell[[]*models.Release]
}

// NewService creates a release store. The issue store is needed for the
// delete cascade and its undo.
func NewService(table database.ReleaseTable, undoSvc *undo.Service, issues *issue.Service) *Service {
	return &Service{
		table:  table,
		undo:   undoSvc,
		issues: issues,
		cell:   observe.NewCell([]*models.Release(nil)),
	}
}

// InitFromDB loads the collection. Releases have no seed document;
// a fresh database starts with none.
func (s *Service) InitFromDB(ctx context.Context) error {
	return s.LoadFromDB(ctx)
}

// LoadFromDB reads all releases and publishes them.
func (s *Service) LoadFromDB(ctx context.Context) error {
	releases, err := s.table.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load releases: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cell.Set(releases)
	return nil
}

// Releases returns the current snapshot.
func (s *Service) Releases() []*models.Release {
	return s.cell.Get()
}

// Cell exposes the collection for subscription.
func (s *Service) Cell() *observe.Cell[[]*models.Release] {
	return s.cell
}

// ByID returns the release with the given id, if present.
func (s *Service) ByID(id string) (*models.Release, bool) {
	for _, release := range s.cell.Get() {
		if release.ID == id {
			return release, true
		}
	}
	return nil, false
}

// Create persists a new release (UUID assigned when absent) and reloads
// the full collection.
func (s *Service) Create(ctx context.Context, release *models.Release) error {
	if release.Name == "" {
		return ErrEmptyName
	}
	r := release.Clone()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if err := s.table.Put(ctx, r); err != nil {
		return fmt.Errorf("create release: %w", err)
	}
	return s.LoadFromDB(ctx)
}

// Update upserts by id and swaps the matching in-memory entry; every
// other entry keeps its identity.
func (s *Service) Update(ctx context.Context, updated *models.Release) error {
	if err := s.table.Put(ctx, updated); err != nil {
		return fmt.Errorf("update release: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.cell.Get()
	next := make([]*models.Release, len(current))
	for i, release := range current {
		if release.ID == updated.ID {
			next[i] = updated
		} else {
			next[i] = release
		}
	}
	s.cell.Set(next)
	return nil
}

// Delete removes a release from storage and memory. Issues referencing
// it are not touched; DeleteWithUndo is the cascading variant.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.table.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete release: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.cell.Get()
	next := make([]*models.Release, 0, len(current))
	for _, release := range current {
		if release.ID != id {
			next = append(next, release)
		}
	}
	s.cell.Set(next)
	return nil
}

// DeleteWithUndo removes a release, clears its id from every issue that
// referenced it, and offers an undo that re-creates the release and
// re-assigns exactly those issues.
func (s *Service) DeleteWithUndo(ctx context.Context, release *models.Release) error {
	releaseID := release.ID
	kept := release.Clone()

	affected := s.issues.ForRelease(releaseID)
	affectedIDs := make([]string, len(affected))
	for i, iss := range affected {
		affectedIDs[i] = iss.ID
	}

	if err := s.Delete(ctx, releaseID); err != nil {
		return err
	}

	// Cascade in memory, then flush the final issue state in one batch
	for _, id := range affectedIDs {
		s.issues.RemoveFromRelease(id)
	}
	if err := s.issues.SaveAll(ctx, affectedIDs...); err != nil {
		return err
	}

	s.undo.ShowUndo(fmt.Sprintf("Release '%s' deleted", kept.Name), func(ctx context.Context) error {
		if err := s.Create(ctx, kept); err != nil {
			return err
		}
		for _, id := range affectedIDs {
			if err := s.issues.AssignToRelease(ctx, id, &releaseID); err != nil {
				return err
			}
		}
		return nil
	}, 0)

	return nil
}

// ResetAll clears the table and reloads. There is no release seed, so
// this leaves the collection empty.
func (s *Service) ResetAll(ctx context.Context) error {
	if err := s.table.Clear(ctx); err != nil {
		return fmt.Errorf("reset releases: %w", err)
	}
	return s.LoadFromDB(ctx)
}

// ReplaceAll swaps the whole collection: clear, bulk insert, publish.
// Used by import; a nil slice simply clears.
func (s *Service) ReplaceAll(ctx context.Context, releases []*models.Release) error {
	if err := s.table.Clear(ctx); err != nil {
		return fmt.Errorf("replace releases: %w", err)
	}
	if err := s.table.BulkPut(ctx, releases); err != nil {
		return fmt.Errorf("replace releases: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cell.Set(releases)
	return nil
}
