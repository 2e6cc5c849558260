// Package issue owns the issue collection and every placement mutation:
// assigning issues to steps and releases, unassigning them, and the
// undo actions those mutations offer.
package issue

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"jornada/internal/database"
	"jornada/internal/models"
	"jornada/internal/observe"
	"jornada/internal/seed"
	"jornada/internal/services/undo"
)

// StepNamer resolves a step id to its display title. Implemented by the
// journey store; only used to describe undo actions.
type StepNamer interface {
	StepTitle(stepID string) (string, bool)
}

// Service is the single writer for the issue collection. Mutations
// apply to memory first (copy-on-write snapshots published through a
// cell), then persist; a storage failure is returned but the in-memory
// state stands until the next full load.
type Service struct {
	mu    sync.Mutex
	table database.IssueTable
	undo  *undo.Service
	steps StepNamer
	cell  *observe.Cell[[]*models.Issue]
}

// NewService creates an issue store. steps may be nil, in which case
// undo descriptions fall back to a generic step label.
func NewService(table database.IssueTable, undoSvc *undo.Service, steps StepNamer) *Service {
	return &Service{
		table: table,
		undo:  undoSvc,
		steps: steps,
		cell:  observe.NewCell([]*models.Issue(nil)),
	}
}

// InitFromDB seeds the table when empty, then loads and publishes the
// collection sorted by order (missing order counts as 0, stable).
func (s *Service) InitFromDB(ctx context.Context) error {
	count, err := s.table.Count(ctx)
	if err != nil {
		return fmt.Errorf("init issues: %w", err)
	}
	if count == 0 {
		if err := s.seed(ctx); err != nil {
			return err
		}
	}
	return s.load(ctx)
}

// Issues returns the current snapshot.
func (s *Service) Issues() []*models.Issue {
	return s.cell.Get()
}

// Cell exposes the collection for subscription.
func (s *Service) Cell() *observe.Cell[[]*models.Issue] {
	return s.cell
}

// ByID returns the issue with the given id, or false when unknown.
func (s *Service) ByID(issueID string) (*models.Issue, bool) {
	for _, issue := range s.cell.Get() {
		if issue.ID == issueID {
			return issue, true
		}
	}
	return nil, false
}

// Unassigned returns the issues with neither a step nor a release.
func (s *Service) Unassigned() []*models.Issue {
	var out []*models.Issue
	for _, issue := range s.cell.Get() {
		if issue.Unassigned() {
			out = append(out, issue)
		}
	}
	return out
}

// ForStep returns the issues placed on the given step.
func (s *Service) ForStep(stepID string) []*models.Issue {
	var out []*models.Issue
	for _, issue := range s.cell.Get() {
		if issue.StepID != nil && *issue.StepID == stepID {
			out = append(out, issue)
		}
	}
	return out
}

// ForRelease returns the issues assigned to the given release.
func (s *Service) ForRelease(releaseID string) []*models.Issue {
	var out []*models.Issue
	for _, issue := range s.cell.Get() {
		if issue.ReleaseID != nil && *issue.ReleaseID == releaseID {
			out = append(out, issue)
		}
	}
	return out
}

// AssignToStep places an issue on a step and offers an undo restoring
// the previous step. Unknown ids and moves onto the issue's current
// step are silent no-ops: no write, no undo. The issue's release
// assignment is kept.
func (s *Service) AssignToStep(ctx context.Context, issueID, stepID string) error {
	s.mu.Lock()
	issue := s.find(issueID)
	if issue == nil || (issue.StepID != nil && *issue.StepID == stepID) {
		s.mu.Unlock()
		return nil
	}

	oldStepID := issue.StepID
	updated := issue.Clone()
	updated.StepID = &stepID
	s.replaceLocked(updated)
	s.mu.Unlock()

	if err := s.table.Put(ctx, updated); err != nil {
		return fmt.Errorf("assign issue to step: %w", err)
	}

	title, ok := s.stepTitle(stepID)
	if !ok {
		title = "another step"
	}
	s.undo.ShowUndo(fmt.Sprintf("Issue moved to step '%s'", title), func(ctx context.Context) error {
		return s.restoreStep(ctx, issueID, oldStepID)
	}, 0)

	return nil
}

// AssignToRelease sets (or clears, with nil) the issue's release.
// Independent of the step assignment; no undo is attached here, callers
// that want one wrap it themselves.
func (s *Service) AssignToRelease(ctx context.Context, issueID string, releaseID *string) error {
	s.mu.Lock()
	issue := s.find(issueID)
	if issue == nil {
		s.mu.Unlock()
		return nil
	}
	updated := issue.Clone()
	updated.ReleaseID = releaseID
	s.replaceLocked(updated)
	s.mu.Unlock()

	if err := s.table.Put(ctx, updated); err != nil {
		return fmt.Errorf("assign issue to release: %w", err)
	}
	return nil
}

// UnassignFromStep clears only the step assignment and persists.
func (s *Service) UnassignFromStep(ctx context.Context, issueID string) error {
	s.mu.Lock()
	issue := s.find(issueID)
	if issue == nil {
		s.mu.Unlock()
		return nil
	}
	updated := issue.Clone()
	updated.StepID = nil
	s.replaceLocked(updated)
	s.mu.Unlock()

	if err := s.table.Put(ctx, updated); err != nil {
		return fmt.Errorf("unassign issue from step: %w", err)
	}
	return nil
}

// Unassign clears both assignments without offering an undo.
func (s *Service) Unassign(ctx context.Context, issueID string) error {
	s.mu.Lock()
	issue := s.find(issueID)
	if issue == nil {
		s.mu.Unlock()
		return nil
	}
	updated := issue.Clone()
	updated.StepID = nil
	updated.ReleaseID = nil
	s.replaceLocked(updated)
	s.mu.Unlock()

	if err := s.table.Put(ctx, updated); err != nil {
		return fmt.Errorf("unassign issue: %w", err)
	}
	return nil
}

// UnassignWithUndo clears both assignments and offers an undo that
// restores the pair exactly as it was.
func (s *Service) UnassignWithUndo(ctx context.Context, issueID string) error {
	s.mu.Lock()
	issue := s.find(issueID)
	if issue == nil {
		s.mu.Unlock()
		return nil
	}

	oldStepID := issue.StepID
	oldReleaseID := issue.ReleaseID
	updated := issue.Clone()
	updated.StepID = nil
	updated.ReleaseID = nil
	s.replaceLocked(updated)
	s.mu.Unlock()

	if err := s.table.Put(ctx, updated); err != nil {
		return fmt.Errorf("unassign issue: %w", err)
	}

	s.undo.ShowUndo("Issue unassigned", func(ctx context.Context) error {
		return s.restorePlacement(ctx, issueID, oldStepID, oldReleaseID)
	}, 0)

	return nil
}

// RemoveFromRelease clears the release assignment in memory only.
// Used while a release deletion cascades; the caller batches the
// persistence of the final state.
func (s *Service) RemoveFromRelease(issueID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	issue := s.find(issueID)
	if issue == nil {
		return
	}
	updated := issue.Clone()
	updated.ReleaseID = nil
	s.replaceLocked(updated)
}

// SaveAll persists the current in-memory state of the given issues in
// one batch. Pairs with memory-only mutations like RemoveFromRelease
// when the caller wants to flush the final state once.
func (s *Service) SaveAll(ctx context.Context, issueIDs ...string) error {
	s.mu.Lock()
	var batch []*models.Issue
	for _, id := range issueIDs {
		if issue := s.find(id); issue != nil {
			batch = append(batch, issue)
		}
	}
	s.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}
	if err := s.table.BulkPut(ctx, batch); err != nil {
		return fmt.Errorf("save issues: %w", err)
	}
	return nil
}

// SetIssues replaces the in-memory collection without touching storage.
func (s *Service) SetIssues(issues []*models.Issue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cell.Set(issues)
}

// ResetAll clears the table, reseeds, and reloads.
func (s *Service) ResetAll(ctx context.Context) error {
	if err := s.table.Clear(ctx); err != nil {
		return fmt.Errorf("reset issues: %w", err)
	}
	if err := s.seed(ctx); err != nil {
		return err
	}
	return s.load(ctx)
}

// ReplaceAll swaps the whole collection: clear, bulk insert, publish.
// Used by import.
func (s *Service) ReplaceAll(ctx context.Context, issues []*models.Issue) error {
	if err := s.table.Clear(ctx); err != nil {
		return fmt.Errorf("replace issues: %w", err)
	}
	if err := s.table.BulkPut(ctx, issues); err != nil {
		return fmt.Errorf("replace issues: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cell.Set(issues)
	return nil
}

// restoreStep is the inverse of AssignToStep.
func (s *Service) restoreStep(ctx context.Context, issueID string, stepID *string) error {
	s.mu.Lock()
	issue := s.find(issueID)
	if issue == nil {
		s.mu.Unlock()
		return nil
	}
	updated := issue.Clone()
	updated.StepID = stepID
	s.replaceLocked(updated)
	s.mu.Unlock()

	if err := s.table.Put(ctx, updated); err != nil {
		return fmt.Errorf("restore issue step: %w", err)
	}
	return nil
}

// restorePlacement is the inverse of UnassignWithUndo.
func (s *Service) restorePlacement(ctx context.Context, issueID string, stepID, releaseID *string) error {
	s.mu.Lock()
	issue := s.find(issueID)
	if issue == nil {
		s.mu.Unlock()
		return nil
	}
	updated := issue.Clone()
	updated.StepID = stepID
	updated.ReleaseID = releaseID
	s.replaceLocked(updated)
	s.mu.Unlock()

	if err := s.table.Put(ctx, updated); err != nil {
		return fmt.Errorf("restore issue placement: %w", err)
	}
	return nil
}

func (s *Service) load(ctx context.Context) error {
	issues, err := s.table.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load issues: %w", err)
	}
	sort.SliceStable(issues, func(a, b int) bool {
		return issues[a].OrderValue() < issues[b].OrderValue()
	})
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cell.Set(issues)
	return nil
}

func (s *Service) seed(ctx context.Context) error {
	issues, err := seed.Issues()
	if err != nil {
		return fmt.Errorf("seed issues: %w", err)
	}
	if err := s.table.BulkPut(ctx, issues); err != nil {
		return fmt.Errorf("seed issues: %w", err)
	}
	return nil
}

// find returns the live entry for id, or nil. Callers hold s.mu.
func (s *Service) find(issueID string) *models.Issue {
	for _, issue := range s.cell.Get() {
		if issue.ID == issueID {
			return issue
		}
	}
	return nil
}

// replaceLocked publishes a new snapshot with updated swapped in by id;
// every other entry keeps its identity. Callers hold s.mu.
func (s *Service) replaceLocked(updated *models.Issue) {
	current := s.cell.Get()
	next := make([]*models.Issue, len(current))
	for i, issue := range current {
		if issue.ID == updated.ID {
			next[i] = updated
		} else {
			next[i] = issue
		}
	}
	s.cell.Set(next)
}

func (s *Service) stepTitle(stepID string) (string, bool) {
	if s.steps == nil {
		return "", false
	}
	return s.steps.StepTitle(stepID)
}
