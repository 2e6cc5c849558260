// Package journey owns the journey collection: ordered board column
// groups, each composed of ordered steps.
package journey

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"jornada/internal/database"
	"jornada/internal/models"
	"jornada/internal/observe"
	"jornada/internal/seed"
)

// Service is the single writer for the journey collection. The current
// collection is published as a snapshot through a cell; readers must
// not mutate what they receive.
//
// Deleting a journey or step does not clear stepId on issues that
// reference it; only release deletion cascades. Dangling step ids are
// tolerated and simply render nowhere.
type Service struct {
	mu    sync.Mutex
	table database.JourneyTable
	cell  *observe.Cell[[]*models.Journey]
}

// NewService creates a journey store over the given table adapter.
func NewService(table database.JourneyTable) *Service {
	return &Service{
		table: table,
		cell:  observe.NewCell([]*models.Journey(nil)),
	}
}

// InitFromDB seeds the table when it is empty, then loads everything.
func (s *Service) InitFromDB(ctx context.Context) error {
	count, err := s.table.Count(ctx)
	if err != nil {
		return fmt.Errorf("init journeys: %w", err)
	}
	if count == 0 {
		if err := s.seed(ctx); err != nil {
			return err
		}
	}
	return s.LoadJourneys(ctx)
}

// LoadJourneys reads the full collection, sorts it by order (missing
// order counts as 0, ties keep load order), and publishes it.
func (s *Service) LoadJourneys(ctx context.Context) error {
	journeys, err := s.table.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load journeys: %w", err)
	}
	sort.SliceStable(journeys, func(a, b int) bool {
		return journeys[a].OrderValue() < journeys[b].OrderValue()
	})
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cell.Set(journeys)
	return nil
}

// Journeys returns the current snapshot.
func (s *Service) Journeys() []*models.Journey {
	return s.cell.Get()
}

// Cell exposes the collection for subscription.
func (s *Service) Cell() *observe.Cell[[]*models.Journey] {
	return s.cell
}

// AddJourney persists a new journey (UUID assigned when absent) and
// reloads the collection.
func (s *Service) AddJourney(ctx context.Context, journey *models.Journey) error {
	if journey.Name == "" {
		return ErrEmptyName
	}
	j := journey.Clone()
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	for i := range j.Steps {
		if j.Steps[i].ID == "" {
			j.Steps[i].ID = uuid.NewString()
		}
		j.Steps[i].JourneyID = j.ID
	}
	if err := s.table.Put(ctx, j); err != nil {
		return fmt.Errorf("add journey: %w", err)
	}
	return s.LoadJourneys(ctx)
}

// AddStep appends a step to a journey, persists the journey, and
// reloads. Unknown journey ids are a silent no-op.
func (s *Service) AddStep(ctx context.Context, journeyID string, step models.Step) error {
	if step.Title == "" {
		return ErrEmptyStepTitle
	}

	s.mu.Lock()
	var target *models.Journey
	for _, j := range s.cell.Get() {
		if j.ID == journeyID {
			target = j.Clone()
			break
		}
	}
	s.mu.Unlock()
	if target == nil {
		return nil
	}

	if step.ID == "" {
		step.ID = uuid.NewString()
	}
	step.JourneyID = journeyID
	target.Steps = append(target.Steps, step)

	if err := s.table.Put(ctx, target); err != nil {
		return fmt.Errorf("add step: %w", err)
	}
	return s.LoadJourneys(ctx)
}

// AllSteps flattens every journey's steps into one sequence, preserving
// journey order then step order.
func (s *Service) AllSteps() []models.Step {
	var steps []models.Step
	for _, journey := range s.cell.Get() {
		steps = append(steps, journey.Steps...)
	}
	return steps
}

// StepTitle resolves a step's display title for undo descriptions.
func (s *Service) StepTitle(stepID string) (string, bool) {
	for _, journey := range s.cell.Get() {
		for _, step := range journey.Steps {
			if step.ID == stepID {
				return step.Title, true
			}
		}
	}
	return "", false
}

// ResetAll clears the table, reseeds, and reloads.
func (s *Service) ResetAll(ctx context.Context) error {
	if err := s.table.Clear(ctx); err != nil {
		return fmt.Errorf("reset journeys: %w", err)
	}
	if err := s.seed(ctx); err != nil {
		return err
	}
	return s.LoadJourneys(ctx)
}

// ReplaceAll swaps the whole collection: clear, bulk insert, publish.
// Used by import.
func (s *Service) ReplaceAll(ctx context.Context, journeys []*models.Journey) error {
	if err := s.table.Clear(ctx); err != nil {
		return fmt.Errorf("replace journeys: %w", err)
	}
	if err := s.table.BulkPut(ctx, journeys); err != nil {
		return fmt.Errorf("replace journeys: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cell.Set(journeys)
	return nil
}

func (s *Service) seed(ctx context.Context) error {
	journeys, err := seed.Journeys()
	if err != nil {
		return fmt.Errorf("seed journeys: %w", err)
	}
	if err := s.table.BulkPut(ctx, journeys); err != nil {
		return fmt.Errorf("seed journeys: %w", err)
	}
	return nil
}
