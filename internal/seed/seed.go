// Package seed holds the embedded first-run documents. A store seeds
// its table from here only when the table has zero rows.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"jornada/internal/models"
)

//go:embed data/issues.seed.json
var issuesJSON []byte

//go:embed data/journeys.seed.json
var journeysJSON []byte

// Issues decodes the issue seed document. Entries without an id get a
// fresh UUID. There is no release seed: releases start empty.
func Issues() ([]*models.Issue, error) {
	var issues []*models.Issue
	if err := json.Unmarshal(issuesJSON, &issues); err != nil {
		return nil, fmt.Errorf("decode issue seed: %w", err)
	}
	for _, issue := range issues {
		if issue.ID == "" {
			issue.ID = uuid.NewString()
		}
	}
	return issues, nil
}

// Journeys decodes the journey seed document, backfills UUIDs on
// journeys and steps, stamps each step with its parent id, and sorts
// by order (missing order counts as 0).
func Journeys() ([]*models.Journey, error) {
	var journeys []*models.Journey
	if err := json.Unmarshal(journeysJSON, &journeys); err != nil {
		return nil, fmt.Errorf("decode journey seed: %w", err)
	}
	for _, journey := range journeys {
		if journey.ID == "" {
			journey.ID = uuid.NewString()
		}
		for i := range journey.Steps {
			if journey.Steps[i].ID == "" {
				journey.Steps[i].ID = uuid.NewString()
			}
			journey.Steps[i].JourneyID = journey.ID
		}
	}
	sort.SliceStable(journeys, func(a, b int) bool {
		return journeys[a].OrderValue() < journeys[b].OrderValue()
	})
	return journeys, nil
}
