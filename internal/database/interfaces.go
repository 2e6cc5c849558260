package database

import (
	"context"

	"jornada/internal/models"
)

// IssueTable is the key/value persistence contract for issues.
// Get returns (nil, nil) when the id is absent; Put upserts by id.
// All operations may fail with ErrStorageUnavailable.
type IssueTable interface {
	Get(ctx context.Context, id string) (*models.Issue, error)
	GetAll(ctx context.Context) ([]*models.Issue, error)
	Put(ctx context.Context, issue *models.Issue) error
	BulkPut(ctx context.Context, issues []*models.Issue) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

// JourneyTable is the key/value persistence contract for journeys.
type JourneyTable interface {
	Get(ctx context.Context, id string) (*models.Journey, error)
	GetAll(ctx context.Context) ([]*models.Journey, error)
	Put(ctx context.Context, journey *models.Journey) error
	BulkPut(ctx context.Context, journeys []*models.Journey) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

// ReleaseTable is the key/value persistence contract for releases.
type ReleaseTable interface {
	Get(ctx context.Context, id string) (*models.Release, error)
	GetAll(ctx context.Context) ([]*models.Release, error)
	Put(ctx context.Context, release *models.Release) error
	BulkPut(ctx context.Context, releases []*models.Release) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}
