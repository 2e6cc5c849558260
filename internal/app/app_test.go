package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jornada/internal/config"
	"jornada/internal/database"
	"jornada/internal/models"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	require.NoError(t, err)

	a, err := NewWithDB(ctx, db, config.Default())
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func TestNewWithDBSeedsAndWires(t *testing.T) {
	a := newTestApp(t)

	journeys := a.Journeys.Journeys()
	require.NotEmpty(t, journeys, "empty database gets the sample board")
	require.NotEmpty(t, a.Issues.Issues())
	assert.Empty(t, a.Releases.Releases(), "releases are never seeded")

	assert.False(t, a.Gate.Ready(), "gate waits for one render per journey")
	for range journeys {
		a.Gate.ColumnRendered()
	}
	assert.True(t, a.Gate.Ready())
}

func TestReleaseCascadeThroughWiredServices(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	rel := &models.Release{Name: "v1"}
	require.NoError(t, a.Releases.Create(ctx, rel))

	issue := a.Issues.Issues()[0]
	require.NoError(t, a.Issues.AssignToRelease(ctx, issue.ID, &rel.ID))
	require.Len(t, a.Issues.ForRelease(rel.ID), 1)

	require.NoError(t, a.Releases.DeleteWithUndo(ctx, rel))
	assert.Empty(t, a.Releases.Releases())
	assert.Empty(t, a.Issues.ForRelease(rel.ID))

	require.NoError(t, a.Undo.Undo(ctx))
	require.Len(t, a.Releases.Releases(), 1)
	assert.Len(t, a.Issues.ForRelease(rel.ID), 1)
}
