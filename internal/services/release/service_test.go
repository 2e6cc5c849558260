package release

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jornada/internal/database"
	"jornada/internal/models"
	"jornada/internal/services/issue"
	"jornada/internal/services/undo"
)

func strPtr(v string) *string { return &v }

type fixture struct {
	releases   *Service
	issues     *issue.Service
	undo       *undo.Service
	issueTable database.IssueTable
	relTable   database.ReleaseTable
}

func setup(t *testing.T, issues []*models.Issue, releases []*models.Release) *fixture {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	f := &fixture{
		issueTable: database.NewIssueTable(db),
		relTable:   database.NewReleaseTable(db),
		undo:       undo.NewService(),
	}
	f.issues = issue.NewService(f.issueTable, f.undo, nil)
	f.releases = NewService(f.relTable, f.undo, f.issues)

	if issues != nil {
		require.NoError(t, f.issueTable.BulkPut(ctx, issues))
		require.NoError(t, f.issues.InitFromDB(ctx))
	}
	if releases != nil {
		require.NoError(t, f.relTable.BulkPut(ctx, releases))
	}
	require.NoError(t, f.releases.InitFromDB(ctx))
	return f
}

func TestCreateAssignsID(t *testing.T) {
	f := setup(t, []*models.Issue{{ID: "i1", Title: "x"}}, nil)
	ctx := context.Background()

	err := f.releases.Create(ctx, &models.Release{Name: "MVP"})
	require.NoError(t, err)

	all := f.releases.Releases()
	require.Len(t, all, 1)
	assert.NotEmpty(t, all[0].ID)
	assert.Equal(t, "MVP", all[0].Name)
}

func TestCreateRejectsEmptyName(t *testing.T) {
	f := setup(t, nil, nil)
	err := f.releases.Create(context.Background(), &models.Release{})
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestUpdateReplacesOnlyMatchingEntry(t *testing.T) {
	f := setup(t, nil, []*models.Release{
		{ID: "r1", Name: "one"},
		{ID: "r2", Name: "two"},
	})
	ctx := context.Background()

	before := f.releases.Releases()
	err := f.releases.Update(ctx, &models.Release{ID: "r1", Name: "one renamed"})
	require.NoError(t, err)
	after := f.releases.Releases()

	require.Len(t, after, 2)
	for _, r := range after {
		if r.ID == "r1" {
			assert.Equal(t, "one renamed", r.Name)
		}
	}
	// The untouched entry keeps its identity
	for i, r := range before {
		if r.ID == "r2" {
			assert.Same(t, r, after[i])
		}
	}
}

func TestDeleteDoesNotTouchIssues(t *testing.T) {
	f := setup(t,
		[]*models.Issue{{ID: "i1", Title: "x", ReleaseID: strPtr("r1")}},
		[]*models.Release{{ID: "r1", Name: "one"}},
	)
	ctx := context.Background()

	require.NoError(t, f.releases.Delete(ctx, "r1"))

	assert.Empty(t, f.releases.Releases())
	// The plain delete leaves the dangling reference alone
	assert.Equal(t, "r1", *f.issues.Issues()[0].ReleaseID)
}

func TestDeleteWithUndoCascades(t *testing.T) {
	f := setup(t,
		[]*models.Issue{
			{ID: "i1", Title: "a", ReleaseID: strPtr("r1")},
			{ID: "i2", Title: "b", ReleaseID: strPtr("r1")},
			{ID: "i3", Title: "c", ReleaseID: strPtr("r2")},
		},
		[]*models.Release{
			{ID: "r1", Name: "doomed"},
			{ID: "r2", Name: "survivor"},
		},
	)
	ctx := context.Background()

	target, ok := f.releases.ByID("r1")
	require.True(t, ok)
	require.NoError(t, f.releases.DeleteWithUndo(ctx, target))

	// No issue points at the deleted release any more
	assert.Empty(t, f.issues.ForRelease("r1"))
	// The unrelated assignment is untouched
	assert.Len(t, f.issues.ForRelease("r2"), 1)
	_, ok = f.releases.ByID("r1")
	assert.False(t, ok)

	// The cascade is persisted, not just in memory
	stored, err := f.issueTable.Get(ctx, "i1")
	require.NoError(t, err)
	assert.Nil(t, stored.ReleaseID)

	action := f.undo.Current()
	require.NotNil(t, action)
	assert.Equal(t, "Release 'doomed' deleted", action.Description)

	// Undo restores the release and exactly the affected issues
	require.NoError(t, f.undo.Undo(ctx))
	restored, ok := f.releases.ByID("r1")
	require.True(t, ok)
	assert.Equal(t, "doomed", restored.Name)
	assert.Len(t, f.issues.ForRelease("r1"), 2)
	assert.Len(t, f.issues.ForRelease("r2"), 1)

	storedAgain, err := f.issueTable.Get(ctx, "i2")
	require.NoError(t, err)
	require.NotNil(t, storedAgain.ReleaseID)
	assert.Equal(t, "r1", *storedAgain.ReleaseID)
}

func TestReplaceAllNilClears(t *testing.T) {
	f := setup(t, nil, []*models.Release{{ID: "r1", Name: "one"}})
	ctx := context.Background()

	require.NoError(t, f.releases.ReplaceAll(ctx, nil))

	assert.Empty(t, f.releases.Releases())
	count, err := f.relTable.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestResetAllLeavesEmptyCollection(t *testing.T) {
	f := setup(t, nil, []*models.Release{{ID: "r1", Name: "one"}})

	require.NoError(t, f.releases.ResetAll(context.Background()))
	assert.Empty(t, f.releases.Releases())
}
