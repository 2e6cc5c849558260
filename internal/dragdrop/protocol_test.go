package dragdrop

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

func setup(t *testing.T, issues ...*models.Issue) (*Handler, *issue.Service, *undo.Service) {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	table := database.NewIssueTable(db)
	undoSvc := undo.NewService()
	issueSvc := issue.NewService(table, undoSvc, nil)

	require.NoError(t, table.BulkPut(ctx, issues))
	require.NoError(t, issueSvc.InitFromDB(ctx))

	return NewHandler(issueSvc), issueSvc, undoSvc
}

func TestDropOnStepZone(t *testing.T) {
	h, issues, _ := setup(t, &models.Issue{ID: "i1", Title: "x"})

	dragged := issues.Issues()[0]
	require.NoError(t, h.Drop(context.Background(), dragged, "step-pay"))

	got := issues.Issues()[0]
	require.NotNil(t, got.StepID)
	assert.Equal(t, "step-pay", *got.StepID)
}

func TestDropOnReleaseZone(t *testing.T) {
	h, issues, _ := setup(t, &models.Issue{ID: "i1", Title: "x", StepID: strPtr("s1")})

	dragged := issues.Issues()[0]
	require.NoError(t, h.Drop(context.Background(), dragged, ReleaseZoneID("r1")))

	got := issues.Issues()[0]
	require.NotNil(t, got.ReleaseID)
	assert.Equal(t, "r1", *got.ReleaseID)
	// Step placement untouched by a release drop
	require.NotNil(t, got.StepID)
	assert.Equal(t, "s1", *got.StepID)
}

func TestDropOutsideAnyZoneUnassigns(t *testing.T) {
	h, issues, undoSvc := setup(t,
		&models.Issue{ID: "i1", Title: "x", StepID: strPtr("s1"), ReleaseID: strPtr("r1")},
	)

	dragged := issues.Issues()[0]
	require.NoError(t, h.Drop(context.Background(), dragged, ""))

	got := issues.Issues()[0]
	assert.True(t, got.Unassigned())
	require.NotNil(t, undoSvc.Current())
	assert.Equal(t, "Issue unassigned", undoSvc.Current().Description)
}

func TestDropOnCurrentAssignmentIsNoop(t *testing.T) {
	h, issues, undoSvc := setup(t,
		&models.Issue{ID: "i1", Title: "x", StepID: strPtr("s1"), ReleaseID: strPtr("r1")},
		&models.Issue{ID: "i2", Title: "free"},
	)
	ctx := context.Background()

	// Same step
	require.NoError(t, h.Drop(ctx, issues.Issues()[0], "s1"))
	assert.Nil(t, undoSvc.Current(), "same-step drop must not offer undo")

	// Same release
	require.NoError(t, h.Drop(ctx, issues.Issues()[0], ReleaseZoneID("r1")))
	assert.Nil(t, undoSvc.Current())

	// Already unassigned, dropped outside
	require.NoError(t, h.Drop(ctx, issues.Issues()[1], ""))
	assert.Nil(t, undoSvc.Current())
}
