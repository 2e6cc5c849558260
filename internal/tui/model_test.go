package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jornada/internal/app"
	"jornada/internal/config"
	"jornada/internal/database"
	"jornada/internal/models"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	require.NoError(t, err)

	a, err := app.NewWithDB(ctx, db, config.Default())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	m := NewModel(a)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func pressRune(t *testing.T, m Model, r rune) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return updated.(Model)
}

func pressKey(t *testing.T, m Model, k tea.KeyType) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: k})
	return updated.(Model)
}

// selectZoneWithIssues moves the cursor to the first zone holding at
// least one issue.
func selectZoneWithIssues(t *testing.T, m Model) Model {
	t.Helper()
	for i, z := range m.zones() {
		if len(m.issuesIn(z)) > 0 {
			m.zoneIdx = i
			m.issueIdx = 0
			return m
		}
	}
	t.Fatal("no zone with issues on the seeded board")
	return m
}

func TestZonesCoverStepsPoolAndReleases(t *testing.T) {
	m := newTestModel(t)

	var steps int
	for _, j := range m.app.Journeys.Journeys() {
		steps += len(j.Steps)
	}

	zs := m.zones()
	require.Len(t, zs, steps+1, "steps plus the unassigned pool")
	assert.Equal(t, zoneUnassigned, zs[len(zs)-1].kind)

	require.NoError(t, m.app.Releases.Create(context.Background(), &models.Release{Name: "v1"}))
	zs = m.zones()
	assert.Equal(t, zoneRelease, zs[len(zs)-1].kind)
	assert.Equal(t, "v1", zs[len(zs)-1].title)
}

func TestGrabDisabledUntilBoardRendered(t *testing.T) {
	m := newTestModel(t)
	m = selectZoneWithIssues(t, m)

	m = pressKey(t, m, tea.KeySpace)
	assert.Empty(t, m.grabbedID, "grab must be ignored before the first render")

	m.View() // one full render reports every journey column
	assert.True(t, m.app.Gate.Ready())

	m = pressKey(t, m, tea.KeySpace)
	assert.NotEmpty(t, m.grabbedID)
}

func TestDropOnReleaseZoneAssignsRelease(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.app.Releases.Create(context.Background(), &models.Release{Name: "v1"}))
	m.View()

	m = selectZoneWithIssues(t, m)
	grabbed := m.currentIssue().ID
	m = pressKey(t, m, tea.KeySpace)
	require.Equal(t, grabbed, m.grabbedID)

	m.zoneIdx = len(m.zones()) - 1 // release zone sits last
	m = pressKey(t, m, tea.KeyEnter)

	assert.Empty(t, m.grabbedID)
	release := m.app.Releases.Releases()[0]
	got := m.app.Issues.ForRelease(release.ID)
	require.Len(t, got, 1)
	assert.Equal(t, grabbed, got[0].ID)
}

func TestCancelDropsNothing(t *testing.T) {
	m := newTestModel(t)
	m.View()
	m = selectZoneWithIssues(t, m)

	m = pressKey(t, m, tea.KeySpace)
	require.NotEmpty(t, m.grabbedID)

	m = pressKey(t, m, tea.KeyEsc)
	assert.Empty(t, m.grabbedID)
}

func TestUnassignShowsUndoBannerAndDismisses(t *testing.T) {
	m := newTestModel(t)
	m.View()

	// Pick a zone backed by a step so unassign actually changes state.
	var picked bool
	for i, z := range m.zones() {
		if z.kind == zoneStep && len(m.issuesIn(z)) > 0 {
			m.zoneIdx = i
			m.issueIdx = 0
			picked = true
			break
		}
	}
	require.True(t, picked, "seeded board should have issues on steps")

	m = pressRune(t, m, 'x')
	require.NotNil(t, m.app.Undo.Current())
	assert.Contains(t, m.View(), "unassigned")

	m = pressRune(t, m, 'd')
	assert.Nil(t, m.app.Undo.Current())
}

func TestViewKeyOpensDetail(t *testing.T) {
	m := newTestModel(t)
	m.View()
	m = selectZoneWithIssues(t, m)

	m = pressRune(t, m, 'v')
	assert.Equal(t, detailMode, m.mode)
	assert.NotEmpty(t, m.detail)

	m = pressRune(t, m, 'v') // any key closes the overlay
	assert.Equal(t, boardMode, m.mode)
}
