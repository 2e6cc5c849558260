// Package tui implements the interactive story map board.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"jornada/internal/app"
	"jornada/internal/dragdrop"
	"jornada/internal/models"
)

// mode selects which screen the model is rendering.
type mode int

const (
	boardMode mode = iota
	detailMode
	helpMode
)

// zoneKind identifies what a board column holds.
type zoneKind int

const (
	zoneStep zoneKind = iota
	zoneUnassigned
	zoneRelease
)

// zone is one droppable column on the board: a journey step, the
// unassigned pool, or a release bucket.
type zone struct {
	kind      zoneKind
	id        string // step or release id; empty for the unassigned pool
	title     string
	journeyID string // set for step zones only
}

// tickMsg drives the periodic undo-banner housekeeping.
type tickMsg time.Time

// Model represents the application state for the TUI
type Model struct {
	app  *app.App
	keys keyMap
	help help.Model

	width  int
	height int

	mode      mode
	zoneIdx   int
	issueIdx  int
	grabbedID string // id of the issue being dragged, empty when not dragging

	detail string // glamour-rendered issue body for detailMode

	// journeys whose columns have already been counted toward the
	// readiness gate
	reportedJourneys map[string]bool

	styles styles
}

// NewModel builds the board model over an already wired application.
func NewModel(a *app.App) Model {
	return Model{
		app:              a,
		keys:             newKeyMap(a.Config.KeyMappings),
		help:             help.New(),
		reportedJourneys: make(map[string]bool),
		styles:           newStyles(a.Config.Theme),
	}
}

// Init schedules the first housekeeping tick.
// Required by tea.Model interface.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// zones returns the board columns in display order: every step of
// every journey, then the unassigned pool, then one zone per release.
func (m Model) zones() []zone {
	var zs []zone
	for _, j := range m.app.Journeys.Journeys() {
		for _, s := range j.Steps {
			zs = append(zs, zone{kind: zoneStep, id: s.ID, title: s.Title, journeyID: j.ID})
		}
	}
	zs = append(zs, zone{kind: zoneUnassigned, title: "Unassigned"})
	for _, r := range m.app.Releases.Releases() {
		zs = append(zs, zone{kind: zoneRelease, id: r.ID, title: r.Name})
	}
	return zs
}

// currentZone returns the selected zone, or a zero zone when the board
// is empty.
func (m Model) currentZone() zone {
	zs := m.zones()
	if len(zs) == 0 {
		return zone{}
	}
	if m.zoneIdx >= len(zs) {
		return zs[len(zs)-1]
	}
	return zs[m.zoneIdx]
}

// issuesIn returns the issues shown in a zone, in store order.
func (m Model) issuesIn(z zone) []*models.Issue {
	switch z.kind {
	case zoneUnassigned:
		return m.app.Issues.Unassigned()
	case zoneRelease:
		return m.app.Issues.ForRelease(z.id)
	default:
		return m.app.Issues.ForStep(z.id)
	}
}

// currentIssue returns the selected issue in the selected zone, or nil.
func (m Model) currentIssue() *models.Issue {
	issues := m.issuesIn(m.currentZone())
	if len(issues) == 0 || m.issueIdx >= len(issues) {
		return nil
	}
	return issues[m.issueIdx]
}

// dropTarget converts a zone to the id understood by the drop handler.
func dropTarget(z zone) string {
	switch z.kind {
	case zoneUnassigned:
		return ""
	case zoneRelease:
		return dragdrop.ReleaseZoneID(z.id)
	default:
		return z.id
	}
}

// clampSelection keeps the cursor inside the current zone after the
// board contents change.
func (m *Model) clampSelection() {
	zs := m.zones()
	if len(zs) == 0 {
		m.zoneIdx = 0
		m.issueIdx = 0
		return
	}
	if m.zoneIdx >= len(zs) {
		m.zoneIdx = len(zs) - 1
	}
	issues := m.issuesIn(zs[m.zoneIdx])
	if m.issueIdx >= len(issues) {
		m.issueIdx = max(0, len(issues)-1)
	}
}
