package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model state.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		// Undo auto-expiry fires on a timer goroutine; the board
		// acknowledges it here, on the update loop.
		if m.app.Undo.DismissRequested().Get() {
			m.app.Undo.Dismiss()
		}
		return m, tick()

	case tea.KeyMsg:
		switch m.mode {
		case detailMode, helpMode:
			return m.updateOverlay(msg)
		default:
			return m.updateBoard(msg)
		}
	}
	return m, nil
}

// updateOverlay handles keys while the detail or help screen is open.
func (m Model) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	default:
		m.mode = boardMode
		m.detail = ""
		return m, nil
	}
}

// updateBoard handles keys on the main board.
func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = helpMode
		return m, nil

	case key.Matches(msg, m.keys.PrevZone):
		if m.zoneIdx > 0 {
			m.zoneIdx--
			m.issueIdx = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.NextZone):
		if m.zoneIdx < len(m.zones())-1 {
			m.zoneIdx++
			m.issueIdx = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevIssue):
		if m.issueIdx > 0 {
			m.issueIdx--
		}
		return m, nil

	case key.Matches(msg, m.keys.NextIssue):
		if m.issueIdx < len(m.issuesIn(m.currentZone()))-1 {
			m.issueIdx++
		}
		return m, nil

	case key.Matches(msg, m.keys.Grab):
		// Moves stay disabled until every journey column has rendered
		// at least once.
		if !m.app.Gate.Ready() {
			return m, nil
		}
		if issue := m.currentIssue(); issue != nil {
			m.grabbedID = issue.ID
		}
		return m, nil

	case key.Matches(msg, m.keys.Drop):
		if m.grabbedID == "" || !m.app.Gate.Ready() {
			return m, nil
		}
		if dragged, ok := m.app.Issues.ByID(m.grabbedID); ok {
			if err := m.app.Drops.Drop(ctx, dragged, dropTarget(m.currentZone())); err != nil {
				slog.Error("drop failed", "issue", m.grabbedID, "error", err)
			}
		}
		m.grabbedID = ""
		m.clampSelection()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.grabbedID = ""
		return m, nil

	case key.Matches(msg, m.keys.Unassign):
		if issue := m.currentIssue(); issue != nil && !issue.Unassigned() {
			if err := m.app.Issues.UnassignWithUndo(ctx, issue.ID); err != nil {
				slog.Error("unassign failed", "issue", issue.ID, "error", err)
			}
			m.clampSelection()
		}
		return m, nil

	case key.Matches(msg, m.keys.View):
		if issue := m.currentIssue(); issue != nil {
			m.detail = m.renderDetail(issue)
			m.mode = detailMode
		}
		return m, nil

	case key.Matches(msg, m.keys.Undo):
		if err := m.app.Undo.Undo(ctx); err != nil {
			slog.Error("undo failed", "error", err)
		}
		m.clampSelection()
		return m, nil

	case key.Matches(msg, m.keys.DismissUndo):
		m.app.Undo.Dismiss()
		return m, nil
	}
	return m, nil
}
