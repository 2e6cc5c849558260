package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jornada/internal/models"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() string {
	// Wait for terminal size to be initialized
	if m.width == 0 {
		return "Loading..."
	}

	switch m.mode {
	case detailMode:
		return m.detail + "\n" + m.styles.muted.Render("press any key to go back")
	case helpMode:
		return m.help.View(m.keys)
	}

	var sections []string
	zs := m.zones()
	zoneOffset := 0

	for _, j := range m.app.Journeys.Journeys() {
		var cols []string
		for range j.Steps {
			cols = append(cols, m.renderZone(zs[zoneOffset], zoneOffset == m.zoneIdx))
			zoneOffset++
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
		sections = append(sections,
			m.styles.journeyTitle.Render(j.Name),
			row,
		)

		// First complete render of this journey's columns counts
		// toward the readiness gate.
		if !m.reportedJourneys[j.ID] {
			m.reportedJourneys[j.ID] = true
			m.app.Gate.ColumnRendered()
		}
	}

	// Unassigned pool and release buckets share the bottom row.
	var bottom []string
	for ; zoneOffset < len(zs); zoneOffset++ {
		bottom = append(bottom, m.renderZone(zs[zoneOffset], zoneOffset == m.zoneIdx))
	}
	if len(bottom) > 0 {
		sections = append(sections,
			m.styles.journeyTitle.Render("Backlog & Releases"),
			lipgloss.JoinHorizontal(lipgloss.Top, bottom...),
		)
	}

	if a := m.app.Undo.Current(); a != nil {
		hint := fmt.Sprintf("%s  (%s: undo, %s: dismiss)",
			a.Description,
			m.keys.Undo.Help().Key,
			m.keys.DismissUndo.Help().Key,
		)
		sections = append(sections, m.styles.banner.Render(hint))
	}

	if m.grabbedID != "" {
		sections = append(sections, m.styles.muted.Render("moving issue, pick a target zone and drop"))
	}

	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderZone renders one board column with its issue cards.
func (m Model) renderZone(z zone, active bool) string {
	var b strings.Builder
	b.WriteString(m.styles.journeyTitle.Render(z.title))
	b.WriteString("\n")

	issues := m.issuesIn(z)
	if len(issues) == 0 {
		b.WriteString(m.styles.muted.Render("(empty)"))
	}
	for i, issue := range issues {
		b.WriteString(m.renderCard(issue, active && i == m.issueIdx))
		b.WriteString("\n")
	}

	style := m.styles.column
	if active {
		style = m.styles.activeColumn
	}
	return style.Render(b.String())
}

// renderCard renders one issue card.
func (m Model) renderCard(issue *models.Issue, selected bool) string {
	style := m.styles.card
	if issue.ID == m.grabbedID {
		style = m.styles.grabbedCard
	} else if selected {
		style = m.styles.selectedCard
	}

	content := issue.Title
	if len(issue.Labels) > 0 {
		content += "\n" + m.styles.labelChip.Render(strings.Join(issue.Labels, " "))
	}
	return style.Render(content)
}
