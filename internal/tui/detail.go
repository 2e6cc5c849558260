package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"

	"jornada/internal/models"
)

// renderDetail renders a single issue as a markdown document.
func (m Model) renderDetail(issue *models.Issue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", issue.Title)
	if issue.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", issue.Description)
	}
	if len(issue.Labels) > 0 {
		fmt.Fprintf(&b, "**Labels:** %s\n\n", strings.Join(issue.Labels, ", "))
	}
	fmt.Fprintf(&b, "**Step:** %s\n\n", m.placementLine(issue))

	width := min(m.width-4, 80)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		slog.Error("glamour renderer init failed", "error", err)
		return b.String()
	}
	out, err := renderer.Render(b.String())
	if err != nil {
		slog.Error("markdown render failed", "issue", issue.ID, "error", err)
		return b.String()
	}
	return out
}

// placementLine describes where the issue currently sits.
func (m Model) placementLine(issue *models.Issue) string {
	if issue.StepID == nil {
		return "unassigned"
	}
	if title, ok := m.app.Journeys.StepTitle(*issue.StepID); ok {
		return title
	}
	return *issue.StepID
}
