package tui

import (
	"github.com/charmbracelet/lipgloss"

	"jornada/internal/config"
)

// styles holds the lipgloss styles derived from the configured theme.
type styles struct {
	journeyTitle lipgloss.Style
	column       lipgloss.Style
	activeColumn lipgloss.Style
	card         lipgloss.Style
	selectedCard lipgloss.Style
	grabbedCard  lipgloss.Style
	muted        lipgloss.Style
	banner       lipgloss.Style
	labelChip    lipgloss.Style
}

const columnWidth = 28

func newStyles(t config.Theme) styles {
	border := lipgloss.Color(t.Border)
	accent := lipgloss.Color(t.Accent)
	muted := lipgloss.Color(t.Muted)
	danger := lipgloss.Color(t.Danger)

	column := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted).
		Padding(0, 1).
		Width(columnWidth)

	card := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(muted).
		Padding(0, 1).
		Width(columnWidth - 4)

	return styles{
		journeyTitle: lipgloss.NewStyle().Bold(true).Foreground(border),
		column:       column,
		activeColumn: column.BorderForeground(border),
		card:         card,
		selectedCard: card.BorderForeground(accent),
		grabbedCard:  card.BorderForeground(danger),
		muted:        lipgloss.NewStyle().Foreground(muted),
		banner: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		labelChip: lipgloss.NewStyle().Foreground(accent),
	}
}
