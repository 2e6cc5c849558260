package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"jornada/internal/config"
)

// keyMap holds the key bindings built from the user configuration.
type keyMap struct {
	PrevZone  key.Binding
	NextZone  key.Binding
	PrevIssue key.Binding
	NextIssue key.Binding

	Grab   key.Binding
	Drop   key.Binding
	Cancel key.Binding

	Unassign key.Binding
	View     key.Binding

	Undo        key.Binding
	DismissUndo key.Binding

	Help key.Binding
	Quit key.Binding
}

// keyLabel returns the help label for a configured key.
func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		PrevZone: key.NewBinding(
			key.WithKeys(km.PrevZone, "left"),
			key.WithHelp(keyLabel(km.PrevZone), "prev zone"),
		),
		NextZone: key.NewBinding(
			key.WithKeys(km.NextZone, "right"),
			key.WithHelp(keyLabel(km.NextZone), "next zone"),
		),
		PrevIssue: key.NewBinding(
			key.WithKeys(km.PrevIssue, "up"),
			key.WithHelp(keyLabel(km.PrevIssue), "prev issue"),
		),
		NextIssue: key.NewBinding(
			key.WithKeys(km.NextIssue, "down"),
			key.WithHelp(keyLabel(km.NextIssue), "next issue"),
		),
		Grab: key.NewBinding(
			key.WithKeys(km.GrabIssue),
			key.WithHelp(keyLabel(km.GrabIssue), "grab issue"),
		),
		Drop: key.NewBinding(
			key.WithKeys(km.DropIssue),
			key.WithHelp(keyLabel(km.DropIssue), "drop issue"),
		),
		Cancel: key.NewBinding(
			key.WithKeys(km.CancelDrag),
			key.WithHelp(keyLabel(km.CancelDrag), "cancel"),
		),
		Unassign: key.NewBinding(
			key.WithKeys(km.UnassignIssue),
			key.WithHelp(keyLabel(km.UnassignIssue), "unassign"),
		),
		View: key.NewBinding(
			key.WithKeys(km.ViewIssue),
			key.WithHelp(keyLabel(km.ViewIssue), "view issue"),
		),
		Undo: key.NewBinding(
			key.WithKeys(km.Undo),
			key.WithHelp(keyLabel(km.Undo), "undo"),
		),
		DismissUndo: key.NewBinding(
			key.WithKeys(km.DismissUndo),
			key.WithHelp(keyLabel(km.DismissUndo), "dismiss"),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(keyLabel(km.ShowHelp), "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(keyLabel(km.Quit), "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grab, k.Drop, k.Undo, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevZone, k.NextZone, k.PrevIssue, k.NextIssue},
		{k.Grab, k.Drop, k.Cancel, k.Unassign},
		{k.View, k.Undo, k.DismissUndo},
		{k.Help, k.Quit},
	}
}
