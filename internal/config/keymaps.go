package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Navigation
	PrevZone  string `yaml:"prev_zone"`
	NextZone  string `yaml:"next_zone"`
	PrevIssue string `yaml:"prev_issue"`
	NextIssue string `yaml:"next_issue"`

	// Drag and drop
	GrabIssue  string `yaml:"grab_issue"`
	DropIssue  string `yaml:"drop_issue"`
	CancelDrag string `yaml:"cancel_drag"`

	// Issues
	UnassignIssue string `yaml:"unassign_issue"`
	ViewIssue     string `yaml:"view_issue"`

	// Undo
	Undo        string `yaml:"undo"`
	DismissUndo string `yaml:"dismiss_undo"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevZone:  "h",
		NextZone:  "l",
		PrevIssue: "k",
		NextIssue: "j",

		GrabIssue:  " ",
		DropIssue:  "enter",
		CancelDrag: "esc",

		UnassignIssue: "x",
		ViewIssue:     "v",

		Undo:        "u",
		DismissUndo: "d",

		ShowHelp: "?",
		Quit:     "q",
	}
}
