package config

// Theme holds the hex colors used by the board renderer.
type Theme struct {
	Border string `yaml:"border"`
	Accent string `yaml:"accent"`
	Muted  string `yaml:"muted"`
	Danger string `yaml:"danger"`
}

// DefaultTheme returns the default color set.
func DefaultTheme() Theme {
	return Theme{
		Border: "#7D56F4",
		Accent: "#04B575",
		Muted:  "#626262",
		Danger: "#FF5F87",
	}
}
