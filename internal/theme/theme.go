package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the application
type Theme struct {
	Name string

	// Text colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color

	// UI element colors
	Border       lipgloss.Color
	BorderActive lipgloss.Color
	Highlight    lipgloss.Color

	// Map marker colors by role
	TopicMarker      lipgloss.Color
	RevelationMarker lipgloss.Color
}

// Available themes
var (
	CatppuccinMocha = Theme{
		Name:             "Catppuccin Mocha",
		Primary:          lipgloss.Color("#cdd6f4"),
		Secondary:        lipgloss.Color("#a6adc8"),
		Accent:           lipgloss.Color("#f5c2e7"),
		Muted:            lipgloss.Color("#6c7086"),
		Error:            lipgloss.Color("#f38ba8"),
		Border:           lipgloss.Color("#45475a"),
		BorderActive:     lipgloss.Color("#89b4fa"),
		Highlight:        lipgloss.Color("#45475a"),
		TopicMarker:      lipgloss.Color("#a6e3a1"),
		RevelationMarker: lipgloss.Color("#f9e2af"),
	}

	Dracula = Theme{
		Name:             "Dracula",
		Primary:          lipgloss.Color("#f8f8f2"),
		Secondary:        lipgloss.Color("#6272a4"),
		Accent:           lipgloss.Color("#ff79c6"),
		Muted:            lipgloss.Color("#6272a4"),
		Error:            lipgloss.Color("#ff5555"),
		Border:           lipgloss.Color("#44475a"),
		BorderActive:     lipgloss.Color("#bd93f9"),
		Highlight:        lipgloss.Color("#44475a"),
		TopicMarker:      lipgloss.Color("#50fa7b"),
		RevelationMarker: lipgloss.Color("#f1fa8c"),
	}

	SolarizedDark = Theme{
		Name:             "Solarized Dark",
		Primary:          lipgloss.Color("#839496"),
		Secondary:        lipgloss.Color("#586e75"),
		Accent:           lipgloss.Color("#d33682"),
		Muted:            lipgloss.Color("#586e75"),
		Error:            lipgloss.Color("#dc322f"),
		Border:           lipgloss.Color("#073642"),
		BorderActive:     lipgloss.Color("#268bd2"),
		Highlight:        lipgloss.Color("#073642"),
		TopicMarker:      lipgloss.Color("#859900"),
		RevelationMarker: lipgloss.Color("#b58900"),
	}

	RosePineMoon = Theme{
		Name:             "Rosé Pine Moon",
		Primary:          lipgloss.Color("#e0def4"),
		Secondary:        lipgloss.Color("#908caa"),
		Accent:           lipgloss.Color("#ebbcba"),
		Muted:            lipgloss.Color("#6e6a86"),
		Error:            lipgloss.Color("#eb6f92"),
		Border:           lipgloss.Color("#403d52"),
		BorderActive:     lipgloss.Color("#c4a7e7"),
		Highlight:        lipgloss.Color("#393552"),
		TopicMarker:      lipgloss.Color("#9ccfd8"),
		RevelationMarker: lipgloss.Color("#f6c177"),
	}
)

// AllThemes returns a list of all available themes
func AllThemes() []Theme {
	return []Theme{
		CatppuccinMocha,
		Dracula,
		SolarizedDark,
		RosePineMoon,
	}
}

// GetTheme returns a theme by key or display name, defaulting to
// Catppuccin Mocha if not found
func GetTheme(name string) Theme {
	themes := map[string]Theme{
		"catppuccin-mocha": CatppuccinMocha,
		"dracula":          Dracula,
		"solarized-dark":   SolarizedDark,
		"rosepine-moon":    RosePineMoon,
	}

	if theme, ok := themes[name]; ok {
		return theme
	}
	for _, t := range AllThemes() {
		if t.Name == name {
			return t
		}
	}
	return CatppuccinMocha
}
