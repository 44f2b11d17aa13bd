package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Panel     lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Info      lipgloss.Color
}

// Available themes
var (
	ThemeThermal = Theme{
		Name:      "thermal",
		Primary:   lipgloss.Color("#6200ea"), // Deep purple
		Secondary: lipgloss.Color("#37474f"),
		Accent:    lipgloss.Color("#bb86fc"), // Soft purple
		Panel:     lipgloss.Color("#252535"),
		Text:      lipgloss.Color("#e0e0e0"),
		Muted:     lipgloss.Color("#888888"),
		Success:   lipgloss.Color("#69f0ae"),
		Warning:   lipgloss.Color("#ffd740"),
		Error:     lipgloss.Color("#ff5252"),
		Info:      lipgloss.Color("#80d8ff"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"), // Green phosphor
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Panel:     lipgloss.Color("#001100"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Success:   lipgloss.Color("#88ff88"),
		Warning:   lipgloss.Color("#ffff00"),
		Error:     lipgloss.Color("#ff0000"),
		Info:      lipgloss.Color("#00cc00"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Panel:     lipgloss.Color("#000000"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ffaa00"),
		Error:     lipgloss.Color("#ff0000"),
		Info:      lipgloss.Color("#0088ff"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"), // Ocean blue
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Panel:     lipgloss.Color("#001a33"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffcc00"),
		Error:     lipgloss.Color("#ff4444"),
		Info:      lipgloss.Color("#00a8cc"),
	}

	// All available themes
	Themes = []Theme{
		ThemeThermal,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return ThemeThermal, false
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
