package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Panel        lipgloss.Style
	Header       lipgloss.Style
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Prompt       lipgloss.Style
	Formula      lipgloss.Style
	MetricLabel  lipgloss.Style
	MetricValue  lipgloss.Style
	Chart        lipgloss.Style
	Key          lipgloss.Style
	KeyHint      lipgloss.Style
	StatusBar    lipgloss.Style
	Status       map[StatusKind]lipgloss.Style

	theme Theme
}

func NewStyles(t Theme) Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Secondary).
			Padding(1, 2).
			Width(panelWidth),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent).
			MarginBottom(1),
		Label:        lipgloss.NewStyle().Foreground(t.Text),
		FocusedLabel: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Prompt:       lipgloss.NewStyle().Foreground(t.Accent),
		Formula:      lipgloss.NewStyle().Foreground(t.Text).Width(panelWidth - 4),
		MetricLabel:  lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		MetricValue:  lipgloss.NewStyle().Foreground(t.Info).Bold(true),
		Chart:        lipgloss.NewStyle().Foreground(t.Accent).Padding(1, 2),
		Key:          lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		KeyHint:      lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		StatusBar:    lipgloss.NewStyle().Padding(0, 1),
		Status: map[StatusKind]lipgloss.Style{
			StatusReady: lipgloss.NewStyle().Foreground(t.Muted),
			StatusOK:    lipgloss.NewStyle().Foreground(t.Success),
			StatusWarn:  lipgloss.NewStyle().Foreground(t.Warning),
			StatusError: lipgloss.NewStyle().Foreground(t.Error).Bold(true),
			StatusInfo:  lipgloss.NewStyle().Foreground(t.Info),
		},
		theme: t,
	}
}

// GradientText creates a gradient effect on text using color interpolation
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	if len(text) == 0 {
		return ""
	}

	// Parse hex colors
	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	var result strings.Builder
	n := len([]rune(text))

	i := 0
	for _, c := range text {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := int(float64(sr) + t*float64(er-sr))
		g := int(float64(sg) + t*float64(eg-sg))
		b := int(float64(sb) + t*float64(eb-sb))

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(r, g, b)))
		result.WriteString(style.Render(string(c)))
		i++
	}

	return result.String()
}

// ProgressBar renders how far along 0..1 a value is, colored by the theme.
func (s Styles) ProgressBar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	color := s.theme.Warning
	if fraction > 0.8 {
		color = s.theme.Success
	} else if fraction < 0.4 {
		color = s.theme.Error
	}
	return lipgloss.NewStyle().Foreground(color).Render(bar)
}

// Helper functions
func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	r = parseHexByte(hex[1:3])
	g = parseHexByte(hex[3:5])
	b = parseHexByte(hex[5:7])
	return
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		if c >= '0' && c <= '9' {
			val += int(c - '0')
		} else if c >= 'a' && c <= 'f' {
			val += int(c - 'a' + 10)
		} else if c >= 'A' && c <= 'F' {
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
