package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the lipgloss styles used by Styled output.
type Theme struct {
	// Header styles section headers.
	Header lipgloss.Style

	// Label styles field labels.
	Label lipgloss.Style

	// Value styles field values.
	Value lipgloss.Style

	// Muted styles secondary text such as rule keys.
	Muted lipgloss.Style
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2563EB")), // Blue

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8")), // Slate

		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E2E8F0")), // Light gray

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")), // Medium gray
	}
}

// Swatch renders a colour value preceded by a block glyph drawn in
// that colour, so hex codes can be eyeballed in a colour terminal.
func (t *Theme) Swatch(hex string) string {
	glyph := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex)).
		Render("■")
	return glyph + " " + hex
}
