package render

import (
	"strings"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
)

// Styled renders a recommendation with lipgloss styling for
// interactive terminals. The content matches PromptBlock line for
// line; only the dressing differs. A nil theme falls back to the
// default.
func Styled(rec domain.DesignRecommendation, theme *Theme) string {
	if theme == nil {
		theme = DefaultTheme()
	}

	var b strings.Builder
	for i, ln := range lines(rec) {
		switch ln.kind {
		case lineHeader:
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(theme.Header.Render(ln.label))
			b.WriteByte('\n')
		case lineField:
			b.WriteString(theme.Label.Render(ln.label + ":"))
			b.WriteByte(' ')
			b.WriteString(theme.Value.Render(ln.value))
			b.WriteByte('\n')
		case lineSwatch:
			b.WriteString(theme.Label.Render(ln.label + ":"))
			b.WriteByte(' ')
			b.WriteString(theme.Swatch(ln.value))
			b.WriteByte('\n')
		case lineLabel:
			b.WriteString(theme.Label.Render(ln.label + ":"))
			b.WriteByte('\n')
		case lineRule:
			b.WriteString("  ")
			b.WriteString(theme.Muted.Render(ln.label + ":"))
			b.WriteByte(' ')
			b.WriteString(theme.Value.Render(ln.value))
			b.WriteByte('\n')
		}
	}
	return b.String()
}
