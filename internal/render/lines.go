package render

import (
	"sort"
	"time"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
)

// lineKind discriminates the line shapes a recommendation renders to.
type lineKind int

const (
	// lineHeader is a section header.
	lineHeader lineKind = iota

	// lineField is a "Label: value" line.
	lineField

	// lineSwatch is a field whose value is a hex colour.
	lineSwatch

	// lineLabel is a label introducing nested lines.
	lineLabel

	// lineRule is an indented "key: value" decision-rule line.
	lineRule
)

// line is one rendered line of a recommendation block. Both the plain
// and the styled renderer walk the same line sequence, so the two
// outputs can never drift apart in content.
type line struct {
	kind  lineKind
	label string
	value string
}

// lines flattens a recommendation into its render sequence. Empty
// optional fields produce no line; decision rules are sorted by key so
// the output is deterministic.
func lines(rec domain.DesignRecommendation) []line {
	var out []line

	header := func(title string) {
		out = append(out, line{kind: lineHeader, label: title})
	}
	field := func(label, value string) {
		if value == "" {
			return
		}
		out = append(out, line{kind: lineField, label: label, value: value})
	}
	swatch := func(label, value string) {
		if value == "" {
			return
		}
		out = append(out, line{kind: lineSwatch, label: label, value: value})
	}

	header("DESIGN RECOMMENDATION")
	field("Project", rec.Project)
	field("Query", rec.Query)
	field("Category", rec.Category)
	field("Severity", rec.Severity.String())
	field("ID", rec.ID)
	if !rec.CreatedAt.IsZero() {
		field("Created", rec.CreatedAt.Format(time.RFC3339))
	}

	header("LAYOUT")
	field("Pattern", rec.Pattern.Name)
	field("Sections", rec.Pattern.Sections)
	field("CTA Placement", rec.Pattern.CTAPlacement)
	field("Color Strategy", rec.Pattern.ColorStrategy)
	field("Conversion Notes", rec.Pattern.ConversionNotes)

	header("STYLE")
	field("Name", rec.Style.Name)
	field("Type", rec.Style.Type)
	field("Effects", rec.Style.Effects)
	field("Keywords", rec.Style.Keywords)
	field("Audience Fit", rec.Style.AudienceFit)
	field("Performance", rec.Style.Performance)
	field("Accessibility", rec.Style.Accessibility)

	header("COLORS")
	field("Palette", rec.Colors.Name)
	swatch("Primary", rec.Colors.Primary)
	swatch("Secondary", rec.Colors.Secondary)
	swatch("Accent", rec.Colors.Accent)
	swatch("Background", rec.Colors.Background)
	swatch("Text", rec.Colors.Text)
	field("Notes", rec.Colors.Notes)

	header("TYPOGRAPHY")
	field("Heading", rec.Typography.Heading)
	field("Body", rec.Typography.Body)
	field("Mood", rec.Typography.Mood)
	field("Audience Fit", rec.Typography.AudienceFit)
	field("Loading", rec.Typography.Loading)

	if rec.KeyEffects != "" || rec.AntiPatterns != "" || len(rec.DecisionRules) > 0 {
		header("GUIDANCE")
		field("Key Effects", rec.KeyEffects)
		field("Anti-patterns", rec.AntiPatterns)
		if len(rec.DecisionRules) > 0 {
			out = append(out, line{kind: lineLabel, label: "Decision Rules"})
			keys := make([]string, 0, len(rec.DecisionRules))
			for key := range rec.DecisionRules {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				out = append(out, line{kind: lineRule, label: key, value: rec.DecisionRules[key]})
			}
		}
	}

	return out
}
