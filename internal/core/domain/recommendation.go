package domain

import "time"

// Fixed fallbacks merged into a recommendation wherever a collection
// lookup yields no usable value. Keeping them here lets the composer,
// renderers and tests agree on one set.
const (
	DefaultPatternName          = "Hero + Features + CTA"
	DefaultPatternSections      = "hero, features, social-proof, cta"
	DefaultPatternCTA           = "above the fold and repeated in footer"
	DefaultPatternColorStrategy = "single accent on neutral base"

	DefaultStyleName = "Minimalism"
	DefaultStyleType = "minimal"

	DefaultColorPrimary    = "#2563EB"
	DefaultColorSecondary  = "#1E40AF"
	DefaultColorAccent     = "#F59E0B"
	DefaultColorBackground = "#F9FAFB"
	DefaultColorText       = "#111827"

	DefaultFontHeading = "Inter"
	DefaultFontBody    = "Inter"
)

// PatternChoice is the selected landing-page layout.
type PatternChoice struct {
	// Name is the pattern name ("Hero + Features + CTA").
	Name string `json:"name"`

	// Sections is the ordered section list.
	Sections string `json:"sections"`

	// CTAPlacement describes where calls to action sit.
	CTAPlacement string `json:"cta_placement"`

	// ColorStrategy describes how colour is distributed.
	ColorStrategy string `json:"color_strategy"`

	// ConversionNotes carries conversion guidance, when present.
	ConversionNotes string `json:"conversion_notes,omitempty"`
}

// DefaultPatternChoice returns the fallback layout.
func DefaultPatternChoice() PatternChoice {
	return PatternChoice{
		Name:          DefaultPatternName,
		Sections:      DefaultPatternSections,
		CTAPlacement:  DefaultPatternCTA,
		ColorStrategy: DefaultPatternColorStrategy,
	}
}

// StyleChoice is the selected visual style.
type StyleChoice struct {
	// Name is the style name ("Minimalism").
	Name string `json:"name"`

	// Type classifies the style ("minimal", "decorative").
	Type string `json:"type"`

	// Effects describes the style's signature visual effects.
	Effects string `json:"effects,omitempty"`

	// Keywords holds the style's tag list.
	Keywords string `json:"keywords,omitempty"`

	// AudienceFit notes which audiences the style suits.
	AudienceFit string `json:"audience_fit,omitempty"`

	// Performance carries rendering-cost notes, when present.
	Performance string `json:"performance,omitempty"`

	// Accessibility carries accessibility notes, when present.
	Accessibility string `json:"accessibility,omitempty"`
}

// DefaultStyleChoice returns the fallback style.
func DefaultStyleChoice() StyleChoice {
	return StyleChoice{
		Name: DefaultStyleName,
		Type: DefaultStyleType,
	}
}

// Palette is the selected colour set: five semantic hex roles plus
// free-form notes.
type Palette struct {
	// Name is the palette name, when the palette came from the
	// collection rather than the defaults.
	Name string `json:"name,omitempty"`

	// Primary is the brand/action colour.
	Primary string `json:"primary"`

	// Secondary supports the primary.
	Secondary string `json:"secondary"`

	// Accent is the highlight colour.
	Accent string `json:"accent"`

	// Background is the page background.
	Background string `json:"background"`

	// Text is the base text colour.
	Text string `json:"text"`

	// Notes carries usage notes, when present.
	Notes string `json:"notes,omitempty"`
}

// DefaultPalette returns the fallback colour set.
func DefaultPalette() Palette {
	return Palette{
		Primary:    DefaultColorPrimary,
		Secondary:  DefaultColorSecondary,
		Accent:     DefaultColorAccent,
		Background: DefaultColorBackground,
		Text:       DefaultColorText,
	}
}

// TypographyChoice is the selected font pairing.
type TypographyChoice struct {
	// Heading is the heading font family.
	Heading string `json:"heading"`

	// Body is the body font family.
	Body string `json:"body"`

	// Mood describes the pairing's tone.
	Mood string `json:"mood,omitempty"`

	// AudienceFit notes which audiences the pairing suits.
	AudienceFit string `json:"audience_fit,omitempty"`

	// Loading carries font-loading metadata, when present.
	Loading string `json:"loading,omitempty"`
}

// DefaultTypographyChoice returns the fallback pairing.
func DefaultTypographyChoice() TypographyChoice {
	return TypographyChoice{
		Heading: DefaultFontHeading,
		Body:    DefaultFontBody,
	}
}

// DesignRecommendation is the composed output for one query: the
// chosen layout, style, palette and typography plus the reasoning
// guidance they were merged with. Constructed fresh per request.
type DesignRecommendation struct {
	// ID uniquely identifies the recommendation.
	ID string `json:"id"`

	// Project is the caller-supplied project name.
	Project string `json:"project"`

	// Query is the free-text query the recommendation was built from.
	Query string `json:"query"`

	// Category is the resolved product category ("General" when no
	// product matched).
	Category string `json:"category"`

	// Pattern is the chosen landing-page layout.
	Pattern PatternChoice `json:"pattern"`

	// Style is the chosen visual style.
	Style StyleChoice `json:"style"`

	// Colors is the chosen palette.
	Colors Palette `json:"colors"`

	// Typography is the chosen font pairing.
	Typography TypographyChoice `json:"typography"`

	// KeyEffects is the style's effects text, falling back to the
	// guidance's key effects when the style carries none.
	KeyEffects string `json:"key_effects,omitempty"`

	// AntiPatterns lists what to avoid, from the guidance.
	AntiPatterns string `json:"anti_patterns,omitempty"`

	// DecisionRules holds keyed guidance, from the matched rule.
	DecisionRules map[string]string `json:"decision_rules,omitempty"`

	// Severity grades how binding the guidance is.
	Severity Severity `json:"severity"`

	// CreatedAt is when the recommendation was generated.
	CreatedAt time.Time `json:"created_at"`
}

// RecommendationSummary is the archive listing view of a stored
// recommendation: enough to identify it without loading the payload.
type RecommendationSummary struct {
	// ID uniquely identifies the recommendation.
	ID string `json:"id"`

	// Project is the project name it was generated for.
	Project string `json:"project"`

	// Query is the query it was generated from.
	Query string `json:"query"`

	// Category is the resolved product category.
	Category string `json:"category"`

	// Severity grades how binding the guidance is.
	Severity Severity `json:"severity"`

	// CreatedAt is when the recommendation was generated.
	CreatedAt time.Time `json:"created_at"`
}
