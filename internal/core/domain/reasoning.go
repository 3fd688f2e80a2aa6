package domain

// Severity grades how strictly a rule's guidance should be treated by
// downstream generators. It is carried and rendered, never branched on.
type Severity string

// Available severities.
const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// IsValid returns true if the severity is recognised.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s Severity) String() string {
	return string(s)
}

// ReasoningRule maps a product category to hand-authored design
// guidance. Rules are loaded once from a static table and are
// read-only thereafter.
type ReasoningRule struct {
	// Category is the product/UI category the rule applies to.
	// Matching against it is case-insensitive and tiered (exact,
	// substring, keyword fragment).
	Category string `json:"category"`

	// Pattern is the recommended landing-page pattern name.
	Pattern string `json:"pattern"`

	// StylePriority lists preferred style names as a "+"-delimited
	// string, highest priority first.
	StylePriority string `json:"style_priority"`

	// ColorMood biases the colour search ("Professional", "Energetic").
	ColorMood string `json:"color_mood"`

	// TypographyMood biases the typography search.
	TypographyMood string `json:"typography_mood"`

	// KeyEffects describes the visual effects to lean on.
	KeyEffects string `json:"key_effects"`

	// AntiPatterns lists what to avoid for this category.
	AntiPatterns string `json:"anti_patterns"`

	// DecisionRules holds additional keyed guidance as a JSON object
	// string. Malformed content degrades to an empty map at apply
	// time rather than failing the recommendation.
	DecisionRules string `json:"decision_rules"`

	// Severity grades how binding the guidance is.
	Severity Severity `json:"severity"`
}

// Guidance is a resolved rule ready for the composer: the priority
// string split into ordered terms and the decision rules parsed.
type Guidance struct {
	// Pattern is the recommended landing-page pattern name.
	Pattern string `json:"pattern"`

	// StylePriorities holds the ordered, trimmed style preferences.
	StylePriorities []string `json:"style_priorities"`

	// ColorMood biases the colour search.
	ColorMood string `json:"color_mood"`

	// TypographyMood biases the typography search.
	TypographyMood string `json:"typography_mood"`

	// KeyEffects describes the visual effects to lean on.
	KeyEffects string `json:"key_effects,omitempty"`

	// AntiPatterns lists what to avoid.
	AntiPatterns string `json:"anti_patterns,omitempty"`

	// DecisionRules holds parsed keyed guidance.
	DecisionRules map[string]string `json:"decision_rules"`

	// Severity grades how binding the guidance is.
	Severity Severity `json:"severity"`
}

// DefaultGuidance returns the safe fallback applied when no rule
// matches a category. Recommendation generation must never fail on an
// unknown category.
func DefaultGuidance() Guidance {
	return Guidance{
		Pattern:         DefaultPatternName,
		StylePriorities: []string{"Minimalism", "Flat Design"},
		ColorMood:       "Professional",
		TypographyMood:  "Professional",
		DecisionRules:   map[string]string{},
		Severity:        SeverityMedium,
	}
}
