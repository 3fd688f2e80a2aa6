package corpus

import "github.com/atelier-labs/atelier-cli/internal/core/domain"

// rules is the built-in reasoning table. Categories mirror the product
// collection so a resolved category always has a chance at an exact
// match. Pattern names and style priorities reference corpus documents
// by name; corpus_test keeps those references honest.
var rules = []domain.ReasoningRule{
	{
		Category:       "SaaS / Software",
		Pattern:        "Hero + Features + CTA",
		StylePriority:  "Minimalism + Flat Design",
		ColorMood:      "Professional",
		TypographyMood: "Modern",
		KeyEffects:     "subtle hover transitions, soft shadows",
		AntiPatterns:   "heavy textures, autoplay media, novelty cursors",
		DecisionRules:  `{"hero":"lead with the outcome, not the feature list","cta":"one primary action above the fold"}`,
		Severity:       domain.SeverityMedium,
	},
	{
		Category:       "E-commerce / Retail",
		Pattern:        "Product Showcase",
		StylePriority:  "Material Design + Flat Design",
		ColorMood:      "Vibrant",
		TypographyMood: "Friendly",
		KeyEffects:     "image zoom on hover, sticky add-to-cart",
		AntiPatterns:   "cluttered grids, fake countdown discounts",
		DecisionRules:  `{"gallery":"consistent photography, one light setup","checkout":"show shipping cost before the form"}`,
		Severity:       domain.SeverityHigh,
	},
	{
		Category:       "Fitness / Wellness",
		Pattern:        "Social Proof Led",
		StylePriority:  "Brutalism + Dark Mode",
		ColorMood:      "Energetic",
		TypographyMood: "Bold",
		KeyEffects:     "bold photography, high-contrast sections",
		AntiPatterns:   "thin pastel gradients, dense paragraphs",
		DecisionRules:  `{"hero":"real members, not stock athletes","proof":"transformation numbers near the signup"}`,
		Severity:       domain.SeverityHigh,
	},
	{
		Category:       "Finance / Banking",
		Pattern:        "Hero + Features + CTA",
		StylePriority:  "Swiss / International + Minimalism",
		ColorMood:      "Trustworthy",
		TypographyMood: "Serious",
		KeyEffects:     "restrained motion, generous whitespace",
		AntiPatterns:   "playful illustration, countdown timers",
		DecisionRules:  `{"trust":"regulatory notes visible without scrolling","numbers":"tabular figures for rates and fees"}`,
		Severity:       domain.SeverityHigh,
	},
	{
		Category:       "Healthcare / Medical",
		Pattern:        "Lead Capture / Squeeze",
		StylePriority:  "Minimalism + Material Design",
		ColorMood:      "Calm",
		TypographyMood: "Humanist",
		KeyEffects:     "soft colour transitions, roomy line height",
		AntiPatterns:   "alarmist red accents, dense medical jargon",
		DecisionRules:  `{"forms":"ask only what scheduling needs","credentials":"certifications near the fold"}`,
		Severity:       domain.SeverityHigh,
	},
	{
		Category:       "Education / E-learning",
		Pattern:        "Storytelling / Narrative",
		StylePriority:  "Flat Design + Material Design",
		ColorMood:      "Friendly",
		TypographyMood: "Readable",
		KeyEffects:     "progress indicators, illustrated icons",
		AntiPatterns:   "walls of text, auto-advancing carousels",
		DecisionRules:  `{"curriculum":"outcomes per module, not lecture counts","signup":"free first lesson before payment"}`,
		Severity:       domain.SeverityMedium,
	},
	{
		Category:       "Restaurant / Food",
		Pattern:        "Product Showcase",
		StylePriority:  "Organic / Hand-drawn + Retro / Vintage",
		ColorMood:      "Appetizing",
		TypographyMood: "Friendly",
		KeyEffects:     "full-bleed dish photography, warm overlays",
		AntiPatterns:   "stock photography, PDF-only menus",
		DecisionRules:  `{"menu":"HTML menu with prices, never a PDF","hours":"opening hours in the header"}`,
		Severity:       domain.SeverityMedium,
	},
	{
		Category:       "Real Estate",
		Pattern:        "Lead Capture / Squeeze",
		StylePriority:  "Minimalism + Swiss / International",
		ColorMood:      "Premium",
		TypographyMood: "Elegant",
		KeyEffects:     "parallax property imagery, embedded maps",
		AntiPatterns:   "cluttered listing grids, watermarked photos",
		DecisionRules:  `{"listings":"price and neighbourhood before square metres","contact":"one-field lead form with phone fallback"}`,
		Severity:       domain.SeverityMedium,
	},
	{
		Category:       "Creative / Portfolio",
		Pattern:        "Storytelling / Narrative",
		StylePriority:  "Maximalism + Memphis Design",
		ColorMood:      "Expressive",
		TypographyMood: "Distinctive",
		KeyEffects:     "cursor-led interactions, scroll-triggered reveals",
		AntiPatterns:   "template grids, generic stock icons",
		DecisionRules:  `{"work":"three strongest projects, not the full archive","about":"a face and a voice, not a logo wall"}`,
		Severity:       domain.SeverityLow,
	},
	{
		Category:       "Travel / Hospitality",
		Pattern:        "Storytelling / Narrative",
		StylePriority:  "Glassmorphism + Minimalism",
		ColorMood:      "Escapist",
		TypographyMood: "Inviting",
		KeyEffects:     "full-screen destination imagery, soft parallax",
		AntiPatterns:   "aggressive popups, autoplaying slideshows",
		DecisionRules:  `{"booking":"date picker inside the hero","imagery":"destinations shot at golden hour"}`,
		Severity:       domain.SeverityMedium,
	},
	{
		Category:       "Technology / AI",
		Pattern:        "Hero + Features + CTA",
		StylePriority:  "Dark Mode + Glassmorphism",
		ColorMood:      "Futuristic",
		TypographyMood: "Technical",
		KeyEffects:     "gradient glows, animated terminal snippets",
		AntiPatterns:   "robot clip-art, meaningless particle fields",
		DecisionRules:  `{"demo":"interactive demo before the waitlist","claims":"benchmarks linked to sources"}`,
		Severity:       domain.SeverityMedium,
	},
	{
		Category:       "Non-profit / Charity",
		Pattern:        "Social Proof Led",
		StylePriority:  "Flat Design + Organic / Hand-drawn",
		ColorMood:      "Warm",
		TypographyMood: "Sincere",
		KeyEffects:     "documentary photography, impact counters",
		AntiPatterns:   "guilt-driven imagery, hidden donation fees",
		DecisionRules:  `{"donate":"suggested amounts with impact labels","transparency":"programme spending ratio up front"}`,
		Severity:       domain.SeverityMedium,
	},
}

// Rules returns the built-in reasoning table in authored order.
func Rules() []domain.ReasoningRule {
	result := make([]domain.ReasoningRule, len(rules))
	copy(result, rules)
	return result
}
