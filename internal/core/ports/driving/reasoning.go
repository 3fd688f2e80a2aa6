package driving

import "github.com/atelier-labs/atelier-cli/internal/core/domain"

// ReasoningService resolves product categories into design guidance
// using the loaded rule table.
type ReasoningService interface {
	// Match finds the rule for a category via the tiered cascade
	// (exact, substring, keyword fragment), case-insensitively.
	// Returns nil when no tier matches.
	Match(category string, rules []domain.ReasoningRule) *domain.ReasoningRule

	// Apply turns a matched rule into ready-to-use guidance. A nil
	// rule yields the safe default guidance.
	Apply(rule *domain.ReasoningRule) domain.Guidance

	// Resolve matches the category against the loaded rule table and
	// applies the result.
	Resolve(category string) domain.Guidance
}
