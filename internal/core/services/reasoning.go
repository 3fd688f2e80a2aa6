package services

import (
	"encoding/json"
	"strings"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
	"github.com/atelier-labs/atelier-cli/internal/core/ports/driven"
	"github.com/atelier-labs/atelier-cli/internal/core/ports/driving"
	"github.com/atelier-labs/atelier-cli/internal/logger"
)

// Ensure ReasoningService implements the interface.
var _ driving.ReasoningService = (*ReasoningService)(nil)

// ReasoningService resolves product categories into design guidance
// via the hand-authored rule table.
type ReasoningService struct {
	rules driven.RuleStore
}

// NewReasoningService creates a new reasoning service. The rule store
// may be nil; Resolve then always yields the default guidance.
func NewReasoningService(rules driven.RuleStore) *ReasoningService {
	return &ReasoningService{rules: rules}
}

// Match finds the first rule for a category. Three tiers are tried in
// order, case-insensitively, and the first hit within a tier wins:
//
//  1. the rule's category equals the input
//  2. the rule's category contains the input, or vice versa
//  3. any fragment of the rule's category (split on "/" and "-") is
//     contained in the input
//
// Returns nil when every tier misses.
func (s *ReasoningService) Match(category string, rules []domain.ReasoningRule) *domain.ReasoningRule {
	input := strings.ToLower(strings.TrimSpace(category))
	if input == "" || len(rules) == 0 {
		return nil
	}

	for i := range rules {
		if strings.ToLower(rules[i].Category) == input {
			return &rules[i]
		}
	}

	for i := range rules {
		cat := strings.ToLower(rules[i].Category)
		if cat == "" {
			continue
		}
		if strings.Contains(input, cat) || strings.Contains(cat, input) {
			return &rules[i]
		}
	}

	for i := range rules {
		for _, fragment := range categoryFragments(rules[i].Category) {
			if strings.Contains(input, fragment) {
				return &rules[i]
			}
		}
	}

	return nil
}

// Apply turns a matched rule into ready-to-use guidance: the priority
// string is split and trimmed, the decision rules parsed. A nil rule
// yields the safe default so an unmatched category never fails a
// recommendation.
func (s *ReasoningService) Apply(rule *domain.ReasoningRule) domain.Guidance {
	if rule == nil {
		logger.Debug("No reasoning rule matched, using default guidance")
		return domain.DefaultGuidance()
	}

	guidance := domain.Guidance{
		Pattern:         rule.Pattern,
		StylePriorities: splitPriorities(rule.StylePriority),
		ColorMood:       rule.ColorMood,
		TypographyMood:  rule.TypographyMood,
		KeyEffects:      rule.KeyEffects,
		AntiPatterns:    rule.AntiPatterns,
		DecisionRules:   parseDecisionRules(rule.DecisionRules),
		Severity:        rule.Severity,
	}
	if !guidance.Severity.IsValid() {
		guidance.Severity = domain.SeverityMedium
	}
	return guidance
}

// Resolve matches the category against the loaded rule table and
// applies the result.
func (s *ReasoningService) Resolve(category string) domain.Guidance {
	var table []domain.ReasoningRule
	if s.rules != nil {
		table = s.rules.Rules()
	}

	rule := s.Match(category, table)
	if rule != nil {
		logger.Debug("Category %q matched rule %q", category, rule.Category)
	}
	return s.Apply(rule)
}

// categoryFragments splits a rule category on "/" and "-" into
// lowercase, trimmed, non-empty keyword fragments.
func categoryFragments(category string) []string {
	parts := strings.FieldsFunc(strings.ToLower(category), func(r rune) bool {
		return r == '/' || r == '-'
	})

	fragments := parts[:0]
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			fragments = append(fragments, trimmed)
		}
	}
	return fragments
}

// splitPriorities splits a "+"-delimited style priority string into
// ordered, trimmed, non-empty terms.
func splitPriorities(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, "+")
	priorities := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			priorities = append(priorities, trimmed)
		}
	}
	return priorities
}

// parseDecisionRules decodes the rule's JSON object string. Malformed
// content degrades to an empty map; a rule authoring mistake must not
// break recommendation output.
func parseDecisionRules(raw string) map[string]string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return map[string]string{}
	}

	rules := map[string]string{}
	if err := json.Unmarshal([]byte(raw), &rules); err != nil {
		logger.Warn("Malformed decision rules, ignoring: %v", err)
		return map[string]string{}
	}
	return rules
}
