package memory

import (
	"github.com/atelier-labs/atelier-cli/internal/core/domain"
	"github.com/atelier-labs/atelier-cli/internal/core/ports/driven"
)

// Ensure RuleStore implements the interface.
var _ driven.RuleStore = (*RuleStore)(nil)

// RuleStore is an in-memory implementation of driven.RuleStore holding
// a fixed rule table.
type RuleStore struct {
	rules []domain.ReasoningRule
}

// NewRuleStore creates a rule store over the given table. The slice is
// copied so the store cannot observe later mutations.
func NewRuleStore(rules []domain.ReasoningRule) *RuleStore {
	copied := make([]domain.ReasoningRule, len(rules))
	copy(copied, rules)
	return &RuleStore{rules: copied}
}

// Rules returns the rule table in authored order.
func (s *RuleStore) Rules() []domain.ReasoningRule {
	result := make([]domain.ReasoningRule, len(s.rules))
	copy(result, s.rules)
	return result
}
