package driven

import "github.com/atelier-labs/atelier-cli/internal/core/domain"

// CollectionStore provides read access to the loaded design
// collections. Implementations load once at startup and never change
// afterwards; all methods are safe for concurrent use.
type CollectionStore interface {
	// Documents returns the documents of a collection in corpus
	// order. Returns domain.ErrUnknownCollection for names outside
	// the stored set.
	Documents(collection domain.Collection) ([]domain.Document, error)

	// Collections lists the stored collections in canonical order.
	Collections() []domain.Collection

	// Count returns the number of documents in a collection, zero
	// for unknown names.
	Count(collection domain.Collection) int
}

// RuleStore provides read access to the reasoning rule table.
// Like CollectionStore, contents are fixed after startup.
type RuleStore interface {
	// Rules returns the rule table in authored order.
	Rules() []domain.ReasoningRule
}
