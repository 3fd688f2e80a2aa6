package driving

import (
	"context"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
)

// CollectionService exposes read access to the loaded knowledge base:
// the design collections and the reasoning rule table.
type CollectionService interface {
	// Collections lists the loaded collections with document counts,
	// in canonical order.
	Collections(ctx context.Context) ([]domain.CollectionInfo, error)

	// Documents returns a collection's documents projected onto its
	// output fields, in corpus order. Returns
	// domain.ErrUnknownCollection for names outside the loaded set.
	Documents(ctx context.Context, collection domain.Collection) ([]domain.Document, error)

	// Rules returns the reasoning rule table in authored order.
	Rules(ctx context.Context) ([]domain.ReasoningRule, error)
}
