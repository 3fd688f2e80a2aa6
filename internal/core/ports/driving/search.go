package driving

import (
	"context"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
)

// SearchService provides ranked search over a single collection.
type SearchService interface {
	// Search scores the collection's documents against the query and
	// returns up to limit positive-score results, best first, each
	// projected onto the collection's output fields. Unknown
	// collection names and empty queries yield an empty result, not
	// an error. A non-positive limit falls back to the configured
	// default.
	Search(ctx context.Context, collection domain.Collection, query string, limit int) ([]domain.SearchResult, error)
}
