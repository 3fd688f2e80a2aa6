package driving

import (
	"context"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
)

// RecommendService composes design recommendations.
type RecommendService interface {
	// Generate builds a recommendation for a free-text query. Missing
	// or empty collections degrade to the documented defaults; the
	// call fails only on infrastructure errors.
	Generate(ctx context.Context, query, project string) (*domain.DesignRecommendation, error)
}
