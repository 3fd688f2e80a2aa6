package driving

import (
	"context"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
)

// ArchiveService manages stored recommendations.
type ArchiveService interface {
	// Save stores a recommendation and returns its ID.
	Save(ctx context.Context, rec *domain.DesignRecommendation) (string, error)

	// Get retrieves a stored recommendation by ID.
	Get(ctx context.Context, id string) (*domain.DesignRecommendation, error)

	// List returns summaries of stored recommendations, newest first.
	List(ctx context.Context, limit int) ([]domain.RecommendationSummary, error)

	// Delete removes a stored recommendation by ID.
	Delete(ctx context.Context, id string) error
}
