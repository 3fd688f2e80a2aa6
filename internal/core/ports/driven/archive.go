package driven

import (
	"context"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
)

// RecommendationArchive persists generated design recommendations.
// Backed by SQLite.
type RecommendationArchive interface {
	// Save stores or updates a recommendation.
	Save(ctx context.Context, rec *domain.DesignRecommendation) error

	// Get retrieves a recommendation by ID.
	// Returns domain.ErrRecommendationNotFound when absent.
	Get(ctx context.Context, id string) (*domain.DesignRecommendation, error)

	// List returns summaries of stored recommendations, newest
	// first, capped at limit (non-positive means no cap).
	List(ctx context.Context, limit int) ([]domain.RecommendationSummary, error)

	// Delete removes a recommendation.
	// Returns domain.ErrRecommendationNotFound when absent.
	Delete(ctx context.Context, id string) error

	// Close releases the underlying database.
	Close() error
}
