package tui

import (
	"github.com/atelier-labs/atelier-cli/internal/core/domain"
)

// Messages represent events that flow through the Elm architecture.

// CollectionsLoaded carries the loaded collection inventory.
type CollectionsLoaded struct {
	Collections []domain.CollectionInfo
	Err         error
}

// SearchCompleted carries search results back to the model.
type SearchCompleted struct {
	Results []domain.SearchResult
	Err     error
}

// RecommendationReady carries a generated recommendation.
type RecommendationReady struct {
	Recommendation *domain.DesignRecommendation
	Err            error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
