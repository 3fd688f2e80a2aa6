package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
	"github.com/atelier-labs/atelier-cli/internal/core/ports/driven"
)

// Ensure RecommendationArchive implements the interface.
var _ driven.RecommendationArchive = (*RecommendationArchive)(nil)

// RecommendationArchive is an in-memory implementation of
// driven.RecommendationArchive for testing.
type RecommendationArchive struct {
	mu      sync.RWMutex
	records map[string]domain.DesignRecommendation
}

// NewRecommendationArchive creates a new in-memory archive.
func NewRecommendationArchive() *RecommendationArchive {
	return &RecommendationArchive{
		records: make(map[string]domain.DesignRecommendation),
	}
}

// Save stores or updates a recommendation.
func (s *RecommendationArchive) Save(_ context.Context, rec *domain.DesignRecommendation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = *rec
	return nil
}

// Get retrieves a recommendation by ID.
func (s *RecommendationArchive) Get(_ context.Context, id string) (*domain.DesignRecommendation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, domain.ErrRecommendationNotFound
	}
	return &rec, nil
}

// List returns summaries of stored recommendations, newest first.
func (s *RecommendationArchive) List(_ context.Context, limit int) ([]domain.RecommendationSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]domain.RecommendationSummary, 0, len(s.records))
	for _, rec := range s.records {
		summaries = append(summaries, domain.RecommendationSummary{
			ID:        rec.ID,
			Project:   rec.Project,
			Query:     rec.Query,
			Category:  rec.Category,
			Severity:  rec.Severity,
			CreatedAt: rec.CreatedAt,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].CreatedAt.Equal(summaries[j].CreatedAt) {
			return summaries[i].ID < summaries[j].ID
		}
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})

	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}

// Delete removes a recommendation.
func (s *RecommendationArchive) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return domain.ErrRecommendationNotFound
	}
	delete(s.records, id)
	return nil
}

// Close releases resources (no-op for memory archive).
func (s *RecommendationArchive) Close() error {
	return nil
}
