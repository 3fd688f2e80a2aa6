package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
	"github.com/atelier-labs/atelier-cli/internal/core/ports/driven"
	"github.com/atelier-labs/atelier-cli/internal/core/ports/driving"
	"github.com/atelier-labs/atelier-cli/internal/logger"
)

// Ensure ArchiveService implements the interface.
var _ driving.ArchiveService = (*ArchiveService)(nil)

// ArchiveService manages stored recommendations on top of the archive
// driven port.
type ArchiveService struct {
	archive driven.RecommendationArchive
}

// NewArchiveService creates a new archive service.
func NewArchiveService(archive driven.RecommendationArchive) *ArchiveService {
	return &ArchiveService{archive: archive}
}

// Save stores a recommendation, assigning an ID when it has none, and
// returns the ID.
func (s *ArchiveService) Save(ctx context.Context, rec *domain.DesignRecommendation) (string, error) {
	if rec == nil {
		return "", fmt.Errorf("save recommendation: %w", domain.ErrInvalidInput)
	}

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	if err := s.archive.Save(ctx, rec); err != nil {
		return "", fmt.Errorf("save recommendation: %w", err)
	}

	logger.Debug("Saved recommendation %s", rec.ID)
	return rec.ID, nil
}

// Get retrieves a stored recommendation by ID.
func (s *ArchiveService) Get(ctx context.Context, id string) (*domain.DesignRecommendation, error) {
	rec, err := s.archive.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get recommendation %s: %w", id, err)
	}
	return rec, nil
}

// List returns summaries of stored recommendations, newest first.
func (s *ArchiveService) List(ctx context.Context, limit int) ([]domain.RecommendationSummary, error) {
	summaries, err := s.archive.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}
	return summaries, nil
}

// Delete removes a stored recommendation by ID.
func (s *ArchiveService) Delete(ctx context.Context, id string) error {
	if err := s.archive.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete recommendation %s: %w", id, err)
	}

	logger.Debug("Deleted recommendation %s", id)
	return nil
}
