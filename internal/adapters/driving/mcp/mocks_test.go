package mcp

import (
	"context"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results []domain.SearchResult
	err     error
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ domain.Collection,
	_ string,
	_ int,
) ([]domain.SearchResult, error) {
	return m.results, m.err
}

// mockRecommendService is a mock implementation of driving.RecommendService.
type mockRecommendService struct {
	rec *domain.DesignRecommendation
	err error
}

func (m *mockRecommendService) Generate(
	_ context.Context,
	query, project string,
) (*domain.DesignRecommendation, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.rec != nil {
		return m.rec, nil
	}
	rec := &domain.DesignRecommendation{
		Query:      query,
		Project:    project,
		Category:   "General",
		Pattern:    domain.DefaultPatternChoice(),
		Style:      domain.DefaultStyleChoice(),
		Colors:     domain.DefaultPalette(),
		Typography: domain.DefaultTypographyChoice(),
		Severity:   domain.SeverityMedium,
	}
	return rec, nil
}

// mockCollectionService is a mock implementation of driving.CollectionService.
type mockCollectionService struct {
	infos []domain.CollectionInfo
	docs  []domain.Document
	rules []domain.ReasoningRule
	err   error
}

func (m *mockCollectionService) Collections(_ context.Context) ([]domain.CollectionInfo, error) {
	return m.infos, m.err
}

func (m *mockCollectionService) Documents(
	_ context.Context,
	collection domain.Collection,
) ([]domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	if !collection.IsValid() {
		return nil, domain.ErrUnknownCollection
	}
	return m.docs, nil
}

func (m *mockCollectionService) Rules(_ context.Context) ([]domain.ReasoningRule, error) {
	return m.rules, m.err
}
