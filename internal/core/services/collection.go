package services

import (
	"context"
	"fmt"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
	"github.com/atelier-labs/atelier-cli/internal/core/ports/driven"
	"github.com/atelier-labs/atelier-cli/internal/core/ports/driving"
)

// Ensure CollectionService implements the interface.
var _ driving.CollectionService = (*CollectionService)(nil)

// CollectionService exposes the loaded knowledge base for browsing:
// collection listings, projected documents and the rule table.
type CollectionService struct {
	collections driven.CollectionStore
	rules       driven.RuleStore
}

// NewCollectionService creates a new collection service.
func NewCollectionService(collections driven.CollectionStore, rules driven.RuleStore) *CollectionService {
	return &CollectionService{
		collections: collections,
		rules:       rules,
	}
}

// Collections lists the loaded collections with document counts, in
// canonical order.
func (s *CollectionService) Collections(ctx context.Context) ([]domain.CollectionInfo, error) {
	stored := s.collections.Collections()
	infos := make([]domain.CollectionInfo, 0, len(stored))
	for _, collection := range stored {
		infos = append(infos, domain.CollectionInfo{
			Name:        collection,
			Description: collection.Description(),
			Count:       s.collections.Count(collection),
		})
	}
	return infos, nil
}

// Documents returns a collection's documents projected onto its output
// fields, in corpus order.
func (s *CollectionService) Documents(ctx context.Context, collection domain.Collection) ([]domain.Document, error) {
	docs, err := s.collections.Documents(collection)
	if err != nil {
		return nil, fmt.Errorf("load collection %s: %w", collection, err)
	}

	schema := domain.SchemaFor(collection)
	projected := make([]domain.Document, len(docs))
	for i, doc := range docs {
		projected[i] = doc.Project(schema.Output)
	}
	return projected, nil
}

// Rules returns the reasoning rule table in authored order.
func (s *CollectionService) Rules(ctx context.Context) ([]domain.ReasoningRule, error) {
	return s.rules.Rules(), nil
}
