package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
	"github.com/atelier-labs/atelier-cli/internal/core/ports/driven"
	"github.com/atelier-labs/atelier-cli/internal/core/ports/driving"
	"github.com/atelier-labs/atelier-cli/internal/logger"
	"github.com/atelier-labs/atelier-cli/internal/rank"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService ranks collection documents against free-text queries.
// Each call builds a fresh BM25 index over the collection; corpora are
// small enough that rebuilding is cheaper than keeping indexes in sync
// with anything.
type SearchService struct {
	collections driven.CollectionStore
	settings    domain.AppSettings
}

// NewSearchService creates a new search service. Settings are fixed
// for the service's lifetime; construct after loading configuration.
func NewSearchService(collections driven.CollectionStore, settings domain.AppSettings) *SearchService {
	return &SearchService{
		collections: collections,
		settings:    settings,
	}
}

// Search scores the collection's documents against the query and
// returns up to limit positive-score results, best first. Unknown
// collections and empty queries yield an empty result rather than an
// error; missing data is never a per-request failure.
func (s *SearchService) Search(
	ctx context.Context, collection domain.Collection, query string, limit int,
) ([]domain.SearchResult, error) {
	logger.Section("Collection Search")
	logger.Debug("Collection: %s, query: %q", collection, query)

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.SearchResult{}, nil
	}

	if limit <= 0 {
		limit = s.settings.Search.DefaultLimit
		logger.Debug("No limit given, using default %d", limit)
	}

	docs, err := s.collections.Documents(collection)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownCollection) {
			logger.Debug("Unknown collection %q, returning no results", collection)
			return []domain.SearchResult{}, nil
		}
		return nil, fmt.Errorf("load collection %s: %w", collection, err)
	}
	if len(docs) == 0 {
		logger.Debug("Collection %s is empty", collection)
		return []domain.SearchResult{}, nil
	}

	schema := domain.SchemaFor(collection)

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.JoinFields(schema.Search)
	}

	index := rank.New(texts,
		rank.WithK1(s.settings.Engine.K1),
		rank.WithB(s.settings.Engine.B),
	)

	matches := index.Score(query)

	results := make([]domain.SearchResult, 0, limit)
	for _, m := range matches {
		if m.Score <= 0 {
			// Matches are sorted descending; nothing positive remains.
			break
		}
		results = append(results, domain.SearchResult{
			Collection: collection,
			Document:   docs[m.Doc].Project(schema.Output),
			Score:      m.Score,
		})
		if len(results) == limit {
			break
		}
	}

	logger.Debug("Results: %d of %d documents", len(results), len(docs))
	return results, nil
}
