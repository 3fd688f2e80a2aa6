package memory

import (
	"fmt"
	"sync"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
	"github.com/atelier-labs/atelier-cli/internal/core/ports/driven"
)

// Ensure CollectionStore implements the interface.
var _ driven.CollectionStore = (*CollectionStore)(nil)

// CollectionStore is an in-memory implementation of driven.CollectionStore.
// The corpus loader fills it once at startup; afterwards it only serves
// reads.
type CollectionStore struct {
	mu          sync.RWMutex
	collections map[domain.Collection][]domain.Document
}

// NewCollectionStore creates a new in-memory collection store.
func NewCollectionStore() *CollectionStore {
	return &CollectionStore{
		collections: make(map[domain.Collection][]domain.Document),
	}
}

// Replace swaps in the documents of a collection, keeping their order.
// Documents are copied on the way in so later edits to the caller's
// slice cannot reach the store.
func (s *CollectionStore) Replace(collection domain.Collection, docs []domain.Document) error {
	if !collection.IsValid() {
		return fmt.Errorf("replace collection %q: %w", collection, domain.ErrUnknownCollection)
	}

	copied := make([]domain.Document, len(docs))
	for i, doc := range docs {
		copied[i] = doc.Clone()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = copied
	return nil
}

// Documents returns the documents of a collection in corpus order.
func (s *CollectionStore) Documents(collection domain.Collection) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.collections[collection]
	if !ok {
		return nil, fmt.Errorf("collection %q: %w", collection, domain.ErrUnknownCollection)
	}

	result := make([]domain.Document, len(stored))
	for i, doc := range stored {
		result[i] = doc.Clone()
	}
	return result, nil
}

// Collections lists the stored collections in canonical order.
func (s *CollectionStore) Collections() []domain.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Collection
	for _, collection := range domain.Collections() {
		if _, ok := s.collections[collection]; ok {
			result = append(result, collection)
		}
	}
	return result
}

// Count returns the number of documents in a collection.
func (s *CollectionStore) Count(collection domain.Collection) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collection])
}
