package corpus

import (
	"encoding/json"
	"fmt"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
	"github.com/atelier-labs/atelier-cli/internal/logger"
)

// Load parses the embedded corpus into per-collection document sets.
// Each collection ships as data/<name>.json, an array of flat
// string-to-string objects. Loading fails fast on malformed JSON and
// on fields outside the collection's schema, so a bad corpus can
// never reach the search engine.
func Load() (map[domain.Collection][]domain.Document, error) {
	sets := make(map[domain.Collection][]domain.Document, len(domain.Collections()))
	for _, collection := range domain.Collections() {
		name := fmt.Sprintf("data/%s.json", collection)

		raw, err := dataFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, domain.ErrCorpusCorrupt)
		}

		docs, err := parseCollection(collection, name, raw)
		if err != nil {
			return nil, err
		}

		sets[collection] = docs
		logger.Debug("Loaded %d %s documents", len(docs), collection)
	}
	return sets, nil
}

// parseCollection decodes and validates one collection file. Every
// field must belong to the collection's schema; a recognised field on
// the wrong collection is as invisible to search as a typo, so both
// are rejected.
func parseCollection(collection domain.Collection, name string, raw []byte) ([]domain.Document, error) {
	var rows []map[string]string
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("parsing %s: %v: %w", name, err, domain.ErrCorpusCorrupt)
	}

	allowed := schemaFields(collection)
	identity := collection.IdentityField()

	docs := make([]domain.Document, 0, len(rows))
	for i, row := range rows {
		if len(row) == 0 {
			return nil, fmt.Errorf("%s: document %d is empty: %w", name, i, domain.ErrCorpusCorrupt)
		}
		doc := make(domain.Document, len(row))
		for key, value := range row {
			field := domain.Field(key)
			if !allowed[field] {
				return nil, fmt.Errorf("%s: document %d: field %q: %w", name, i, key, domain.ErrUnknownField)
			}
			doc[field] = value
		}
		if doc[identity] == "" {
			return nil, fmt.Errorf("%s: document %d: missing %s: %w", name, i, identity, domain.ErrCorpusCorrupt)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// schemaFields returns the set of fields legal for a collection: the
// union of its search and output schema.
func schemaFields(collection domain.Collection) map[domain.Field]bool {
	schema := domain.SchemaFor(collection)
	allowed := make(map[domain.Field]bool, len(schema.Search)+len(schema.Output))
	for _, f := range schema.Search {
		allowed[f] = true
	}
	for _, f := range schema.Output {
		allowed[f] = true
	}
	return allowed
}
