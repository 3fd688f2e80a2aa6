package domain

// SearchResult represents a single ranked hit from a collection search.
type SearchResult struct {
	// Collection is the collection the document came from.
	Collection Collection `json:"collection"`

	// Document is the matched record, already projected onto the
	// collection's output fields.
	Document Document `json:"document"`

	// Score is the BM25 relevance score. Results with a score of
	// zero or below are filtered before they reach callers.
	Score float64 `json:"score"`
}
