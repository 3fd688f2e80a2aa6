// Package rank implements the Okapi BM25 ranking function used to score
// documents in the design collections. Corpora are small (tens to low
// hundreds of documents) and an index is rebuilt per query, so no
// inverted index is kept; scoring is a linear scan over the corpus.
package rank

import (
	"math"
	"sort"
)

// Default BM25 parameters (Okapi variant).
const (
	// DefaultK1 controls how quickly repeated term occurrences stop
	// adding score (term-frequency saturation).
	DefaultK1 = 1.5

	// DefaultB controls how strongly document length relative to the
	// corpus average penalises score (length normalisation).
	DefaultB = 0.75
)

// Match pairs a document index with its relevance score.
type Match struct {
	Doc   int
	Score float64
}

// Index is a BM25 index over a single corpus. It is built at
// construction time, never mutated afterwards, and safe for concurrent
// reads.
type Index struct {
	k1 float64
	b  float64

	// termFrequencies[i][term] is the term frequency within document i.
	termFrequencies []map[string]int

	// lengths[i] is the token count of document i.
	lengths []int

	// avgLength is the mean token count across the corpus.
	avgLength float64

	// idf holds the inverse document frequency per distinct term.
	idf map[string]float64
}

// Option configures an Index.
type Option func(*Index)

// WithK1 sets the term-frequency saturation parameter. Non-positive
// values are ignored.
func WithK1(k1 float64) Option {
	return func(ix *Index) {
		if k1 > 0 {
			ix.k1 = k1
		}
	}
}

// WithB sets the length-normalisation parameter. Values outside [0, 1]
// are ignored.
func WithB(b float64) Option {
	return func(ix *Index) {
		if b >= 0 && b <= 1 {
			ix.b = b
		}
	}
}

// New builds an index over the given documents. Construction is
// O(total tokens): each document is tokenized once and its term
// statistics recorded.
func New(docs []string, opts ...Option) *Index {
	ix := &Index{
		k1:              DefaultK1,
		b:               DefaultB,
		termFrequencies: make([]map[string]int, len(docs)),
		lengths:         make([]int, len(docs)),
		idf:             make(map[string]float64),
	}
	for _, opt := range opts {
		opt(ix)
	}

	docFrequency := make(map[string]int)

	var totalLength int
	for i, doc := range docs {
		tokens := Tokenize(doc)
		ix.lengths[i] = len(tokens)
		totalLength += len(tokens)

		tf := make(map[string]int, len(tokens))
		for _, token := range tokens {
			if tf[token] == 0 {
				docFrequency[token]++
			}
			tf[token]++
		}
		ix.termFrequencies[i] = tf
	}

	if len(docs) > 0 {
		ix.avgLength = float64(totalLength) / float64(len(docs))
	}

	// ln((N - df + 0.5)/(df + 0.5) + 1) stays non-negative even for
	// terms that appear in every document.
	n := float64(len(docs))
	for term, df := range docFrequency {
		ix.idf[term] = math.Log((n-float64(df)+0.5)/(float64(df)+0.5) + 1)
	}

	return ix
}

// Len returns the number of documents in the corpus.
func (ix *Index) Len() int {
	return len(ix.lengths)
}

// Score ranks every corpus document against the query. The result
// holds exactly one entry per document, ordered by descending score
// with ties broken by ascending document index. Zero-score documents
// are included; filtering is the caller's concern. An index built over
// an empty corpus scores every query to an empty result.
func (ix *Index) Score(query string) []Match {
	if ix.Len() == 0 {
		return nil
	}

	queryTokens := Tokenize(query)

	matches := make([]Match, ix.Len())
	for i := range matches {
		matches[i] = Match{Doc: i, Score: ix.scoreDoc(i, queryTokens)}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})
	return matches
}

// scoreDoc accumulates the BM25 term scores of the query tokens for a
// single document. Tokens outside the fitted vocabulary contribute
// nothing.
func (ix *Index) scoreDoc(doc int, queryTokens []string) float64 {
	tf := ix.termFrequencies[doc]
	length := float64(ix.lengths[doc])

	var score float64
	for _, token := range queryTokens {
		idf, ok := ix.idf[token]
		if !ok {
			continue
		}
		freq := float64(tf[token])
		if freq == 0 {
			continue
		}

		// idf * (tf*(k1+1)) / (tf + k1*(1 - b + b*dl/avgdl))
		numerator := freq * (ix.k1 + 1)
		denominator := freq + ix.k1*(1-ix.b+ix.b*length/ix.avgLength)
		score += idf * numerator / denominator
	}
	return score
}
