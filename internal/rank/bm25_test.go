package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scoreOf returns the score recorded for a document index.
func scoreOf(t *testing.T, matches []Match, doc int) float64 {
	t.Helper()
	for _, m := range matches {
		if m.Doc == doc {
			return m.Score
		}
	}
	t.Fatalf("document %d not present in matches", doc)
	return 0
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "punctuation becomes separators",
			input: "Hello, World!",
			want:  []string{"hello", "world"},
		},
		{
			name:  "short fragments dropped",
			input: "e-commerce/retail",
			want:  []string{"commerce", "retail"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: " \t\n ",
			want:  nil,
		},
		{
			name:  "numeric tokens kept",
			input: "2024 design trends",
			want:  []string{"2024", "design", "trends"},
		},
		{
			name:  "all tokens too short",
			input: "a an of UI",
			want:  nil,
		},
		{
			name:  "underscore is a word character",
			input: "snake_case naming",
			want:  []string{"snake_case", "naming"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIndex_Score_EmptyCorpus(t *testing.T) {
	ix := New(nil)

	assert.Empty(t, ix.Score("anything"))
	assert.Zero(t, ix.Len())
}

func TestIndex_Score_CoversEveryDocumentOnce(t *testing.T) {
	docs := []string{
		"minimal flat design",
		"bold retro futurism",
		"organic hand drawn shapes",
		"swiss grid typography",
	}
	ix := New(docs)

	matches := ix.Score("design")
	require.Len(t, matches, len(docs))

	seen := make(map[int]bool)
	for _, m := range matches {
		assert.False(t, seen[m.Doc], "document %d ranked twice", m.Doc)
		seen[m.Doc] = true
	}
	assert.Len(t, seen, len(docs))
}

func TestIndex_Score_DisjointVocabularyScoresZero(t *testing.T) {
	ix := New([]string{"warm earthy palette", "cool ocean tones"})

	for _, m := range ix.Score("brutalist concrete") {
		assert.Zero(t, m.Score)
	}
}

func TestIndex_Score_EmptyQuery(t *testing.T) {
	ix := New([]string{"alpha beta", "gamma delta"})

	matches := ix.Score("")
	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.Zero(t, m.Score)
	}
}

func TestIndex_Score_TermFrequencyMonotonic(t *testing.T) {
	// Equal document lengths, differing term frequency for the query
	// term. The repeated term must never score lower.
	docs := []string{
		"coffee roast blend origin",
		"coffee coffee roast blend",
	}
	ix := New(docs)

	matches := ix.Score("coffee")
	assert.Greater(t, scoreOf(t, matches, 1), scoreOf(t, matches, 0))
}

func TestIndex_Score_LengthNormalisationDirection(t *testing.T) {
	// Corpus with lengths 2, 4 and 6 tokens; average is 4. The
	// 4-token document sits exactly at the average, so its score is
	// independent of b. The 6-token document is longer than average
	// and must lose score as b rises toward 1.
	docs := []string{
		"coffee roast",
		"coffee roast blend origin",
		"coffee roast blend origin brew grind",
	}

	low := New(docs, WithB(0.2)).Score("coffee")
	high := New(docs, WithB(0.9)).Score("coffee")

	assert.InDelta(t, scoreOf(t, low, 1), scoreOf(t, high, 1), 1e-12)
	assert.Less(t, scoreOf(t, high, 2), scoreOf(t, low, 2))
}

func TestIndex_Score_CommonTermKeepsPositiveIDF(t *testing.T) {
	// A term present in every document still contributes a positive
	// score under the smoothed IDF.
	docs := []string{"coffee shop", "coffee bar", "coffee cart"}
	ix := New(docs)

	for _, m := range ix.Score("coffee") {
		assert.Positive(t, m.Score)
	}
}

func TestIndex_Score_DashboardScenario(t *testing.T) {
	docs := []string{
		"red modern dashboard app",
		"minimalist blog theme",
		"dashboard analytics tool",
	}
	ix := New(docs)

	matches := ix.Score("dashboard")
	require.Len(t, matches, 3)

	assert.Positive(t, scoreOf(t, matches, 0))
	assert.Zero(t, scoreOf(t, matches, 1))
	assert.Positive(t, scoreOf(t, matches, 2))

	// The zero-score document sorts last.
	assert.Equal(t, 1, matches[2].Doc)
}

func TestIndex_Score_TiesKeepCorpusOrder(t *testing.T) {
	docs := []string{"alpha beta", "alpha beta"}
	ix := New(docs)

	matches := ix.Score("alpha")
	require.Len(t, matches, 2)
	assert.Equal(t, 0, matches[0].Doc)
	assert.Equal(t, 1, matches[1].Doc)
	assert.Equal(t, matches[0].Score, matches[1].Score)
}

func TestIndex_InvalidOptionsFallBackToDefaults(t *testing.T) {
	docs := []string{"coffee roast", "coffee roast blend origin brew grind"}

	plain := New(docs).Score("coffee")
	tweaked := New(docs, WithK1(-1), WithB(1.5)).Score("coffee")

	require.Len(t, tweaked, len(plain))
	for i := range plain {
		assert.Equal(t, plain[i].Doc, tweaked[i].Doc)
		assert.InDelta(t, plain[i].Score, tweaked[i].Score, 1e-12)
	}
}
