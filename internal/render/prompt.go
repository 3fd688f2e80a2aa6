package render

import (
	"fmt"
	"strings"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
)

// PromptBlock renders a recommendation as a plain-text block suitable
// for insertion into a generation prompt. The output is deterministic:
// the same recommendation always renders to the same bytes.
func PromptBlock(rec domain.DesignRecommendation) string {
	var b strings.Builder
	for i, ln := range lines(rec) {
		switch ln.kind {
		case lineHeader:
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(ln.label)
			b.WriteByte('\n')
		case lineField, lineSwatch:
			fmt.Fprintf(&b, "%s: %s\n", ln.label, ln.value)
		case lineLabel:
			fmt.Fprintf(&b, "%s:\n", ln.label)
		case lineRule:
			fmt.Fprintf(&b, "  %s: %s\n", ln.label, ln.value)
		}
	}
	return b.String()
}

// ResultBlock renders ranked search results as a numbered listing.
// Each hit shows its rank, the document's identity field and the
// remaining projected fields; withScores adds the BM25 score to four
// decimal places.
func ResultBlock(results []domain.SearchResult, withScores bool) string {
	var b strings.Builder
	for i, res := range results {
		if i > 0 {
			b.WriteByte('\n')
		}
		identity := res.Collection.IdentityField()
		if withScores {
			fmt.Fprintf(&b, "%d. %s (%.4f)\n", i+1, res.Document.Get(identity), res.Score)
		} else {
			fmt.Fprintf(&b, "%d. %s\n", i+1, res.Document.Get(identity))
		}
		for _, f := range domain.SchemaFor(res.Collection).Output {
			if f == identity {
				continue
			}
			if v := res.Document.Get(f); v != "" {
				fmt.Fprintf(&b, "   %s: %s\n", f, v)
			}
		}
	}
	return b.String()
}
