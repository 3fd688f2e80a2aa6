package rank

import (
	"regexp"
	"strings"
)

// minTokenLength filters out tokens too short to carry relevance
// signal ("a", "of", "ui").
const minTokenLength = 3

// wordPattern matches runs of word characters on lowercased input.
var wordPattern = regexp.MustCompile(`[a-z0-9_]+`)

// Tokenize splits text into lowercase word tokens. Characters that are
// neither word characters nor whitespace act as separators, and tokens
// shorter than three characters are discarded. Numeric tokens are kept.
// No stemming or stopword removal is applied.
func Tokenize(text string) []string {
	matches := wordPattern.FindAllString(strings.ToLower(text), -1)

	// Filter short tokens in place.
	tokens := matches[:0]
	for _, match := range matches {
		if len(match) >= minTokenLength {
			tokens = append(tokens, match)
		}
	}
	return tokens
}
