package services

import (
	"strings"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
)

// Weights for the second-pass priority scoring. Empirically tuned;
// kept stable so selection behaviour stays reproducible across
// releases.
const (
	selectWeightName     = 10
	selectWeightKeywords = 3
	selectWeightContent  = 1
)

// SelectBest picks the single best candidate from ranked results
// using ordered priority keywords. With no priorities the top BM25
// rank is trusted; with no results an empty record is returned.
//
// The first pass lets an earlier priority override a better rank: for
// each priority in order, the first result whose name matches it as a
// substring (either direction) wins outright. Only when no priority
// matches a name does the weighted second pass run, scoring every
// result over all priorities and falling back to the top rank when
// nothing scores.
func SelectBest(results []domain.SearchResult, priorities []string) domain.Document {
	if len(results) == 0 {
		return domain.Document{}
	}
	if len(priorities) == 0 {
		return results[0].Document
	}

	for _, priority := range priorities {
		p := strings.ToLower(strings.TrimSpace(priority))
		if p == "" {
			continue
		}
		for _, result := range results {
			name := strings.ToLower(result.Document.Get(domain.FieldName))
			if name == "" {
				continue
			}
			if strings.Contains(name, p) || strings.Contains(p, name) {
				return result.Document
			}
		}
	}

	bestIndex, bestScore := 0, 0
	for i, result := range results {
		name := strings.ToLower(result.Document.Get(domain.FieldName))
		keywords := strings.ToLower(result.Document.Get(domain.FieldKeywords))
		content := strings.ToLower(result.Document.JoinFields(domain.SchemaFor(result.Collection).Output))

		score := 0
		for _, priority := range priorities {
			p := strings.ToLower(strings.TrimSpace(priority))
			if p == "" {
				continue
			}
			if strings.Contains(name, p) {
				score += selectWeightName
			}
			if strings.Contains(keywords, p) {
				score += selectWeightKeywords
			}
			if strings.Contains(content, p) {
				score += selectWeightContent
			}
		}

		if score > bestScore {
			bestIndex, bestScore = i, score
		}
	}

	if bestScore == 0 {
		return results[0].Document
	}
	return results[bestIndex].Document
}
