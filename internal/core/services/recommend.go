package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
	"github.com/atelier-labs/atelier-cli/internal/core/ports/driving"
	"github.com/atelier-labs/atelier-cli/internal/logger"
)

// Ensure RecommendService implements the interface.
var _ driving.RecommendService = (*RecommendService)(nil)

// Per-collection result caps used by the composer. Style gets three
// candidates because the selection heuristic disambiguates them; the
// single-dimension collections trust their top rank.
const (
	styleResultCap      = 3
	colorResultCap      = 2
	patternResultCap    = 2
	typographyResultCap = 2
)

// fallbackCategory is used when no product matches the query.
const fallbackCategory = "General"

// maxQueryPriorities caps how many style priorities augment the style
// query.
const maxQueryPriorities = 2

// RecommendService composes design recommendations from collection
// searches and reasoning guidance.
type RecommendService struct {
	search    driving.SearchService
	reasoning driving.ReasoningService
}

// NewRecommendService creates a new recommendation composer.
func NewRecommendService(search driving.SearchService, reasoning driving.ReasoningService) *RecommendService {
	return &RecommendService{
		search:    search,
		reasoning: reasoning,
	}
}

// Generate builds a recommendation for a free-text query: the product
// collection resolves the category, the rule table turns the category
// into guidance, the guidance biases the collection searches, and the
// winners are merged over the documented defaults. Empty or missing
// collections degrade to those defaults; only infrastructure failures
// surface as errors.
func (s *RecommendService) Generate(
	ctx context.Context, query, project string,
) (*domain.DesignRecommendation, error) {
	logger.Section("Design Recommendation")
	logger.Debug("Query: %q, project: %q", query, project)

	category, err := s.resolveCategory(ctx, query)
	if err != nil {
		return nil, err
	}

	guidance := s.reasoning.Resolve(category)
	logger.Info("Category: %s (severity %s)", category, guidance.Severity)

	styleResults, err := s.search.Search(ctx, domain.CollectionStyle, styleQuery(query, guidance), styleResultCap)
	if err != nil {
		return nil, fmt.Errorf("style search: %w", err)
	}
	colorResults, err := s.search.Search(ctx, domain.CollectionColor, withHint(query, guidance.ColorMood), colorResultCap)
	if err != nil {
		return nil, fmt.Errorf("color search: %w", err)
	}
	patternResults, err := s.search.Search(ctx, domain.CollectionPattern, withHint(query, guidance.Pattern), patternResultCap)
	if err != nil {
		return nil, fmt.Errorf("pattern search: %w", err)
	}
	typographyResults, err := s.search.Search(ctx, domain.CollectionTypography, withHint(query, guidance.TypographyMood), typographyResultCap)
	if err != nil {
		return nil, fmt.Errorf("typography search: %w", err)
	}

	styleDoc := SelectBest(styleResults, guidance.StylePriorities)
	logger.Debug("Style pick: %q from %d candidates", styleDoc.Get(domain.FieldName), len(styleResults))

	rec := &domain.DesignRecommendation{
		ID:            uuid.NewString(),
		Project:       project,
		Query:         query,
		Category:      category,
		Pattern:       mergePattern(firstDocument(patternResults)),
		Style:         mergeStyle(styleDoc),
		Colors:        mergePalette(firstDocument(colorResults)),
		Typography:    mergeTypography(firstDocument(typographyResults)),
		AntiPatterns:  guidance.AntiPatterns,
		DecisionRules: guidance.DecisionRules,
		Severity:      guidance.Severity,
		CreatedAt:     time.Now().UTC(),
	}

	rec.KeyEffects = rec.Style.Effects
	if rec.KeyEffects == "" {
		rec.KeyEffects = guidance.KeyEffects
	}

	logger.Info("Recommendation %s: style=%s pattern=%s", rec.ID, rec.Style.Name, rec.Pattern.Name)
	return rec, nil
}

// resolveCategory maps the query onto a product category via the
// product collection, falling back to the generic category when
// nothing matches.
func (s *RecommendService) resolveCategory(ctx context.Context, query string) (string, error) {
	results, err := s.search.Search(ctx, domain.CollectionProduct, query, 1)
	if err != nil {
		return "", fmt.Errorf("resolve category: %w", err)
	}

	if len(results) == 0 || !results[0].Document.Has(domain.FieldCategory) {
		logger.Debug("No product match, falling back to %q", fallbackCategory)
		return fallbackCategory, nil
	}
	return results[0].Document.Get(domain.FieldCategory), nil
}

// styleQuery augments the raw query with up to two style priorities so
// the style search leans toward the guidance.
func styleQuery(query string, guidance domain.Guidance) string {
	if len(guidance.StylePriorities) == 0 {
		return query
	}

	n := len(guidance.StylePriorities)
	if n > maxQueryPriorities {
		n = maxQueryPriorities
	}
	return query + " " + strings.Join(guidance.StylePriorities[:n], " ")
}

// withHint appends a guidance hint to the query when present.
func withHint(query, hint string) string {
	if hint == "" {
		return query
	}
	return query + " " + hint
}

// firstDocument returns the top-ranked document, or an empty record.
func firstDocument(results []domain.SearchResult) domain.Document {
	if len(results) == 0 {
		return domain.Document{}
	}
	return results[0].Document
}

// mergePattern fills a layout choice from a document, defaulting
// missing fields.
func mergePattern(doc domain.Document) domain.PatternChoice {
	choice := domain.DefaultPatternChoice()
	if v := doc.Get(domain.FieldName); v != "" {
		choice.Name = v
	}
	if v := doc.Get(domain.FieldSections); v != "" {
		choice.Sections = v
	}
	if v := doc.Get(domain.FieldCTA); v != "" {
		choice.CTAPlacement = v
	}
	if v := doc.Get(domain.FieldColorStrategy); v != "" {
		choice.ColorStrategy = v
	}
	choice.ConversionNotes = doc.Get(domain.FieldConversion)
	return choice
}

// mergeStyle fills a style choice from a document, defaulting missing
// fields.
func mergeStyle(doc domain.Document) domain.StyleChoice {
	choice := domain.DefaultStyleChoice()
	if v := doc.Get(domain.FieldName); v != "" {
		choice.Name = v
	}
	if v := doc.Get(domain.FieldType); v != "" {
		choice.Type = v
	}
	choice.Effects = doc.Get(domain.FieldEffects)
	choice.Keywords = doc.Get(domain.FieldKeywords)
	choice.AudienceFit = doc.Get(domain.FieldAudience)
	choice.Performance = doc.Get(domain.FieldPerformance)
	choice.Accessibility = doc.Get(domain.FieldAccessibility)
	return choice
}

// mergePalette fills a palette from a document, defaulting the five
// semantic roles.
func mergePalette(doc domain.Document) domain.Palette {
	palette := domain.DefaultPalette()
	palette.Name = doc.Get(domain.FieldName)
	if v := doc.Get(domain.FieldPrimary); v != "" {
		palette.Primary = v
	}
	if v := doc.Get(domain.FieldSecondary); v != "" {
		palette.Secondary = v
	}
	if v := doc.Get(domain.FieldAccent); v != "" {
		palette.Accent = v
	}
	if v := doc.Get(domain.FieldBackground); v != "" {
		palette.Background = v
	}
	if v := doc.Get(domain.FieldText); v != "" {
		palette.Text = v
	}
	palette.Notes = doc.Get(domain.FieldNotes)
	return palette
}

// mergeTypography fills a font pairing from a document, defaulting the
// two families.
func mergeTypography(doc domain.Document) domain.TypographyChoice {
	choice := domain.DefaultTypographyChoice()
	if v := doc.Get(domain.FieldHeading); v != "" {
		choice.Heading = v
	}
	if v := doc.Get(domain.FieldBody); v != "" {
		choice.Body = v
	}
	choice.Mood = doc.Get(domain.FieldMood)
	choice.AudienceFit = doc.Get(domain.FieldAudience)
	choice.Loading = doc.Get(domain.FieldLoading)
	return choice
}
