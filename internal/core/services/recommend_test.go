package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
)

// newTestRecommendService wires a composer over fixture collections
// and rules, using the real search and reasoning services.
func newTestRecommendService(
	t *testing.T,
	docs map[domain.Collection][]domain.Document,
	rules []domain.ReasoningRule,
) *RecommendService {
	t.Helper()

	search := NewSearchService(&mockCollectionStore{docs: docs}, domain.DefaultAppSettings())
	reasoning := NewReasoningService(&mockRuleStore{rules: rules})
	return NewRecommendService(search, reasoning)
}

// designFixture returns a populated set of collections for composer
// tests.
func designFixture() map[domain.Collection][]domain.Document {
	return map[domain.Collection][]domain.Document{
		domain.CollectionStyle: {
			{
				domain.FieldName:        "Minimalism",
				domain.FieldType:        "minimal",
				domain.FieldKeywords:    "clean, simple, whitespace",
				domain.FieldDescription: "Reduction to essentials",
				domain.FieldEffects:     "generous whitespace, thin rules",
			},
			{
				domain.FieldName:        "Brutalism",
				domain.FieldType:        "decorative",
				domain.FieldKeywords:    "raw, bold, concrete",
				domain.FieldDescription: "Raw blocks and stark contrast for fitness brands",
			},
		},
		domain.CollectionColor: {
			{
				domain.FieldName:       "Charged Citrus",
				domain.FieldPrimary:    "#EA580C",
				domain.FieldSecondary:  "#9A3412",
				domain.FieldAccent:     "#FACC15",
				domain.FieldBackground: "#FFFBEB",
				domain.FieldText:       "#1C1917",
				domain.FieldMood:       "Energetic",
				domain.FieldKeywords:   "fitness, energy, vibrant",
			},
		},
		domain.CollectionPattern: {
			{
				domain.FieldName:       "Product Showcase",
				domain.FieldSections:   "hero, gallery, specs, cta",
				domain.FieldCTA:        "sticky header and after gallery",
				domain.FieldKeywords:   "showcase, gallery, product",
				domain.FieldAudience:   "fitness and product brands",
				domain.FieldConversion: "let the product photography sell",
			},
		},
		domain.CollectionProduct: {
			{
				domain.FieldCategory:    "Fitness / Wellness",
				domain.FieldKeywords:    "fitness, gym, workout, wellness",
				domain.FieldDescription: "training apps and wellness platforms",
			},
		},
		domain.CollectionTypography: {
			{
				domain.FieldHeading:  "Archivo Black",
				domain.FieldBody:     "Work Sans",
				domain.FieldMood:     "Modern",
				domain.FieldKeywords: "bold, modern, strong",
				domain.FieldAudience: "sports and fitness brands",
				domain.FieldLoading:  "google-fonts, display=swap",
			},
		},
	}
}

func TestRecommendService_Generate_EmptyCollections(t *testing.T) {
	docs := map[domain.Collection][]domain.Document{
		domain.CollectionStyle:      {},
		domain.CollectionColor:      {},
		domain.CollectionPattern:    {},
		domain.CollectionProduct:    {},
		domain.CollectionTypography: {},
	}
	svc := newTestRecommendService(t, docs, nil)

	rec, err := svc.Generate(context.Background(), "fitness app", "FitCo")

	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "FitCo", rec.Project)
	assert.Equal(t, "fitness app", rec.Query)
	assert.Equal(t, "General", rec.Category)
	assert.False(t, rec.CreatedAt.IsZero())

	// Everything degrades to the documented defaults.
	assert.Equal(t, "#2563EB", rec.Colors.Primary)
	assert.Equal(t, "Minimalism", rec.Style.Name)
	assert.Equal(t, "Hero + Features + CTA", rec.Pattern.Name)
	assert.Equal(t, "Inter", rec.Typography.Heading)
	assert.Equal(t, domain.SeverityMedium, rec.Severity)
}

func TestRecommendService_Generate_MissingCollections(t *testing.T) {
	// No collections at all behaves like empty ones.
	svc := newTestRecommendService(t, map[domain.Collection][]domain.Document{}, nil)

	rec, err := svc.Generate(context.Background(), "fitness app", "FitCo")

	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "General", rec.Category)
	assert.Equal(t, "#2563EB", rec.Colors.Primary)
}

func TestRecommendService_Generate_ResolvesCategoryThroughRule(t *testing.T) {
	rules := []domain.ReasoningRule{
		{
			Category:       "Fitness / Wellness",
			Pattern:        "Product Showcase",
			StylePriority:  "Brutalism + Minimalism",
			ColorMood:      "Energetic",
			TypographyMood: "Modern",
			KeyEffects:     "bold photography",
			AntiPatterns:   "pastel gradients",
			DecisionRules:  `{"hero": "full-bleed action shot"}`,
			Severity:       domain.SeverityHigh,
		},
	}
	svc := newTestRecommendService(t, designFixture(), rules)

	rec, err := svc.Generate(context.Background(), "fitness app", "FitCo")

	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, "Fitness / Wellness", rec.Category)
	assert.Equal(t, domain.SeverityHigh, rec.Severity)
	assert.Equal(t, "pastel gradients", rec.AntiPatterns)
	assert.Equal(t, "full-bleed action shot", rec.DecisionRules["hero"])

	// The rule's first priority steers selection away from the raw
	// BM25 favourite.
	assert.Equal(t, "Brutalism", rec.Style.Name)
}

func TestRecommendService_Generate_MergesCollectionChoices(t *testing.T) {
	svc := newTestRecommendService(t, designFixture(), nil)

	rec, err := svc.Generate(context.Background(), "fitness app", "FitCo")

	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, "Charged Citrus", rec.Colors.Name)
	assert.Equal(t, "#EA580C", rec.Colors.Primary)
	assert.Equal(t, "#1C1917", rec.Colors.Text)

	assert.Equal(t, "Product Showcase", rec.Pattern.Name)
	assert.Equal(t, "hero, gallery, specs, cta", rec.Pattern.Sections)
	assert.Equal(t, "let the product photography sell", rec.Pattern.ConversionNotes)

	assert.Equal(t, "Archivo Black", rec.Typography.Heading)
	assert.Equal(t, "Work Sans", rec.Typography.Body)
	assert.Equal(t, "google-fonts, display=swap", rec.Typography.Loading)
}

func TestRecommendService_Generate_EffectsPreferStyleOverRule(t *testing.T) {
	rules := []domain.ReasoningRule{
		{
			Category:      "Fitness / Wellness",
			StylePriority: "Minimalism",
			KeyEffects:    "bold photography",
			Severity:      domain.SeverityMedium,
		},
	}
	svc := newTestRecommendService(t, designFixture(), rules)

	rec, err := svc.Generate(context.Background(), "fitness app", "FitCo")

	require.NoError(t, err)

	// Minimalism carries its own effects text, which wins over the
	// rule's key effects.
	assert.Equal(t, "Minimalism", rec.Style.Name)
	assert.Equal(t, "generous whitespace, thin rules", rec.KeyEffects)
}

func TestRecommendService_Generate_EffectsFallBackToRule(t *testing.T) {
	rules := []domain.ReasoningRule{
		{
			Category:      "Fitness / Wellness",
			StylePriority: "Brutalism",
			KeyEffects:    "bold photography",
			Severity:      domain.SeverityMedium,
		},
	}
	svc := newTestRecommendService(t, designFixture(), rules)

	rec, err := svc.Generate(context.Background(), "fitness app", "FitCo")

	require.NoError(t, err)

	// Brutalism has no effects field; the rule's key effects fill in.
	assert.Equal(t, "Brutalism", rec.Style.Name)
	assert.Equal(t, "bold photography", rec.KeyEffects)
}
