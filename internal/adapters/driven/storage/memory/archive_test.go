package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
)

func sampleRecommendation(id string, createdAt time.Time) *domain.DesignRecommendation {
	return &domain.DesignRecommendation{
		ID:         id,
		Project:    "momentum",
		Query:      "fitness landing page",
		Category:   "Fitness / Wellness",
		Pattern:    domain.DefaultPatternChoice(),
		Style:      domain.DefaultStyleChoice(),
		Colors:     domain.DefaultPalette(),
		Typography: domain.DefaultTypographyChoice(),
		KeyEffects: "bold photography",
		Severity:   domain.SeverityHigh,
		CreatedAt:  createdAt,
	}
}

func TestNewRecommendationArchive(t *testing.T) {
	archive := NewRecommendationArchive()
	require.NotNil(t, archive)
	assert.NotNil(t, archive.records)
}

func TestRecommendationArchive_SaveAndGet(t *testing.T) {
	archive := NewRecommendationArchive()
	ctx := context.Background()

	rec := sampleRecommendation("rec-1", time.Now().UTC())
	require.NoError(t, archive.Save(ctx, rec))

	got, err := archive.Get(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, rec.Project, got.Project)
	assert.Equal(t, rec.Category, got.Category)
	assert.Equal(t, rec.Style.Name, got.Style.Name)
	assert.Equal(t, rec.Severity, got.Severity)
}

func TestRecommendationArchive_Save_Update(t *testing.T) {
	archive := NewRecommendationArchive()
	ctx := context.Background()

	rec := sampleRecommendation("rec-1", time.Now().UTC())
	require.NoError(t, archive.Save(ctx, rec))

	rec.Query = "updated query"
	require.NoError(t, archive.Save(ctx, rec))

	got, err := archive.Get(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, "updated query", got.Query)
}

func TestRecommendationArchive_Get_NotFound(t *testing.T) {
	archive := NewRecommendationArchive()

	got, err := archive.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRecommendationNotFound)
	assert.Nil(t, got)
}

func TestRecommendationArchive_List_NewestFirst(t *testing.T) {
	archive := NewRecommendationArchive()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, archive.Save(ctx, sampleRecommendation("rec-old", base)))
	require.NoError(t, archive.Save(ctx, sampleRecommendation("rec-new", base.Add(2*time.Hour))))
	require.NoError(t, archive.Save(ctx, sampleRecommendation("rec-mid", base.Add(time.Hour))))

	summaries, err := archive.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, "rec-new", summaries[0].ID)
	assert.Equal(t, "rec-mid", summaries[1].ID)
	assert.Equal(t, "rec-old", summaries[2].ID)
}

func TestRecommendationArchive_List_Limit(t *testing.T) {
	archive := NewRecommendationArchive()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, archive.Save(ctx, sampleRecommendation(id, base.Add(time.Duration(i)*time.Minute))))
	}

	summaries, err := archive.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "c", summaries[0].ID)
	assert.Equal(t, "b", summaries[1].ID)
}

func TestRecommendationArchive_List_Empty(t *testing.T) {
	archive := NewRecommendationArchive()

	summaries, err := archive.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestRecommendationArchive_Delete(t *testing.T) {
	archive := NewRecommendationArchive()
	ctx := context.Background()

	require.NoError(t, archive.Save(ctx, sampleRecommendation("rec-1", time.Now().UTC())))
	require.NoError(t, archive.Delete(ctx, "rec-1"))

	_, err := archive.Get(ctx, "rec-1")
	assert.ErrorIs(t, err, domain.ErrRecommendationNotFound)
}

func TestRecommendationArchive_Delete_NotFound(t *testing.T) {
	archive := NewRecommendationArchive()

	err := archive.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRecommendationNotFound)
}

func TestRecommendationArchive_Close(t *testing.T) {
	archive := NewRecommendationArchive()
	assert.NoError(t, archive.Close())
}
