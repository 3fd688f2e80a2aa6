package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-labs/atelier-cli/internal/adapters/driven/storage/memory"
	"github.com/atelier-labs/atelier-cli/internal/core/domain"
)

func archivedRecommendation(id string) *domain.DesignRecommendation {
	return &domain.DesignRecommendation{
		ID:         id,
		Project:    "momentum",
		Query:      "fitness landing page",
		Category:   "Fitness / Wellness",
		Pattern:    domain.DefaultPatternChoice(),
		Style:      domain.DefaultStyleChoice(),
		Colors:     domain.DefaultPalette(),
		Typography: domain.DefaultTypographyChoice(),
		Severity:   domain.SeverityMedium,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestNewArchiveService(t *testing.T) {
	service := NewArchiveService(memory.NewRecommendationArchive())
	require.NotNil(t, service)
}

func TestArchiveService_Save_AssignsID(t *testing.T) {
	service := NewArchiveService(memory.NewRecommendationArchive())
	ctx := context.Background()

	rec := archivedRecommendation("")
	id, err := service.Save(ctx, rec)

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, rec.ID)

	got, err := service.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "momentum", got.Project)
}

func TestArchiveService_Save_KeepsExistingID(t *testing.T) {
	service := NewArchiveService(memory.NewRecommendationArchive())
	ctx := context.Background()

	id, err := service.Save(ctx, archivedRecommendation("rec-fixed"))

	require.NoError(t, err)
	assert.Equal(t, "rec-fixed", id)
}

func TestArchiveService_Save_Nil(t *testing.T) {
	service := NewArchiveService(memory.NewRecommendationArchive())

	id, err := service.Save(context.Background(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, id)
}

func TestArchiveService_Get_NotFound(t *testing.T) {
	service := NewArchiveService(memory.NewRecommendationArchive())

	got, err := service.Get(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRecommendationNotFound)
	assert.Nil(t, got)
}

func TestArchiveService_List(t *testing.T) {
	service := NewArchiveService(memory.NewRecommendationArchive())
	ctx := context.Background()

	for _, id := range []string{"rec-a", "rec-b", "rec-c"} {
		_, err := service.Save(ctx, archivedRecommendation(id))
		require.NoError(t, err)
	}

	summaries, err := service.List(ctx, 2)

	require.NoError(t, err)
	assert.Len(t, summaries, 2)
}

func TestArchiveService_List_Empty(t *testing.T) {
	service := NewArchiveService(memory.NewRecommendationArchive())

	summaries, err := service.List(context.Background(), 10)

	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestArchiveService_Delete(t *testing.T) {
	service := NewArchiveService(memory.NewRecommendationArchive())
	ctx := context.Background()

	_, err := service.Save(ctx, archivedRecommendation("rec-1"))
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, "rec-1"))

	_, err = service.Get(ctx, "rec-1")
	assert.ErrorIs(t, err, domain.ErrRecommendationNotFound)
}

func TestArchiveService_Delete_NotFound(t *testing.T) {
	service := NewArchiveService(memory.NewRecommendationArchive())

	err := service.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRecommendationNotFound)
}
