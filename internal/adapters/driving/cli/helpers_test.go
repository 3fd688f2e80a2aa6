package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atelier-labs/atelier-cli/internal/adapters/driven/corpus"
	"github.com/atelier-labs/atelier-cli/internal/adapters/driven/storage/memory"
	"github.com/atelier-labs/atelier-cli/internal/core/domain"
	"github.com/atelier-labs/atelier-cli/internal/core/services"
)

// setupTestServices wires the commands to real services over the
// embedded corpus and in-memory stores. Returns a cleanup that
// restores the previous wiring.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	old := Services{
		Search:     searchService,
		Recommend:  recommendService,
		Collection: collectionService,
		Archive:    archiveService,
		Settings:   settingsService,
	}

	sets, err := corpus.Load()
	require.NoError(t, err)

	store := memory.NewCollectionStore()
	for collection, docs := range sets {
		require.NoError(t, store.Replace(collection, docs))
	}
	rules := memory.NewRuleStore(corpus.Rules())

	settings := domain.DefaultAppSettings()
	search := services.NewSearchService(store, settings)
	reasoning := services.NewReasoningService(rules)

	Configure(Services{
		Search:     search,
		Recommend:  services.NewRecommendService(search, reasoning),
		Collection: services.NewCollectionService(store, rules),
		Archive:    services.NewArchiveService(memory.NewRecommendationArchive()),
		Settings:   services.NewSettingsService(memory.NewConfigStore()),
	})

	return func() {
		Configure(old)
	}
}

// executeCommand runs the root command with the given args and
// returns the combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// mockSearchServiceError always fails, for error-path tests.
type mockSearchServiceError struct{}

func (m *mockSearchServiceError) Search(
	_ context.Context, _ domain.Collection, _ string, _ int,
) ([]domain.SearchResult, error) {
	return nil, errors.New("index unavailable")
}
