package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_Short(t *testing.T) {
	assert.Equal(t, "Search a design collection", searchCmd.Short)
}

func TestSearchCmd_Long(t *testing.T) {
	assert.Contains(t, searchCmd.Long, "BM25")
	assert.Contains(t, searchCmd.Long, "style, color, pattern, product, typography")
}

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	_, err := executeCommand(t, "search")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchCmd_HasCollectionFlag(t *testing.T) {
	flag := searchCmd.Flags().Lookup("collection")
	require.NotNil(t, flag, "collection flag should exist")
	assert.Equal(t, "c", flag.Shorthand)
	assert.Equal(t, "style", flag.DefValue)
}

func TestSearchCmd_HasLimitFlag(t *testing.T) {
	flag := searchCmd.Flags().Lookup("limit")
	require.NotNil(t, flag, "limit flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestSearchCmd_ExecutesWithQuery(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := executeCommand(t, "search", "frosted glass panels")

	require.NoError(t, err)
	assert.Contains(t, out, "Results:")
	assert.Contains(t, out, "Glassmorphism")
}

func TestSearchCmd_CollectionFlag(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer func() { searchCollection = "style" }()

	out, err := executeCommand(t, "search", "--collection", "typography", "luxury serif editorial")

	require.NoError(t, err)
	assert.Contains(t, out, "Playfair Display")
}

func TestSearchCmd_UnknownCollection(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer func() { searchCollection = "style" }()

	_, err := executeCommand(t, "search", "--collection", "icons", "anything")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown collection "icons"`)
}

func TestSearchCmd_ScoresFlag(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer func() { searchScores = false }()

	out, err := executeCommand(t, "search", "--scores", "frosted glass")

	require.NoError(t, err)
	assert.Regexp(t, `\(\d+\.\d{4}\)`, out)
}

func TestSearchCmd_NoMatches(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := executeCommand(t, "search", "zzzqqqxxx")

	require.NoError(t, err)
	assert.Contains(t, out, "No results found.")
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer func() { searchJSON = false }()

	out, err := executeCommand(t, "search", "--json", "frosted glass")

	require.NoError(t, err)
	assert.Contains(t, out, `"collection"`)
	assert.Contains(t, out, `"score"`)
	assert.Contains(t, out, "Glassmorphism")
}

func TestSearchCmd_ServiceNotConfigured(t *testing.T) {
	oldService := searchService
	searchService = nil
	defer func() {
		searchService = oldService
	}()

	_, err := executeCommand(t, "search", "test")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "search service not configured")
}

func TestSearchCmd_ServiceError(t *testing.T) {
	oldService := searchService
	searchService = &mockSearchServiceError{}
	defer func() {
		searchService = oldService
	}()

	_, err := executeCommand(t, "search", "test")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "search failed")
}
