package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
	"github.com/atelier-labs/atelier-cli/internal/render"
)

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "List the design collections",
	Long:  `Lists the loaded design collections with their document counts.`,
	RunE:  runCollections,
}

var collectionsShowCmd = &cobra.Command{
	Use:   "show [collection]",
	Short: "Show a collection's documents",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionsShow,
}

func init() {
	collectionsCmd.AddCommand(collectionsShowCmd)
	rootCmd.AddCommand(collectionsCmd)
}

func runCollections(cmd *cobra.Command, _ []string) error {
	if collectionService == nil {
		return errors.New("collection service not configured")
	}

	infos, err := collectionService.Collections(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	cmd.Println("Collections:")
	cmd.Println()
	for _, info := range infos {
		cmd.Printf("  %-12s %3d documents  %s\n", info.Name, info.Count, info.Description)
	}
	return nil
}

func runCollectionsShow(cmd *cobra.Command, args []string) error {
	if collectionService == nil {
		return errors.New("collection service not configured")
	}

	collection := domain.Collection(args[0])
	docs, err := collectionService.Documents(cmd.Context(), collection)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownCollection) {
			return fmt.Errorf("unknown collection %q", args[0])
		}
		return fmt.Errorf("failed to load collection: %w", err)
	}

	// Present documents through the result renderer, without scores.
	results := make([]domain.SearchResult, len(docs))
	for i, doc := range docs {
		results[i] = domain.SearchResult{Collection: collection, Document: doc}
	}

	cmd.Printf("%s (%d documents)\n", collection, len(docs))
	cmd.Println()
	cmd.Print(render.ResultBlock(results, false))
	return nil
}
