package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
	"github.com/atelier-labs/atelier-cli/internal/render"
)

var (
	recommendProject string
	recommendSave    bool
	recommendPlain   bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [query]",
	Short: "Generate a design recommendation",
	Long: `Generates a complete design recommendation for a product described
in plain language: layout pattern, visual style, colour palette and
font pairing, merged with category-specific guidance.

The query never fails on unknown products; unmatched parts fall back
to safe defaults.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVarP(&recommendProject, "project", "p", "", "project name stored with the recommendation")
	recommendCmd.Flags().BoolVar(&recommendSave, "save", false, "save the recommendation to the archive")
	recommendCmd.Flags().BoolVar(&recommendPlain, "plain", false, "force plain-text output")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	query := args[0]

	if recommendService == nil {
		return errors.New("recommend service not configured")
	}
	if recommendSave && archiveService == nil {
		return errors.New("archive not configured")
	}

	rec, err := recommendService.Generate(cmd.Context(), query, recommendProject)
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	if recommendSave {
		id, err := archiveService.Save(cmd.Context(), rec)
		if err != nil {
			return fmt.Errorf("failed to save recommendation: %w", err)
		}
		rec.ID = id
	}

	outputRecommendation(cmd, rec, recommendPlain)

	if recommendSave {
		cmd.Println()
		cmd.Printf("Saved as %s\n", rec.ID)
	}
	return nil
}

// outputRecommendation prints a recommendation, styled when stdout is
// an interactive terminal and plain output was not forced.
func outputRecommendation(cmd *cobra.Command, rec *domain.DesignRecommendation, plain bool) {
	if !plain && term.IsTerminal(int(os.Stdout.Fd())) {
		cmd.Print(render.Styled(*rec, nil))
		return
	}
	cmd.Print(render.PromptBlock(*rec))
}
