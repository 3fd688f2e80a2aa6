package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived recommendations",
	Long:  `Lists recommendations saved to the archive, newest first.`,
	RunE:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show an archived recommendation",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete an archived recommendation",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryRm,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries (0 = all)")
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyRmCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if archiveService == nil {
		return errors.New("archive not configured")
	}

	summaries, err := archiveService.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list archive: %w", err)
	}

	if len(summaries) == 0 {
		cmd.Println("Archive is empty.")
		return nil
	}

	for _, s := range summaries {
		project := s.Project
		if project == "" {
			project = "-"
		}
		cmd.Printf("%s  %s  %-6s %-24s %-16s %q\n",
			s.ID, s.CreatedAt.Local().Format(time.DateTime), s.Severity, s.Category, project, s.Query)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if archiveService == nil {
		return errors.New("archive not configured")
	}

	rec, err := archiveService.Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrRecommendationNotFound) {
			return fmt.Errorf("no recommendation with ID %q", args[0])
		}
		return fmt.Errorf("failed to load recommendation: %w", err)
	}

	outputRecommendation(cmd, rec, false)
	return nil
}

func runHistoryRm(cmd *cobra.Command, args []string) error {
	if archiveService == nil {
		return errors.New("archive not configured")
	}

	if err := archiveService.Delete(cmd.Context(), args[0]); err != nil {
		if errors.Is(err, domain.ErrRecommendationNotFound) {
			return fmt.Errorf("no recommendation with ID %q", args[0])
		}
		return fmt.Errorf("failed to delete recommendation: %w", err)
	}

	cmd.Printf("Deleted %s\n", args[0])
	return nil
}
