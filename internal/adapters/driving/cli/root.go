// Package cli implements the atelier command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/atelier-labs/atelier-cli/internal/core/ports/driving"
	"github.com/atelier-labs/atelier-cli/internal/logger"
)

// Build-time variables, set via -ldflags.
var (
	version = "dev"
	commit  = "none"
)

// Services used by the commands. Wired by Configure before Execute;
// commands guard against the ones left nil.
var (
	searchService     driving.SearchService
	recommendService  driving.RecommendService
	collectionService driving.CollectionService
	archiveService    driving.ArchiveService
	settingsService   driving.SettingsService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "atelier",
	Short: "Design recommendation engine for landing pages",
	Long: `Atelier recommends landing-page designs for a product described in
plain language: a layout pattern, a visual style, a colour palette and
a font pairing, selected from curated collections by BM25 ranking and
category-specific reasoning rules.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

// Services bundles the driving ports the commands run against.
type Services struct {
	Search     driving.SearchService
	Recommend  driving.RecommendService
	Collection driving.CollectionService
	Archive    driving.ArchiveService
	Settings   driving.SettingsService
}

// Configure wires the services into the command tree. Must be called
// before Execute; services left nil disable their commands with a
// clear error instead of a panic.
func Configure(services Services) {
	searchService = services.Search
	recommendService = services.Recommend
	collectionService = services.Collection
	archiveService = services.Archive
	settingsService = services.Settings
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose debug output")
}
