// Command atelier is the design recommendation engine CLI.
package main

import (
	"fmt"
	"os"

	"github.com/atelier-labs/atelier-cli/internal/adapters/driven/config/file"
	"github.com/atelier-labs/atelier-cli/internal/adapters/driven/corpus"
	"github.com/atelier-labs/atelier-cli/internal/adapters/driven/storage/memory"
	"github.com/atelier-labs/atelier-cli/internal/adapters/driven/storage/sqlite"
	"github.com/atelier-labs/atelier-cli/internal/adapters/driving/cli"
	"github.com/atelier-labs/atelier-cli/internal/core/ports/driving"
	"github.com/atelier-labs/atelier-cli/internal/core/services"
	"github.com/atelier-labs/atelier-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Knowledge base: the embedded corpus loaded into in-memory stores.
	sets, err := corpus.Load()
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}

	store := memory.NewCollectionStore()
	for collection, docs := range sets {
		if err := store.Replace(collection, docs); err != nil {
			return fmt.Errorf("loading collection %s: %w", collection, err)
		}
	}
	rules := memory.NewRuleStore(corpus.Rules())

	// Settings round-trip through the TOML config file.
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	// The archive is optional: commands that need it report its
	// absence, everything else keeps working.
	var archive driving.ArchiveService
	archiveStore, err := sqlite.NewStore(settings.Archive.Dir)
	if err != nil {
		logger.Warn("archive unavailable: %v", err)
	} else {
		defer archiveStore.Close()
		archive = services.NewArchiveService(archiveStore.Archive())
	}

	search := services.NewSearchService(store, *settings)
	reasoning := services.NewReasoningService(rules)

	cli.Configure(cli.Services{
		Search:     search,
		Recommend:  services.NewRecommendService(search, reasoning),
		Collection: services.NewCollectionService(store, rules),
		Archive:    archive,
		Settings:   settingsService,
	})

	return cli.Execute()
}
