// Package tui provides the interactive terminal explorer for atelier.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/atelier-labs/atelier-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides ranked collection search.
	Search driving.SearchService

	// Recommend composes design recommendations.
	Recommend driving.RecommendService

	// Collections exposes the loaded knowledge base.
	Collections driving.CollectionService
}

// Validate ensures all required ports are set.
// Collections is optional; the tab bar degrades to bare names.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Recommend == nil {
		return ErrMissingRecommendService
	}
	return nil
}
