package mcp

import (
	"github.com/atelier-labs/atelier-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides collection search.
	Search driving.SearchService

	// Recommend generates design recommendations.
	Recommend driving.RecommendService

	// Collections exposes the knowledge base for the resources.
	Collections driving.CollectionService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Recommend == nil {
		return ErrMissingRecommendService
	}
	// Collections is optional; the resources degrade to empty content.
	return nil
}
