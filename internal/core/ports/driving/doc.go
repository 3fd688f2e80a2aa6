// Package driving defines the interfaces through which external actors
// drive the application core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement them; the CLI, MCP server and TUI adapters
// call them.
//
// # Interfaces
//
//   - SearchService: ranked search over one collection
//   - ReasoningService: category -> guidance resolution
//   - RecommendService: full design recommendation generation
//   - CollectionService: knowledge-base browsing
//   - ArchiveService: stored recommendation management
//   - SettingsService: application settings management
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or service package
package driving
