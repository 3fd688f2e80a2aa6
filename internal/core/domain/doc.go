// Package domain defines the core business entities for Atelier.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: one record of a design collection (field -> value)
//   - Collection: a named corpus of documents with a search/output schema
//   - ReasoningRule: hand-authored category -> design guidance mapping
//   - DesignRecommendation: the composed output for one query
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
