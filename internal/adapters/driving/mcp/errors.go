// Package mcp provides an MCP (Model Context Protocol) server adapter
// for Atelier. It lets AI assistants search the design collections and
// generate design recommendations.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingRecommendService is returned when the recommend service is not provided.
var ErrMissingRecommendService = errors.New("mcp: recommend service is required")
