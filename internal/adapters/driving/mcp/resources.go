package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for Atelier resources.
	uriScheme = "atelier://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing collections.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "collections",
		Name:        "collections",
		Description: "The design collections with document counts",
		MIMEType:    "application/json",
	}, s.handleCollectionsResource)

	// Template for a collection's documents.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "collections/{collection}",
		Name:        "collection-documents",
		Description: "Documents of one design collection, projected onto its output fields",
		MIMEType:    "application/json",
	}, s.handleCollectionDocumentsResource)

	// Static resource for the reasoning rule table.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "rules",
		Name:        "rules",
		Description: "The category reasoning rules behind recommendations",
		MIMEType:    "application/json",
	}, s.handleRulesResource)
}

// handleCollectionsResource returns the collection listing.
func (s *Server) handleCollectionsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Collections == nil {
		return emptyJSONResource(req.Params.URI), nil
	}

	infos, err := s.ports.Collections.Collections(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling collections: %w", err)
	}

	return jsonResource(req.Params.URI, data), nil
}

// handleCollectionDocumentsResource returns the documents of one collection.
func (s *Server) handleCollectionDocumentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Collections == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract the collection from URI: atelier://collections/{collection}
	name := extractCollection(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	docs, err := s.ports.Collections.Documents(ctx, domain.Collection(name))
	if err != nil {
		if errors.Is(err, domain.ErrUnknownCollection) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	records := make([]map[string]string, len(docs))
	for i, doc := range docs {
		record := make(map[string]string, len(doc))
		for field, value := range doc {
			record[string(field)] = value
		}
		records[i] = record
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling documents: %w", err)
	}

	return jsonResource(req.Params.URI, data), nil
}

// handleRulesResource returns the reasoning rule table.
func (s *Server) handleRulesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Collections == nil {
		return emptyJSONResource(req.Params.URI), nil
	}

	rules, err := s.ports.Collections.Rules(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing rules: %w", err)
	}

	data, err := json.MarshalIndent(rules, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling rules: %w", err)
	}

	return jsonResource(req.Params.URI, data), nil
}

// extractCollection extracts the collection name from a URI like
// atelier://collections/{collection}.
func extractCollection(uri string) string {
	const prefix = uriScheme + "collections/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	name := strings.TrimPrefix(uri, prefix)
	if strings.Contains(name, "/") {
		return ""
	}
	return name
}

func jsonResource(uri string, data []byte) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}
}

func emptyJSONResource(uri string) *mcp.ReadResourceResult {
	return jsonResource(uri, []byte("[]"))
}
