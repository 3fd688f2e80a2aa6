package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/atelier-labs/atelier-cli/internal/core/domain"
	"github.com/atelier-labs/atelier-cli/internal/render"
)

// SearchCollectionInput is the input schema for the search tool.
type SearchCollectionInput struct {
	Collection string `json:"collection" jsonschema:"the collection to search: style, color, pattern, product or typography"`
	Query      string `json:"query" jsonschema:"the free-text query to rank documents against"`
	Limit      int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default: configured limit)"`
}

// SearchCollectionOutput is the output schema for the search tool.
type SearchCollectionOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	Name   string            `json:"name"`
	Score  float64           `json:"score"`
	Fields map[string]string `json:"fields"`
}

// GenerateInput is the input schema for the recommendation tool.
type GenerateInput struct {
	Query   string `json:"query" jsonschema:"the product or page described in plain language"`
	Project string `json:"project,omitempty" jsonschema:"optional project name stored with the recommendation"`
}

// GenerateOutput is the output schema for the recommendation tool.
type GenerateOutput struct {
	Recommendation domain.DesignRecommendation `json:"recommendation"`
	Prompt         string                      `json:"prompt"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_collection",
		Description: "Search one design collection with BM25 ranking",
	}, s.handleSearchCollection)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_design_recommendation",
		Description: "Generate a complete design recommendation (layout, style, colors, typography) for a product query",
	}, s.handleGenerate)
}

// handleSearchCollection handles the search tool invocation.
func (s *Server) handleSearchCollection(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchCollectionInput,
) (*mcp.CallToolResult, SearchCollectionOutput, error) {
	collection := domain.Collection(input.Collection)
	if !collection.IsValid() {
		return nil, SearchCollectionOutput{}, fmt.Errorf("unknown collection %q", input.Collection)
	}

	results, err := s.ports.Search.Search(ctx, collection, input.Query, input.Limit)
	if err != nil {
		return nil, SearchCollectionOutput{}, err
	}

	output := SearchCollectionOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	identity := collection.IdentityField()
	for i := range results {
		fields := make(map[string]string, len(results[i].Document))
		for field, value := range results[i].Document {
			fields[string(field)] = value
		}
		output.Results[i] = SearchResultOutput{
			Name:   results[i].Document.Get(identity),
			Score:  results[i].Score,
			Fields: fields,
		}
	}

	return nil, output, nil
}

// handleGenerate handles the recommendation tool invocation.
func (s *Server) handleGenerate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateInput,
) (*mcp.CallToolResult, GenerateOutput, error) {
	rec, err := s.ports.Recommend.Generate(ctx, input.Query, input.Project)
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	return nil, GenerateOutput{
		Recommendation: *rec,
		Prompt:         render.PromptBlock(*rec),
	}, nil
}
