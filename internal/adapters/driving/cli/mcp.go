package cli

import (
	"github.com/spf13/cobra"

	"github.com/atelier-labs/atelier-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server communicates over stdio using JSON-RPC and can be used with
Claude Desktop and other MCP-compatible AI assistants. It exposes
collection search and recommendation generation as tools, and the
collections and rule table as resources.

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "atelier": {
        "command": "/path/to/atelier",
        "args": ["mcp"]
      }
    }
  }`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	ports := &mcp.Ports{
		Search:      searchService,
		Recommend:   recommendService,
		Collections: collectionService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	return server.Run(cmd.Context())
}
