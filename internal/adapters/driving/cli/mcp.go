package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/seamap/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so an AI assistant can search
initiatives and drive the map selection.

By default, the server communicates over stdio using JSON-RPC.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default)
  seamap mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  seamap mcp serve --port 8080

Assistant configuration:
  {
    "mcpServers": {
      "seamap": {
        "command": "/path/to/seamap",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

// newMCPServer loads the dataset onto a headless map and serves it.
func newMCPServer(cmd *cobra.Command) (*mcp.Server, func(), error) {
	s, err := requireServices()
	if err != nil {
		return nil, nil, err
	}
	sess, err := newSession(s, nil)
	if err != nil {
		return nil, nil, err
	}
	if _, err := sess.Dataset.Load(cmd.Context()); err != nil {
		sess.Close()
		return nil, nil, fmt.Errorf("loading dataset: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Dataset:      sess.Dataset,
		Sidebar:      sess.Sidebar,
		Interactions: sess.Interactions,
		Markers:      sess.Markers(),
		Map:          sess.canvas,
	})
	if err != nil {
		sess.Close()
		return nil, nil, err
	}
	return server, sess.Close, nil
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, closeSession, err := newMCPServer(cmd)
	if err != nil {
		return err
	}
	defer closeSession()

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
