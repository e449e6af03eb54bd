// ABOUTME: MCP server setup for the habit tracking engine.
// ABOUTME: Wraps the MCP server with a shared Tracker instance.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/skosaka/tsumiage/internal/tracker"
)

// Server wraps the MCP server with tracker access.
type Server struct {
	mcpServer *mcp.Server
	trk       *tracker.Tracker
}

// NewServer creates a new MCP server backed by the given tracker.
func NewServer(trk *tracker.Tracker) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "tsumiage",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		trk:       trk,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
