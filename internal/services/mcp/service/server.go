// Package service assembles and runs the MCP server that exposes the
// markdown icon renderer to agent clients.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/iconforge/markdown-icons/internal/platform/branding"
	"github.com/iconforge/markdown-icons/internal/services/mcp/domain"
)

// serverName identifies the MCP server implementation.
const serverName = "markdown-icons"

// NewServer builds the MCP server with the renderer tools registered.
func NewServer() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: branding.Version}, nil)
	registerTools(server)
	return server
}

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, domain.RenderMarkdownTool(), domain.RenderMarkdownHandler())
	mcp.AddTool(server, domain.ListIconSetsTool(), domain.ListIconSetsHandler())
	mcp.AddTool(server, domain.PreviewIconTool(), domain.PreviewIconHandler())
}

// Run serves the MCP server on stdio and blocks until it stops or the
// context ends.
func Run(ctx context.Context) error {
	return serveWithTransport(ctx, NewServer(), &mcp.StdioTransport{})
}

func serveWithTransport(ctx context.Context, server *mcp.Server, transport mcp.Transport) error {
	if server == nil {
		return errors.New("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := server.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
