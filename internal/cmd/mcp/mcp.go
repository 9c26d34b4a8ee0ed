// Package mcp parses MCP command flags and runs the stdio MCP server.
package mcp

import (
	"context"
	"flag"

	platformcmd "github.com/iconforge/markdown-icons/internal/platform/cmd"
	"github.com/iconforge/markdown-icons/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct{}

// ParseConfig parses flags into a Config. The command takes no options
// yet; parsing still honors -h.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return Config{}, nil
}

// Run starts the MCP server on stdio.
func Run(ctx context.Context, _ Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceMCP, service.Run)
}
