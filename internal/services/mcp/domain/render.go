package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/iconforge/markdown-icons/internal/platform/timeouts"
	"github.com/iconforge/markdown-icons/internal/render"
)

// RenderMarkdownInput represents the MCP tool input for markdown rendering.
type RenderMarkdownInput struct {
	Markdown string   `json:"markdown" jsonschema:"markdown source to render"`
	Sets     []string `json:"sets,omitempty" jsonschema:"icon set slugs to enable; defaults to the generic set"`
}

// RenderMarkdownResult represents the MCP tool output for markdown rendering.
type RenderMarkdownResult struct {
	HTML string `json:"html" jsonschema:"rendered HTML fragment"`
}

// RenderMarkdownTool defines the MCP tool schema for markdown rendering.
func RenderMarkdownTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "render_markdown",
		Description: "Renders markdown with icon references to an HTML fragment",
	}
}

// RenderMarkdownHandler renders markdown through a pipeline built per call,
// so each invocation can pick its own icon sets.
func RenderMarkdownHandler() mcp.ToolHandlerFor[RenderMarkdownInput, RenderMarkdownResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RenderMarkdownInput) (*mcp.CallToolResult, RenderMarkdownResult, error) {
		if strings.TrimSpace(input.Markdown) == "" {
			return nil, RenderMarkdownResult{}, fmt.Errorf("markdown is required")
		}
		pipeline, err := render.NewPipeline(render.Options{Sets: input.Sets})
		if err != nil {
			return nil, RenderMarkdownResult{}, fmt.Errorf("build render pipeline: %w", err)
		}

		renderCtx, cancel := context.WithTimeout(ctx, timeouts.Render)
		defer cancel()
		html, err := pipeline.Render(renderCtx, []byte(input.Markdown))
		if err != nil {
			return nil, RenderMarkdownResult{}, fmt.Errorf("render markdown: %w", err)
		}
		return nil, RenderMarkdownResult{HTML: string(html)}, nil
	}
}
