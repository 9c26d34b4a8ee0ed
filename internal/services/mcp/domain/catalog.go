package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/iconforge/markdown-icons/internal/platform/icons"
)

// ListIconSetsInput represents the MCP tool input for icon set listing.
type ListIconSetsInput struct{}

// IconSetEntry represents one catalog icon set.
type IconSetEntry struct {
	Slug        string `json:"slug" jsonschema:"catalog slug used to enable the set"`
	Label       string `json:"label" jsonschema:"human readable name"`
	Prefix      string `json:"prefix" jsonschema:"class prefix icon references use"`
	Base        string `json:"base,omitempty" jsonschema:"base class added to every icon, if any"`
	Description string `json:"description" jsonschema:"what the set covers"`
	Example     string `json:"example" jsonschema:"an icon reference using the set"`
}

// ListIconSetsResult represents the MCP tool output for icon set listing.
type ListIconSetsResult struct {
	Sets []IconSetEntry `json:"sets" jsonschema:"catalog icon sets"`
}

// ListIconSetsTool defines the MCP tool schema for icon set listing.
func ListIconSetsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_icon_sets",
		Description: "Lists the icon sets the renderer knows about",
	}
}

// ListIconSetsHandler reports the built-in icon set catalog.
func ListIconSetsHandler() mcp.ToolHandlerFor[ListIconSetsInput, ListIconSetsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ListIconSetsInput) (*mcp.CallToolResult, ListIconSetsResult, error) {
		catalog := icons.Catalog()
		result := ListIconSetsResult{Sets: make([]IconSetEntry, 0, len(catalog))}
		for _, def := range catalog {
			result.Sets = append(result.Sets, IconSetEntry{
				Slug:        def.Slug,
				Label:       def.Label,
				Prefix:      def.Prefix,
				Base:        def.Base,
				Description: def.Description,
				Example:     icons.Reference(def, def.Example),
			})
		}
		return nil, result, nil
	}
}
