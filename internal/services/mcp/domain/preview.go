package domain

import (
	"context"
	"fmt"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/iconforge/markdown-icons/iconfonts"
	"github.com/iconforge/markdown-icons/internal/platform/icons"
)

// classPattern matches the charset icon names and modifiers accept.
var classPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// PreviewIconInput represents the MCP tool input for single icon previews.
type PreviewIconInput struct {
	Name     string   `json:"name" jsonschema:"icon name without its class prefix"`
	Set      string   `json:"set,omitempty" jsonschema:"icon set slug; defaults to the generic set"`
	Mods     []string `json:"mods,omitempty" jsonschema:"modifiers that render with the set prefix applied"`
	UserMods []string `json:"user_mods,omitempty" jsonschema:"modifiers that render verbatim"`
}

// PreviewIconResult represents the MCP tool output for single icon previews.
type PreviewIconResult struct {
	HTML    string   `json:"html" jsonschema:"rendered <i> element"`
	Classes []string `json:"classes" jsonschema:"CSS classes in rendering order"`
}

// PreviewIconTool defines the MCP tool schema for single icon previews.
func PreviewIconTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "preview_icon",
		Description: "Builds the HTML element for a single icon reference",
	}
}

// PreviewIconHandler resolves the requested set and builds one icon element.
func PreviewIconHandler() mcp.ToolHandlerFor[PreviewIconInput, PreviewIconResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PreviewIconInput) (*mcp.CallToolResult, PreviewIconResult, error) {
		if !classPattern.MatchString(input.Name) {
			return nil, PreviewIconResult{}, fmt.Errorf("icon name %q must match %s", input.Name, classPattern)
		}
		for _, mod := range input.Mods {
			if !classPattern.MatchString(mod) {
				return nil, PreviewIconResult{}, fmt.Errorf("mod %q must match %s", mod, classPattern)
			}
		}
		for _, mod := range input.UserMods {
			if !classPattern.MatchString(mod) {
				return nil, PreviewIconResult{}, fmt.Errorf("user mod %q must match %s", mod, classPattern)
			}
		}

		def := icons.Default()
		if input.Set != "" {
			resolved, ok := icons.Lookup(input.Set)
			if !ok {
				return nil, PreviewIconResult{}, fmt.Errorf("unknown icon set %q", input.Set)
			}
			def = resolved
		}

		icon := &iconfonts.Icon{
			Name:     input.Name,
			Prefix:   def.Prefix,
			Base:     def.Base,
			Mods:     input.Mods,
			UserMods: input.UserMods,
		}
		return nil, PreviewIconResult{
			HTML:    icon.HTML(),
			Classes: icon.Classes(),
		}, nil
	}
}
