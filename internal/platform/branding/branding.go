// Package branding centralizes product naming so surfaces stay consistent.
package branding

// AppName is the user-facing product name.
const AppName = "Markdown Icons"

// Version is the release version reported by commands and the MCP server.
const Version = "4.0.0"
