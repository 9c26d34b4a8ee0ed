// Package domain defines the MCP tool schemas and handlers for the
// markdown icon renderer.
package domain
