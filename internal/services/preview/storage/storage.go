package storage

import (
	"context"
	"time"
)

// Snippet is a saved markdown document with icon references.
type Snippet struct {
	ID        string
	Title     string
	Source    string
	CreatedAt time.Time
}

// Store persists snippets. Implementations must be safe for concurrent use.
type Store interface {
	// PutSnippet inserts or replaces a snippet by ID.
	PutSnippet(ctx context.Context, snippet Snippet) error
	// GetSnippet loads a snippet by ID. A miss is not an error.
	GetSnippet(ctx context.Context, id string) (Snippet, bool, error)
	// ListSnippets returns up to limit snippets, newest first.
	ListSnippets(ctx context.Context, limit int) ([]Snippet, error)
	// Close releases underlying resources.
	Close() error
}
