package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/iconforge/markdown-icons/internal/platform/storage/sqlitemigrate"
	"github.com/iconforge/markdown-icons/internal/services/preview/storage"
	"github.com/iconforge/markdown-icons/internal/services/preview/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for preview snippets.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a snippet SQLite store.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutSnippet inserts or replaces a snippet by ID.
func (s *Store) PutSnippet(ctx context.Context, snippet storage.Snippet) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	snippet.ID = strings.TrimSpace(snippet.ID)
	if snippet.ID == "" {
		return fmt.Errorf("snippet id is required")
	}
	if strings.TrimSpace(snippet.Source) == "" {
		return fmt.Errorf("snippet source is required")
	}
	createdAt := snippet.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT OR REPLACE INTO snippets (id, title, source, created_at)
		 VALUES (?, ?, ?, ?)`,
		snippet.ID,
		strings.TrimSpace(snippet.Title),
		snippet.Source,
		timeToUnixMillis(createdAt),
	)
	if err != nil {
		return fmt.Errorf("put snippet: %w", err)
	}
	return nil
}

// GetSnippet loads a snippet by ID. A miss is not an error.
func (s *Store) GetSnippet(ctx context.Context, snippetID string) (storage.Snippet, bool, error) {
	if s == nil || s.sqlDB == nil {
		return storage.Snippet{}, false, fmt.Errorf("storage is not configured")
	}
	snippetID = strings.TrimSpace(snippetID)
	if snippetID == "" {
		return storage.Snippet{}, false, fmt.Errorf("snippet id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, title, source, created_at FROM snippets WHERE id = ?`,
		snippetID,
	)

	var snippet storage.Snippet
	var createdAt int64
	if err := row.Scan(&snippet.ID, &snippet.Title, &snippet.Source, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return storage.Snippet{}, false, nil
		}
		return storage.Snippet{}, false, fmt.Errorf("get snippet: %w", err)
	}
	snippet.CreatedAt = unixMillisToTime(createdAt)

	return snippet, true, nil
}

// ListSnippets returns up to limit snippets, newest first.
func (s *Store) ListSnippets(ctx context.Context, limit int) ([]storage.Snippet, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, title, source, created_at
		 FROM snippets
		 ORDER BY created_at DESC, id
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list snippets: %w", err)
	}
	defer rows.Close()

	var snippets []storage.Snippet
	for rows.Next() {
		var snippet storage.Snippet
		var createdAt int64
		if err := rows.Scan(&snippet.ID, &snippet.Title, &snippet.Source, &createdAt); err != nil {
			return nil, fmt.Errorf("scan snippet: %w", err)
		}
		snippet.CreatedAt = unixMillisToTime(createdAt)
		snippets = append(snippets, snippet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snippets: %w", err)
	}
	return snippets, nil
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

var _ storage.Store = (*Store)(nil)
