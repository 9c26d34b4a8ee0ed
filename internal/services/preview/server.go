// Package preview hosts the local playground for trying icon markdown and
// sharing snippets.
package preview

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/iconforge/markdown-icons/internal/platform/icons"
	"github.com/iconforge/markdown-icons/internal/platform/timeouts"
	"github.com/iconforge/markdown-icons/internal/render"
	"github.com/iconforge/markdown-icons/internal/services/preview/storage"
	"github.com/iconforge/markdown-icons/internal/services/preview/storage/sqlite"
)

// Config defines the inputs for the preview server.
type Config struct {
	HTTPAddr    string
	StoragePath string
	Sets        []string
}

// Server hosts the preview HTTP server and optional snippet store.
type Server struct {
	httpAddr   string
	store      storage.Store
	httpServer *http.Server
}

// NewServer builds a configured preview server. Snippet persistence is
// enabled only when a storage path is set.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	pipeline, err := render.NewPipeline(render.Options{Sets: cfg.Sets})
	if err != nil {
		return nil, fmt.Errorf("build render pipeline: %w", err)
	}

	defs := make([]icons.Definition, 0, len(cfg.Sets))
	for _, slug := range cfg.Sets {
		// Slugs were validated by NewPipeline.
		if def, ok := icons.Lookup(slug); ok {
			defs = append(defs, def)
		}
	}

	var store storage.Store
	if strings.TrimSpace(cfg.StoragePath) != "" {
		sqliteStore, err := sqlite.Open(ctx, cfg.StoragePath)
		if err != nil {
			return nil, fmt.Errorf("open snippet store: %w", err)
		}
		store = sqliteStore
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           newHandler(pipeline, store, defs),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:   httpAddr,
		store:      store,
		httpServer: httpServer,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("preview server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("preview listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the snippet store held by the server.
func (s *Server) Close() {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		log.Printf("close snippet store: %v", err)
	}
}
