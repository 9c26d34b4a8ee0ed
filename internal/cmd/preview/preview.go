// Package preview parses preview command flags and runs the playground
// server.
package preview

import (
	"context"
	"flag"
	"fmt"

	platformcmd "github.com/iconforge/markdown-icons/internal/platform/cmd"
	"github.com/iconforge/markdown-icons/internal/services/preview"
)

// Config holds preview command configuration.
type Config struct {
	HTTPAddr    string   `env:"MARKDOWN_ICONS_PREVIEW_HTTP_ADDR" envDefault:"localhost:8090"`
	StoragePath string   `env:"MARKDOWN_ICONS_PREVIEW_STORAGE_PATH"`
	Sets        []string `env:"MARKDOWN_ICONS_SETS" envSeparator:","`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.StoragePath, "storage-path", cfg.StoragePath, "sqlite file for saved snippets (empty disables saving)")
	platformcmd.StringListVar(fs, &cfg.Sets, "set", "icon set slug to enable (repeatable)")
	if err := platformcmd.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the preview server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServicePreview, func(ctx context.Context) error {
		server, err := preview.NewServer(ctx, preview.Config{
			HTTPAddr:    cfg.HTTPAddr,
			StoragePath: cfg.StoragePath,
			Sets:        cfg.Sets,
		})
		if err != nil {
			return fmt.Errorf("build preview server: %w", err)
		}
		defer server.Close()
		return server.ListenAndServe(ctx)
	})
}
