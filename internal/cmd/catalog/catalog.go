// Package catalog parses catalog command flags and prints the icon set
// reference.
package catalog

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	platformcmd "github.com/iconforge/markdown-icons/internal/platform/cmd"
	"github.com/iconforge/markdown-icons/internal/platform/icons"
	"github.com/iconforge/markdown-icons/internal/render"
)

// Config holds catalog command configuration.
type Config struct {
	HTML bool `env:"MARKDOWN_ICONS_CATALOG_HTML"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.BoolVar(&cfg.HTML, "html", cfg.HTML, "print rendered HTML instead of markdown")
	if err := platformcmd.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run prints the catalog to stdout.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceCatalog, func(ctx context.Context) error {
		return run(ctx, cfg, os.Stdout)
	})
}

func run(ctx context.Context, cfg Config, out io.Writer) error {
	source := icons.CatalogMarkdown()
	if !cfg.HTML {
		_, err := io.WriteString(out, source)
		return err
	}

	// Enable every catalog set so the example references render.
	sets := make([]string, 0, len(icons.Catalog()))
	for _, def := range icons.Catalog() {
		sets = append(sets, def.Slug)
	}
	pipeline, err := render.NewPipeline(render.Options{Sets: sets})
	if err != nil {
		return fmt.Errorf("build render pipeline: %w", err)
	}
	html, err := pipeline.Render(ctx, []byte(source))
	if err != nil {
		return err
	}
	_, err = out.Write(html)
	return err
}
