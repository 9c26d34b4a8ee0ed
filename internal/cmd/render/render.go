// Package render parses render command flags and converts markdown files
// to HTML.
package render

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	platformcmd "github.com/iconforge/markdown-icons/internal/platform/cmd"
	"github.com/iconforge/markdown-icons/internal/render"
)

// Config holds render command configuration.
type Config struct {
	Sets   []string `env:"MARKDOWN_ICONS_SETS" envSeparator:","`
	Prefix string   `env:"MARKDOWN_ICONS_PREFIX"`
	Base   string   `env:"MARKDOWN_ICONS_BASE"`
	Output string   `env:"MARKDOWN_ICONS_OUTPUT"`

	// Inputs are the positional markdown files. Empty means stdin.
	Inputs []string
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	platformcmd.StringListVar(fs, &cfg.Sets, "set", "icon set slug to enable (repeatable)")
	fs.StringVar(&cfg.Prefix, "prefix", cfg.Prefix, "extra icon class prefix to recognize")
	fs.StringVar(&cfg.Base, "base", cfg.Base, "base class paired with -prefix")
	fs.StringVar(&cfg.Output, "o", cfg.Output, "output file (default stdout)")
	if err := platformcmd.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	cfg.Inputs = fs.Args()
	return cfg, nil
}

// Run renders the configured inputs and writes HTML to the output.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceRender, func(ctx context.Context) error {
		return run(ctx, cfg, os.Stdin, os.Stdout)
	})
}

func run(ctx context.Context, cfg Config, stdin io.Reader, stdout io.Writer) error {
	opts := render.Options{Sets: cfg.Sets}
	if cfg.Prefix != "" || cfg.Base != "" {
		opts.Pairs = []render.Pair{{Prefix: cfg.Prefix, Base: cfg.Base}}
	}
	pipeline, err := render.NewPipeline(opts)
	if err != nil {
		return fmt.Errorf("build render pipeline: %w", err)
	}

	source, err := readInputs(cfg.Inputs, stdin)
	if err != nil {
		return err
	}
	html, err := pipeline.Render(ctx, source)
	if err != nil {
		return err
	}

	out := stdout
	if cfg.Output != "" {
		file, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer file.Close()
		out = file
	}
	if _, err := out.Write(html); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// readInputs concatenates the markdown sources. "-" selects stdin.
func readInputs(inputs []string, stdin io.Reader) ([]byte, error) {
	if len(inputs) == 0 {
		source, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return source, nil
	}

	var b strings.Builder
	for i, input := range inputs {
		var source []byte
		var err error
		if input == "-" {
			source, err = io.ReadAll(stdin)
		} else {
			source, err = os.ReadFile(input)
		}
		if err != nil {
			return nil, fmt.Errorf("read input %s: %w", input, err)
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.Write(source)
	}
	return []byte(b.String()), nil
}
