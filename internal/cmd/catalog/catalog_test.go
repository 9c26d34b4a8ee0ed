package catalog

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/iconforge/markdown-icons/internal/platform/icons"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTML {
		t.Error("HTML = true, want false by default")
	}
}

func TestRunPrintsMarkdown(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), Config{}, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if out.String() != icons.CatalogMarkdown() {
		t.Fatalf("output = %q, want catalog markdown", out.String())
	}
}

func TestRunPrintsHTML(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), Config{HTML: true}, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	html := out.String()
	if !strings.Contains(html, "<table>") {
		t.Errorf("output missing rendered table:\n%s", html)
	}
	for _, def := range icons.Catalog() {
		if !strings.Contains(html, def.Label) {
			t.Errorf("output missing set %q", def.Label)
		}
	}
}
