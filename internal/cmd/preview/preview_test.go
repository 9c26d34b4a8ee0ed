package preview

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8090" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8090")
	}
	if cfg.StoragePath != "" {
		t.Errorf("StoragePath = %q, want empty", cfg.StoragePath)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("MARKDOWN_ICONS_PREVIEW_HTTP_ADDR", "localhost:9999")
	t.Setenv("MARKDOWN_ICONS_SETS", "generic")

	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{
		"-http-addr", "127.0.0.1:8091",
		"-set", "fontawesome",
		"-set", "glyphicon",
	})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:8091" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:8091")
	}
	if len(cfg.Sets) != 2 || cfg.Sets[0] != "fontawesome" || cfg.Sets[1] != "glyphicon" {
		t.Errorf("Sets = %v, want [fontawesome glyphicon]", cfg.Sets)
	}
}

func TestParseConfigEnvDefaults(t *testing.T) {
	t.Setenv("MARKDOWN_ICONS_SETS", "fontawesome,glyphicon")

	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if len(cfg.Sets) != 2 || cfg.Sets[0] != "fontawesome" || cfg.Sets[1] != "glyphicon" {
		t.Errorf("Sets = %v, want [fontawesome glyphicon]", cfg.Sets)
	}
}
