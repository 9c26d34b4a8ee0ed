package render

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfigFlags(t *testing.T) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{
		"-set", "fontawesome",
		"-prefix", "custom-",
		"-base", "custom",
		"-o", "out.html",
		"input.md",
	})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if len(cfg.Sets) != 1 || cfg.Sets[0] != "fontawesome" {
		t.Errorf("Sets = %v, want [fontawesome]", cfg.Sets)
	}
	if cfg.Prefix != "custom-" {
		t.Errorf("Prefix = %q, want %q", cfg.Prefix, "custom-")
	}
	if cfg.Base != "custom" {
		t.Errorf("Base = %q, want %q", cfg.Base, "custom")
	}
	if cfg.Output != "out.html" {
		t.Errorf("Output = %q, want %q", cfg.Output, "out.html")
	}
	if len(cfg.Inputs) != 1 || cfg.Inputs[0] != "input.md" {
		t.Errorf("Inputs = %v, want [input.md]", cfg.Inputs)
	}
}

func TestRunRendersStdin(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), Config{}, strings.NewReader("I love &icon-html5;"), &out)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	want := `<i aria-hidden="true" class="icon-html5"></i>`
	if !strings.Contains(out.String(), want) {
		t.Fatalf("output = %q, want substring %q", out.String(), want)
	}
}

func TestRunRendersFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.md")
	second := filepath.Join(dir, "second.md")
	if err := os.WriteFile(first, []byte("&icon-html5;"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("&icon-css3;"), 0o600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err := run(context.Background(), Config{Inputs: []string{first, second}}, strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	html := out.String()
	htmlIdx := strings.Index(html, "icon-html5")
	cssIdx := strings.Index(html, "icon-css3")
	if htmlIdx < 0 || cssIdx < 0 || htmlIdx > cssIdx {
		t.Fatalf("output order wrong:\n%s", html)
	}
}

func TestRunWritesOutputFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.html")
	err := run(context.Background(), Config{Output: target}, strings.NewReader("&icon-heart;"), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), `class="icon-heart"`) {
		t.Fatalf("output file = %q, want rendered icon", data)
	}
}

func TestRunCustomPair(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{Prefix: "custom-", Base: "custom"}
	err := run(context.Background(), cfg, strings.NewReader("&custom-heart;"), &out)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	want := `class="custom custom-heart"`
	if !strings.Contains(out.String(), want) {
		t.Fatalf("output = %q, want substring %q", out.String(), want)
	}
}

func TestRunUnknownSet(t *testing.T) {
	err := run(context.Background(), Config{Sets: []string{"no-such-set"}}, strings.NewReader("x"), &bytes.Buffer{})
	if err == nil {
		t.Fatal("run() error = nil, want unknown set error")
	}
}

func TestRunMissingInputFile(t *testing.T) {
	cfg := Config{Inputs: []string{filepath.Join(t.TempDir(), "missing.md")}}
	err := run(context.Background(), cfg, strings.NewReader(""), &bytes.Buffer{})
	if err == nil {
		t.Fatal("run() error = nil, want read error")
	}
}
