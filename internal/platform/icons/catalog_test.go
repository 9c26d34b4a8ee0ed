package icons

import (
	"strings"
	"testing"
)

func TestCatalogDefinitionsComplete(t *testing.T) {
	defs := Catalog()
	if len(defs) == 0 {
		t.Fatal("expected catalog to include icon set definitions")
	}

	seen := make(map[string]struct{})
	for _, def := range defs {
		if strings.TrimSpace(def.Slug) == "" {
			t.Error("icon set with empty slug in catalog")
		}
		if def.Slug != strings.ToLower(def.Slug) {
			t.Errorf("icon set slug %q is not lowercase", def.Slug)
		}
		if _, ok := seen[def.Slug]; ok {
			t.Errorf("duplicate icon set slug in catalog: %s", def.Slug)
		}
		seen[def.Slug] = struct{}{}
		if strings.TrimSpace(def.Label) == "" {
			t.Errorf("icon set %s missing label", def.Slug)
		}
		if strings.TrimSpace(def.Description) == "" {
			t.Errorf("icon set %s missing description", def.Slug)
		}
		if strings.TrimSpace(def.Example) == "" {
			t.Errorf("icon set %s missing example icon name", def.Slug)
		}
	}
}

func TestLookupNormalizesSlug(t *testing.T) {
	def, ok := Lookup("  FontAwesome ")
	if !ok {
		t.Fatal("expected fontawesome lookup to succeed")
	}
	if def.Prefix != "fa-" {
		t.Fatalf("Prefix = %q, want %q", def.Prefix, "fa-")
	}
	if def.Base != "fa" {
		t.Fatalf("Base = %q, want %q", def.Base, "fa")
	}
}

func TestLookupUnknownSlug(t *testing.T) {
	if _, ok := Lookup("octicons"); ok {
		t.Fatal("expected unknown slug lookup to fail")
	}
}

func TestDefaultIsGeneric(t *testing.T) {
	def := Default()
	if def.Slug != "generic" {
		t.Fatalf("Slug = %q, want %q", def.Slug, "generic")
	}
	if def.Prefix != "icon-" {
		t.Fatalf("Prefix = %q, want %q", def.Prefix, "icon-")
	}
	if def.Base != "" {
		t.Fatalf("Base = %q, want empty", def.Base)
	}
}

func TestReferenceFormatsEntity(t *testing.T) {
	def, ok := Lookup("glyphicon")
	if !ok {
		t.Fatal("expected glyphicon lookup to succeed")
	}
	got := Reference(def, "remove")
	want := "&glyphicon-remove;"
	if got != want {
		t.Fatalf("Reference = %q, want %q", got, want)
	}
}

func TestCatalogMarkdownIncludesAllSets(t *testing.T) {
	markdown := CatalogMarkdown()
	if strings.TrimSpace(markdown) == "" {
		t.Fatal("expected catalog markdown to be non-empty")
	}

	for _, def := range Catalog() {
		if !strings.Contains(markdown, "`"+def.Slug+"`") {
			t.Errorf("catalog markdown missing set slug %s", def.Slug)
		}
		if !strings.Contains(markdown, Reference(def, def.Example)) {
			t.Errorf("catalog markdown missing example reference for %s", def.Slug)
		}
	}
}
