package cmd

import (
	"flag"
	"testing"
)

func TestStringListVarAppendsRepeats(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var sets []string
	StringListVar(fs, &sets, "set", "icon set")

	if err := fs.Parse([]string{"-set", "fontawesome", "-set", "glyphicon"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(sets) != 2 || sets[0] != "fontawesome" || sets[1] != "glyphicon" {
		t.Fatalf("sets = %v, want [fontawesome glyphicon]", sets)
	}
}

func TestStringListVarReplacesDefaults(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	sets := []string{"generic"}
	StringListVar(fs, &sets, "set", "icon set")

	if err := fs.Parse([]string{"-set", "fontawesome"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(sets) != 1 || sets[0] != "fontawesome" {
		t.Fatalf("sets = %v, want [fontawesome]", sets)
	}
}

func TestStringListVarKeepsDefaultsWithoutFlag(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	sets := []string{"generic"}
	StringListVar(fs, &sets, "set", "icon set")

	if err := fs.Parse(nil); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(sets) != 1 || sets[0] != "generic" {
		t.Fatalf("sets = %v, want [generic]", sets)
	}
}
