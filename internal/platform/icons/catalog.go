package icons

import "strings"

// Definition describes a well known icon set.
type Definition struct {
	Slug        string
	Label       string
	Prefix      string
	Base        string
	Description string
	Example     string
}

var catalog = []Definition{
	{
		Slug:        "generic",
		Label:       "Generic",
		Prefix:      "icon-",
		Base:        "",
		Description: "Entity-style references for any icon font that styles plain icon- classes.",
		Example:     "html5",
	},
	{
		Slug:        "fontawesome",
		Label:       "FontAwesome 4",
		Prefix:      "fa-",
		Base:        "fa",
		Description: "FontAwesome 4 icons with the fa base class.",
		Example:     "rocket",
	},
	{
		Slug:        "glyphicon",
		Label:       "Glyphicons",
		Prefix:      "glyphicon-",
		Base:        "glyphicon",
		Description: "Bootstrap 3 Glyphicons with the glyphicon base class.",
		Example:     "remove",
	},
}

// Catalog returns a copy of the icon set definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// Lookup returns the definition for a set slug. Slugs are matched
// case-insensitively with surrounding whitespace ignored.
func Lookup(slug string) (Definition, bool) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, def := range catalog {
		if def.Slug == slug {
			return def, true
		}
	}
	return Definition{}, false
}

// Default returns the set applied when no set is configured.
func Default() Definition {
	return catalog[0]
}

// Reference formats an example markdown reference for an icon in the set.
func Reference(def Definition, name string) string {
	return "&" + def.Prefix + name + ";"
}

// CatalogMarkdown renders the icon set catalog as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Sets\n\n")
	builder.WriteString("| Set | Prefix | Base | Example | Description |\n")
	builder.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, def := range catalog {
		builder.WriteString("| ")
		builder.WriteString(def.Label)
		builder.WriteString(" (`")
		builder.WriteString(def.Slug)
		builder.WriteString("`) | `")
		builder.WriteString(def.Prefix)
		builder.WriteString("` | ")
		if def.Base != "" {
			builder.WriteString("`")
			builder.WriteString(def.Base)
			builder.WriteString("`")
		} else {
			builder.WriteString("none")
		}
		builder.WriteString(" | `")
		builder.WriteString(Reference(def, def.Example))
		builder.WriteString("` | ")
		builder.WriteString(def.Description)
		builder.WriteString(" |\n")
	}
	return builder.String()
}
