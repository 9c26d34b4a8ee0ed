package iconfonts

import (
	"html"
	"strings"

	"github.com/yuin/goldmark/ast"
)

// Icon is an inline node representing a single icon reference.
type Icon struct {
	ast.BaseInline

	// Name is the icon name without its prefix.
	Name string
	// Prefix is the class prefix the reference was matched under.
	Prefix string
	// Base is the base class configured for the matched prefix, if any.
	Base string
	// Mods are modifier classes that render with the prefix applied.
	Mods []string
	// UserMods are modifier classes that render verbatim.
	UserMods []string
}

// KindIcon is the node kind of Icon.
var KindIcon = ast.NewNodeKind("Icon")

// Kind implements ast.Node.
func (n *Icon) Kind() ast.NodeKind { return KindIcon }

// Dump implements ast.Node.
func (n *Icon) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Name":     n.Name,
		"Prefix":   n.Prefix,
		"Base":     n.Base,
		"Mods":     strings.Join(n.Mods, ","),
		"UserMods": strings.Join(n.UserMods, ","),
	}, nil)
}

// Classes returns the CSS class list in rendering order: base class,
// prefixed name, prefixed mods, then user mods verbatim.
func (n *Icon) Classes() []string {
	classes := make([]string, 0, 2+len(n.Mods)+len(n.UserMods))
	if n.Base != "" {
		classes = append(classes, n.Base)
	}
	classes = append(classes, n.Prefix+n.Name)
	for _, mod := range n.Mods {
		classes = append(classes, n.Prefix+mod)
	}
	classes = append(classes, n.UserMods...)
	return classes
}

// HTML returns the rendered <i> element for the icon. The element is marked
// aria-hidden so text-to-speech browsers skip it.
func (n *Icon) HTML() string {
	var b strings.Builder
	b.WriteString(`<i aria-hidden="true" class="`)
	b.WriteString(html.EscapeString(strings.Join(n.Classes(), " ")))
	b.WriteString(`"></i>`)
	return b.String()
}
