// Package iconfonts provides a goldmark extension that renders icon font
// references written with an HTML entity like syntax:
//
//	&icon-html5;
//	&icon-spinner:large,spin;
//	&icon-spinner:large,spin:red;
//
// Each reference becomes an <i> element whose class list is built from an
// optional base class, the prefixed icon name, prefixed modifiers, and
// unprefixed user modifiers. References that do not match the syntax are
// left untouched.
package iconfonts

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// DefaultPrefix is the class prefix used when none is configured.
const DefaultPrefix = "icon-"

type pair struct {
	prefix string
	base   string
}

type iconFonts struct {
	prefix string
	base   string
	pairs  []pair
}

// Option configures the icon fonts extension.
type Option func(*iconFonts)

// WithPrefix overrides the primary class prefix. An empty prefix matches
// bare &name; references.
func WithPrefix(prefix string) Option {
	return func(e *iconFonts) { e.prefix = prefix }
}

// WithBase adds a base class in front of every icon class matched under the
// primary prefix, such as "fa" for FontAwesome 4 or "glyphicon" for
// Bootstrap 3.
func WithBase(base string) Option {
	return func(e *iconFonts) { e.base = base }
}

// WithPrefixBase registers an additional prefix and base class pair so that
// several icon fonts can be mixed in one document.
func WithPrefixBase(prefix, base string) Option {
	return func(e *iconFonts) {
		e.pairs = append(e.pairs, pair{prefix: prefix, base: base})
	}
}

// New returns a goldmark extender configured by opts. Without options the
// extension matches &icon-NAME; references and emits no base class.
func New(opts ...Option) goldmark.Extender {
	e := &iconFonts{prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// IconFonts is the extension with default options.
var IconFonts = New()

// Extend implements goldmark.Extender.
func (e *iconFonts) Extend(m goldmark.Markdown) {
	inline := []util.PrioritizedValue{
		util.Prioritized(newIconParser(e.prefix, e.base), 150),
	}
	for _, p := range e.pairs {
		inline = append(inline, util.Prioritized(newIconParser(p.prefix, p.base), 150))
	}
	m.Parser().AddOptions(parser.WithInlineParsers(inline...))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&iconHTMLRenderer{}, 500),
	))
}
