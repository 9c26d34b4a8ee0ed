package iconfonts

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// iconBody matches the reference body after the configured prefix: an icon
// name, an optional colon-led modifier list, an optional second colon-led
// user modifier list, and the terminating semicolon. Either modifier list
// may be empty even when its colon is present (&icon-x:; and &icon-x::red;
// are both valid).
const iconBody = `(?P<name>[a-zA-Z0-9-]+)` +
	`(?::(?P<mods>[a-zA-Z0-9-]+(?:,[a-zA-Z0-9-]+)*)?` +
	`(?::(?P<usermods>[a-zA-Z0-9-]+(?:,[a-zA-Z0-9-]+)*)?)?)?;`

type iconParser struct {
	prefix string
	base   string
	re     *regexp.Regexp
}

func newIconParser(prefix, base string) *iconParser {
	return &iconParser{
		prefix: prefix,
		base:   base,
		re:     regexp.MustCompile(`^&` + regexp.QuoteMeta(prefix) + iconBody),
	}
}

// Trigger implements parser.InlineParser.
func (p *iconParser) Trigger() []byte {
	return []byte{'&'}
}

// Parse implements parser.InlineParser. The reference is consumed atomically:
// either the whole &...; run matches and becomes an Icon node, or no input
// is consumed and the text is left for other parsers.
func (p *iconParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	match := p.re.FindSubmatch(line)
	if match == nil {
		return nil
	}

	node := &Icon{
		Name:   string(match[1]),
		Prefix: p.prefix,
		Base:   p.base,
	}
	if len(match[2]) > 0 {
		node.Mods = splitMods(string(match[2]))
	}
	if len(match[3]) > 0 {
		node.UserMods = splitMods(string(match[3]))
	}

	block.Advance(len(match[0]))
	return node
}

// splitMods splits a comma separated modifier list, dropping empty segments.
func splitMods(value string) []string {
	parts := strings.Split(value, ",")
	mods := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			mods = append(mods, part)
		}
	}
	return mods
}
