package iconfonts

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

type iconHTMLRenderer struct{}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *iconHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindIcon, r.renderIcon)
}

func (r *iconHTMLRenderer) renderIcon(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString(node.(*Icon).HTML())
	return ast.WalkSkipChildren, nil
}
