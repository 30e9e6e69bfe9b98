// internal/builder/goldmark_extensions.go
package builder

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// mdLinkTransformer rewrites intra-site links so that authors can link
// between markdown sources (*.md) and the links resolve to the built pages
// (*.html).
type mdLinkTransformer struct{}

func newMDLinkTransformer() parser.ASTTransformer {
	return &mdLinkTransformer{}
}

func (t *mdLinkTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}
		dest := link.Destination
		if bytes.HasSuffix(dest, []byte(".md")) {
			newDest := bytes.TrimSuffix(dest, []byte(".md"))
			link.Destination = append(newDest, []byte(".html")...)
		}
		return ast.WalkContinue, nil
	})
}
