// internal/builder/markdown.go
package builder

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
	"gopkg.in/yaml.v3"
)

var (
	markdownRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Footnote),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(newMDLinkTransformer(), 100),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	htmlSanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown turns a raw .md page into metadata plus rendered HTML.
// Frontmatter is separated on the first two "---" fences and parsed as
// YAML. The rendered HTML is sanitized unless the build runs with -unsafe.
func renderMarkdown(rawContent []byte, opts BuildOptions) (pageMeta, string, error) {
	meta := pageMeta{}

	parts := bytes.SplitN(rawContent, []byte("---"), 3)
	var body []byte
	if len(parts) >= 3 {
		if err := yaml.Unmarshal(parts[1], &meta); err != nil {
			return pageMeta{}, "", fmt.Errorf("failed to parse front matter: %w", err)
		}
		body = parts[2]
	} else {
		body = rawContent
	}

	var htmlBuffer bytes.Buffer
	if err := markdownRenderer.Convert(body, &htmlBuffer); err != nil {
		return meta, "", fmt.Errorf("failed to render markdown: %w", err)
	}

	if !opts.Unsafe {
		return meta, string(htmlSanitizer.SanitizeBytes(htmlBuffer.Bytes())), nil
	}
	return meta, htmlBuffer.String(), nil
}
