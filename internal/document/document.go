// internal/document/document.go

// Package document assembles final HTML artifacts: the component shell
// around lowered markup plus its script, and the page shell around rendered
// markdown content. Frontmatter keys the compiler does not consume are
// passed through as <meta> tags in author order.
package document

import (
	"fmt"
	"html"
	"strings"

	"mtm/internal/frontmatter"
)

// Site is the project-level metadata used to fill gaps a page's own
// frontmatter leaves open.
type Site struct {
	Title       string
	Description string
	Author      string
	Lang        string
	Stylesheet  string // href for the site stylesheet, already base-relative
}

// reservedKeys are frontmatter keys with compiler-assigned meaning; they
// never become passthrough meta tags.
var reservedKeys = map[string]bool{
	"route":         true,
	"compileJsMode": true,
	"framework":     true,
	"title":         true,
	"description":   true,
}

// Assemble wraps lowered component markup and its generated program into a
// complete document. When scriptPath is non-empty the script is referenced
// externally; otherwise js is embedded inline.
func Assemble(fm *frontmatter.Frontmatter, componentName, markup, js, scriptPath string, site Site) string {
	var b strings.Builder

	title := fm.Get("title")
	if title == "" {
		title = componentName
	}
	if title == "" {
		title = site.Title
	} else if site.Title != "" {
		title = title + " | " + site.Title
	}
	description := fm.Get("description")
	if description == "" {
		description = site.Description
	}

	lang := site.Lang
	if lang == "" {
		lang = "en"
	}

	b.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(&b, "<html lang=%q>\n<head>\n", lang)
	b.WriteString("  <meta charset=\"utf-8\">\n")
	b.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "  <title>%s</title>\n", html.EscapeString(title))
	if description != "" {
		fmt.Fprintf(&b, "  <meta name=\"description\" content=%q>\n", html.EscapeString(description))
	}
	if site.Author != "" {
		fmt.Fprintf(&b, "  <meta name=\"author\" content=%q>\n", html.EscapeString(site.Author))
	}
	if site.Stylesheet != "" {
		fmt.Fprintf(&b, "  <link rel=\"stylesheet\" href=%q>\n", site.Stylesheet)
	}
	for _, key := range fm.Keys() {
		if reservedKeys[key] {
			continue
		}
		fmt.Fprintf(&b, "  <meta name=%q content=%q>\n",
			html.EscapeString(key), html.EscapeString(fm.Get(key)))
	}
	b.WriteString("</head>\n<body>\n")
	b.WriteString("  <div id=\"app\">\n")
	b.WriteString(markup)
	b.WriteString("\n  </div>\n")

	if scriptPath != "" {
		fmt.Fprintf(&b, "  <script src=%q></script>\n", scriptPath)
	} else {
		b.WriteString("  <script>\n")
		b.WriteString(js)
		b.WriteString("  </script>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// AssemblePage wraps pre-rendered HTML content (markdown pages) into the
// same shell, without a script.
func AssemblePage(title, description, content string, site Site) string {
	fm := frontmatter.New()
	if title != "" {
		fm.Set("title", title)
	}
	if description != "" {
		fm.Set("description", description)
	}
	return Assemble(fm, title, content, "", "", site)
}
