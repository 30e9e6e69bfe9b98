// internal/compiler/mode.go
package compiler

import (
	"regexp"
	"strings"

	"mtm/internal/diag"
	"mtm/internal/frontmatter"
)

// ModeKind says where the generated JavaScript ends up.
type ModeKind int

const (
	// ModeInline embeds the program in a <script> tag in the document.
	ModeInline ModeKind = iota
	// ModeExternal writes a conventionally-named file under js/.
	ModeExternal
	// ModeCustom writes to the exact .js path the author named.
	ModeCustom
)

// Mode is the resolved placement decision. Path is populated for ModeCustom
// only; the external filename is derived from the component name at emit
// time, after the AST is known.
type Mode struct {
	Kind ModeKind
	Path string
}

func (m Mode) String() string {
	switch m.Kind {
	case ModeExternal:
		return "external.js"
	case ModeCustom:
		return "custom(" + m.Path + ")"
	default:
		return "inline"
	}
}

// ResolveMode picks the compilation mode for one file.
//
// A compileJsMode frontmatter key wins when present: the literal "inline",
// the literal "external.js", or any other string ending in ".js" (a custom
// target path). Anything else is an InvalidCompilationMode. Without the
// key, development builds inline, production builds external, and the
// default is inline.
func ResolveMode(fm *frontmatter.Frontmatter, opts Options) (Mode, error) {
	if fm != nil && fm.Has("compileJsMode") {
		value := fm.Get("compileJsMode")
		switch {
		case value == "inline":
			return Mode{Kind: ModeInline}, nil
		case value == "external.js":
			return Mode{Kind: ModeExternal}, nil
		case strings.HasSuffix(value, ".js"):
			return Mode{Kind: ModeCustom, Path: value}, nil
		default:
			return Mode{}, diag.New(diag.InvalidCompilationMode, "", 0,
				"compileJsMode %q is not recognized", value).
				Suggest(`use "inline", "external.js", or a path ending in ".js" (e.g. "js/app.js")`)
		}
	}

	switch {
	case opts.Development:
		return Mode{Kind: ModeInline}, nil
	case opts.Production:
		return Mode{Kind: ModeExternal}, nil
	default:
		return Mode{Kind: ModeInline}, nil
	}
}

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

// ExternalFilename derives the conventional external script path from a
// component name: lowercased, runs of non-alphanumerics collapsed to "-",
// under the js/ prefix.
func ExternalFilename(componentName string) string {
	slug := nonAlnumRe.ReplaceAllString(strings.ToLower(componentName), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "component"
	}
	return "js/" + slug + ".js"
}
