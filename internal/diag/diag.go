// internal/diag/diag.go
package diag

import (
	"fmt"
	"strings"
)

// Kind classifies a diagnostic. The compiler raises a small, closed set of
// fatal error kinds; everything else is reported as a warning.
type Kind string

const (
	RouteConflict          Kind = "route conflict"
	DynamicRouteConflict   Kind = "dynamic route conflict"
	ImportResolution       Kind = "import resolution"
	FrontmatterValidation  Kind = "frontmatter validation"
	InvalidCompilationMode Kind = "invalid compilation mode"
	ConditionSyntax        Kind = "condition syntax"
)

// Diagnostic is a single reported problem. Fatal diagnostics always carry a
// non-empty suggestion list so the author has something actionable.
type Diagnostic struct {
	Kind        Kind
	Message     string
	File        string
	Line        int // 0 when unknown
	Suggestions []string
}

// Error implements the error interface so a Diagnostic can travel up the
// call stack like any other error.
func (d *Diagnostic) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", d.Kind, d.Message)
	if d.File != "" {
		if d.Line > 0 {
			fmt.Fprintf(&b, " (%s:%d)", d.File, d.Line)
		} else {
			fmt.Fprintf(&b, " (%s)", d.File)
		}
	}
	return b.String()
}

// New builds a Diagnostic for the given kind.
func New(kind Kind, file string, line int, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		File:    file,
		Line:    line,
	}
}

// Suggest appends actionable suggestions and returns the diagnostic for
// chaining at the raise site.
func (d *Diagnostic) Suggest(suggestions ...string) *Diagnostic {
	d.Suggestions = append(d.Suggestions, suggestions...)
	return d
}
