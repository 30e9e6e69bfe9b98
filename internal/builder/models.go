// internal/builder/models.go
package builder

import (
	"time"

	"mtm/internal/diag"
)

// BuildOptions control one build invocation.
type BuildOptions struct {
	CleanDestination bool
	Development      bool
	Production       bool
	Unsafe           bool // disable HTML sanitization of markdown pages
	Debug            bool
}

// Report summarizes a finished build. A build with per-file errors still
// produces a Report: completed files are kept, failed ones are listed in
// the collector (partial success).
type Report struct {
	Pages    int
	Scripts  int
	Markdown int
	Errors   []*diag.Diagnostic
	Warnings []*diag.Diagnostic
	Duration time.Duration
}

// HasErrors reports whether any file failed.
func (r *Report) HasErrors() bool {
	return len(r.Errors) > 0
}

// pageMeta is the frontmatter of a markdown page.
type pageMeta struct {
	Title       string                 `yaml:"title"`
	Author      string                 `yaml:"author"`
	Draft       bool                   `yaml:"draft"`
	Description string                 `yaml:"description"`
	Params      map[string]interface{} `yaml:",inline"`
}
