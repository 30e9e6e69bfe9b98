// internal/diag/render.go
package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Render produces a terminal-friendly rendering of a diagnostic of the form:
//
//	error: route conflict
//	  --> pages/about.mtm:3
//	  route "/about" is already registered by pages/info.mtm
//	  help: choose a distinct path for one of the files
//
// Colors can be disabled for plain log destinations.
func Render(d *Diagnostic, warning bool, withColor bool) string {
	color.NoColor = !withColor

	redBold := color.New(color.FgRed, color.Bold).SprintFunc()
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	var lines []string
	if warning {
		lines = append(lines, yellowBold(fmt.Sprintf("warning: %s", d.Kind)))
	} else {
		lines = append(lines, redBold(fmt.Sprintf("error: %s", d.Kind)))
	}

	if d.File != "" {
		loc := d.File
		if d.Line > 0 {
			loc = fmt.Sprintf("%s:%d", d.File, d.Line)
		}
		lines = append(lines, fmt.Sprintf("  %s %s", blue("-->"), loc))
	}

	lines = append(lines, "  "+d.Message)

	for _, s := range d.Suggestions {
		lines = append(lines, fmt.Sprintf("  %s %s", cyan("help:"), s))
	}

	return strings.Join(lines, "\n")
}
