// internal/util/util.go
package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ComputeBaseHref calculates the relative path to the site root so that
// CSS/JS links work correctly for pages at any depth. For example, a page
// at /user/[id]/index.html gets a BaseHref of "../../".
func ComputeBaseHref(relPath string) string {
	dir := filepath.Dir(relPath)
	if dir == "." {
		return ""
	}
	depth := strings.Count(dir, string(os.PathSeparator)) + 1
	return strings.Repeat("../", depth)
}
