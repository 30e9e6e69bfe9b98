// internal/resolver/resolver.go

// Package resolver locates component import paths on disk. It probes the
// usual candidate extensions and index files, and expands tsconfig-style
// path aliases when the project config provides them.
package resolver

import (
	"os"
	"path/filepath"
	"strings"

	"mtm/internal/diag"
)

// candidateExtensions are tried in order when the import path has no match
// as written. ".solid.tsx" must come before ".tsx" so Solid components
// resolve under their own convention.
var candidateExtensions = []string{
	".mtm", ".vue", ".svelte", ".solid.tsx", ".tsx", ".jsx", ".ts", ".js",
}

// Resolution is a successful lookup.
type Resolution struct {
	Found        bool
	ResolvedPath string
}

// Resolver resolves import specifiers relative to the importing file.
// Aliases map a prefix (e.g. "@/") to a directory under the project root.
type Resolver struct {
	Root    string
	Aliases map[string]string
}

// New returns a Resolver rooted at root.
func New(root string, aliases map[string]string) *Resolver {
	return &Resolver{Root: root, Aliases: aliases}
}

// Resolve maps an import path to a file on disk. Relative specifiers
// resolve against the importing file's directory; aliased specifiers
// resolve against the project root. On failure the returned diagnostic
// lists every path that was probed.
func (r *Resolver) Resolve(importPath, fromFile string) (Resolution, error) {
	base := r.expand(importPath, fromFile)

	var searched []string
	try := func(p string) (Resolution, bool) {
		searched = append(searched, p)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return Resolution{Found: true, ResolvedPath: p}, true
		}
		return Resolution{}, false
	}

	if res, ok := try(base); ok {
		return res, nil
	}
	for _, ext := range candidateExtensions {
		if res, ok := try(base + ext); ok {
			return res, nil
		}
	}
	// Directory import: probe index files.
	for _, ext := range candidateExtensions {
		if res, ok := try(filepath.Join(base, "index"+ext)); ok {
			return res, nil
		}
	}

	return Resolution{}, diag.New(diag.ImportResolution, fromFile, 0,
		"cannot resolve import %q; searched:\n    %s",
		importPath, strings.Join(searched, "\n    ")).
		Suggest(
			"check the import path spelling and extension",
			"component files must use one of: "+strings.Join(candidateExtensions, ", "),
		)
}

// expand turns an import specifier into an absolute-ish filesystem path,
// applying the longest matching alias first.
func (r *Resolver) expand(importPath, fromFile string) string {
	var bestPrefix, bestTarget string
	for prefix, target := range r.Aliases {
		if strings.HasPrefix(importPath, prefix) && len(prefix) > len(bestPrefix) {
			bestPrefix, bestTarget = prefix, target
		}
	}
	if bestPrefix != "" {
		rest := strings.TrimPrefix(importPath, bestPrefix)
		return filepath.Join(r.Root, bestTarget, rest)
	}
	if strings.HasPrefix(importPath, "./") || strings.HasPrefix(importPath, "../") {
		return filepath.Join(filepath.Dir(fromFile), importPath)
	}
	return filepath.Join(r.Root, importPath)
}
