// internal/builder/dag.go
package builder

import (
	"path/filepath"
	"sort"

	"mtm/internal/parser"
	"mtm/internal/resolver"
)

// sourceFile is one discovered .mtm file with its raw content and the
// component files it imports (restricted to files inside this build).
type sourceFile struct {
	path    string
	content string
	deps    []string
}

// orderByDependency arranges files into compilation levels: every file in
// level N depends only on files in earlier levels, so files within one
// level are independent and may compile concurrently. Import cycles cannot
// be leveled; whatever remains after the DAG is exhausted is appended,
// sorted by path, as one final level that runs through the worker pool
// like any other.
func orderByDependency(files map[string]*sourceFile) [][]string {
	indegree := make(map[string]int, len(files))
	dependents := make(map[string][]string, len(files))

	for path, f := range files {
		if _, ok := indegree[path]; !ok {
			indegree[path] = 0
		}
		for _, dep := range f.deps {
			if _, ok := files[dep]; !ok {
				continue
			}
			indegree[path]++
			dependents[dep] = append(dependents[dep], path)
		}
	}

	var levels [][]string
	placed := make(map[string]bool, len(files))

	current := readyPaths(indegree, placed)
	for len(current) > 0 {
		levels = append(levels, current)
		for _, path := range current {
			placed[path] = true
			for _, dependent := range dependents[path] {
				indegree[dependent]--
			}
		}
		current = readyPaths(indegree, placed)
	}

	var leftover []string
	for path := range files {
		if !placed[path] {
			leftover = append(leftover, path)
		}
	}
	if len(leftover) > 0 {
		sort.Strings(leftover)
		levels = append(levels, leftover)
	}

	return levels
}

func readyPaths(indegree map[string]int, placed map[string]bool) []string {
	var ready []string
	for path, n := range indegree {
		if n == 0 && !placed[path] {
			ready = append(ready, path)
		}
	}
	// Deterministic level ordering keeps build logs stable.
	sort.Strings(ready)
	return ready
}

// collectDeps resolves a file's imports and keeps those that land on other
// .mtm files; unresolvable imports are left for the compile step to report.
func collectDeps(path, content string, res *resolver.Resolver) []string {
	c := parser.Parse(content, nil)
	var deps []string
	for _, imp := range c.Imports {
		resolved, err := res.Resolve(imp.Path, path)
		if err != nil {
			continue
		}
		if filepath.Ext(resolved.ResolvedPath) == ".mtm" {
			deps = append(deps, resolved.ResolvedPath)
		}
	}
	return deps
}
