// internal/routes/registry.go

// Package routes tracks which source file owns each route path for the
// duration of one build. The registry is an explicit per-build instance,
// never a package-level singleton, so unrelated builds cannot leak routes
// into each other.
package routes

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"mtm/internal/diag"
)

var dynamicSegmentRe = regexp.MustCompile(`^\[(\w+)\]$`)

// Entry is one registered route.
type Entry struct {
	Path       string
	SourceFile string
	IsDynamic  bool
	Segments   []string
}

// Registry accumulates route registrations across a build. Registration is
// append-only; entries live until the registry itself is discarded.
//
// Files compile concurrently, so every registration is funnelled through a
// single mutex — that is the single-writer discipline, not an accident of
// scheduling.
type Registry struct {
	mu        sync.Mutex
	byPath    map[string]*Entry
	byPattern map[string]*Entry
	order     []*Entry
}

// NewRegistry returns an empty registry for one build.
func NewRegistry() *Registry {
	return &Registry{
		byPath:    make(map[string]*Entry),
		byPattern: make(map[string]*Entry),
	}
}

// Register claims path for sourceFile.
//
// An exact path already claimed by a different file is a RouteConflict. A
// dynamic path whose wildcard pattern (every [name] segment replaced by *)
// matches an already-registered dynamic path is a DynamicRouteConflict:
// "/user/[id]" collides with "/user/[slug]" but not with "/admin/[id]",
// because the literal segments differ. Re-registering the same path from
// the same file is a no-op.
func (r *Registry) Register(path, sourceFile string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	segments := splitSegments(path)
	entry := &Entry{
		Path:       path,
		SourceFile: sourceFile,
		IsDynamic:  isDynamic(segments),
		Segments:   segments,
	}

	if entry.IsDynamic {
		pattern := wildcardPattern(segments)
		if existing, ok := r.byPattern[pattern]; ok {
			if existing.Path == path && existing.SourceFile == sourceFile {
				return nil
			}
			return diag.New(diag.DynamicRouteConflict, sourceFile, 0,
				"dynamic route %q collides with %q registered by %s", path, existing.Path, existing.SourceFile).
				Suggest(
					fmt.Sprintf("give one of %s and %s a distinct literal segment", sourceFile, existing.SourceFile),
					"dynamic segments like [id] are interchangeable at match time, only literal segments disambiguate routes",
				)
		}
		r.byPattern[pattern] = entry
		r.byPath[path] = entry
		r.order = append(r.order, entry)
		return nil
	}

	if existing, ok := r.byPath[path]; ok {
		if existing.SourceFile == sourceFile {
			return nil
		}
		return diag.New(diag.RouteConflict, sourceFile, 0,
			"route %q is already registered by %s", path, existing.SourceFile).
			Suggest(
				fmt.Sprintf("choose a different route in %s or %s", sourceFile, existing.SourceFile),
				fmt.Sprintf("for example %q or %q", path+"-2", "/"+strings.TrimPrefix(path, "/")+"/index"),
			)
	}

	r.byPath[path] = entry
	r.order = append(r.order, entry)
	return nil
}

// Lookup returns the entry for an exact path.
func (r *Registry) Lookup(path string) (*Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byPath[path]
	return e, ok
}

// Entries returns all registrations in registration order.
func (r *Registry) Entries() []*Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Entry, len(r.order))
	copy(out, r.order)
	return out
}

func splitSegments(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func isDynamic(segments []string) bool {
	for _, s := range segments {
		if dynamicSegmentRe.MatchString(s) {
			return true
		}
	}
	return false
}

// wildcardPattern replaces every dynamic segment with "*" so that routes
// differing only in segment names compare equal.
func wildcardPattern(segments []string) string {
	out := make([]string, len(segments))
	for i, s := range segments {
		if dynamicSegmentRe.MatchString(s) {
			out[i] = "*"
		} else {
			out[i] = s
		}
	}
	return "/" + strings.Join(out, "/")
}
