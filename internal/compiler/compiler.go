// internal/compiler/compiler.go

// Package compiler runs the single-file pipeline: frontmatter extraction,
// tokenization, AST construction, route registration, mode resolution, code
// generation, and document assembly. One call compiles one file; the
// builder package coordinates whole-project builds on top of this.
package compiler

import (
	"strings"

	"mtm/internal/codegen"
	"mtm/internal/diag"
	"mtm/internal/document"
	"mtm/internal/parser"
	"mtm/internal/resolver"
	"mtm/internal/routes"
)

// Options apply to one build invocation.
type Options struct {
	Development bool
	Production  bool
	Site        document.Site
}

// Artifact is everything one compiled file produces. JS always holds the
// generated program; JSPath is populated for external/custom modes and
// empty when the program is embedded inline. HTML is assembled with JSPath
// as written; a caller that relocates the page (the builder nests routed
// pages in directory indexes) re-assembles from Markup with an adjusted
// script reference.
type Artifact struct {
	Component *parser.Component
	Mode      Mode
	HTML      string
	Markup    string
	JS        string
	JSPath    string
	Warnings  []*diag.Diagnostic
}

// Compiler holds the per-build collaborators threaded through every file:
// the route registry (shared, single-writer) and the import path resolver.
// Either may be nil for single-file compilations.
type Compiler struct {
	Registry *routes.Registry
	Resolver *resolver.Resolver
	Options  Options
}

// New returns a Compiler for one build.
func New(registry *routes.Registry, res *resolver.Resolver, opts Options) *Compiler {
	return &Compiler{Registry: registry, Resolver: res, Options: opts}
}

// Compile runs the full pipeline over one source text. Fatal errors
// (route conflicts, unresolvable imports, invalid frontmatter or mode) are
// returned as diagnostics; the caller decides whether the build goes on.
func (cc *Compiler) Compile(source, sourcePath string) (*Artifact, error) {
	c := parser.Parse(source, nil)

	if err := cc.validateRoute(c, sourcePath); err != nil {
		return nil, err
	}

	if cc.Resolver != nil {
		for _, imp := range c.Imports {
			if _, err := cc.Resolver.Resolve(imp.Path, sourcePath); err != nil {
				return nil, err
			}
		}
	}

	mode, err := ResolveMode(c.Frontmatter, cc.Options)
	if err != nil {
		if d, ok := err.(*diag.Diagnostic); ok {
			d.File = sourcePath
		}
		return nil, err
	}

	out := codegen.Generate(c, codegen.Options{
		Development: cc.Options.Development,
		SourceFile:  sourcePath,
	})

	artifact := &Artifact{
		Component: c,
		Mode:      mode,
		Markup:    out.Markup,
		JS:        out.JS,
		Warnings:  out.Warnings,
	}

	switch mode.Kind {
	case ModeExternal:
		artifact.JSPath = ExternalFilename(c.Name)
	case ModeCustom:
		artifact.JSPath = mode.Path
	}

	artifact.HTML = document.Assemble(
		c.Frontmatter, c.Name, out.Markup, out.JS, artifact.JSPath, cc.Options.Site)

	return artifact, nil
}

// validateRoute checks the route frontmatter key and claims the path in the
// shared registry.
func (cc *Compiler) validateRoute(c *parser.Component, sourcePath string) error {
	if !c.Frontmatter.Has("route") {
		return nil
	}
	route := c.Frontmatter.Get("route")
	if !strings.HasPrefix(route, "/") {
		return diag.New(diag.FrontmatterValidation, sourcePath, 0,
			"route %q must start with \"/\"", route).
			Suggest(`routes are absolute paths, e.g. route: "/about"`)
	}
	if cc.Registry != nil {
		if err := cc.Registry.Register(route, sourcePath); err != nil {
			return err
		}
	}
	return nil
}
