// internal/codegen/generator.go

// Package codegen emits the standalone JavaScript program for one compiled
// component: the signal store, the DOM binder and update cycle, the
// client-side router, and the component-mount scaffolding, all
// parameterized by the AST. Generation is a pure function of its inputs;
// the same AST and options always produce byte-identical output.
package codegen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"mtm/internal/adapters"
	"mtm/internal/diag"
	"mtm/internal/expr"
	"mtm/internal/parser"
)

// Options tune generation. They are part of the purity contract: identical
// Options and AST yield identical output.
type Options struct {
	Development bool
	SourceFile  string // used only for warning locations
}

// Output is the generated artifact pair plus any non-fatal findings.
// Generation never fails on a well-formed AST: malformed expressions are
// passed through (conditions with unparsable text simply never show) and
// reported as warnings.
type Output struct {
	JS       string
	Markup   string
	Warnings []*diag.Diagnostic
}

var signalCallRe = regexp.MustCompile(`^signal\(\s*['"]([^'"]+)['"]\s*,\s*(.+)\)\s*$`)

// Generate emits the runtime program and lowered markup for one component.
func Generate(c *parser.Component, opts Options) Output {
	declared := make(map[string]bool, len(c.Variables))
	for _, v := range c.Variables {
		declared[v.Name] = true
	}

	importNames := make([]string, 0, len(c.Imports))
	for _, imp := range c.Imports {
		importNames = append(importNames, imp.Name)
	}

	lowered := LowerTemplate(c.Template, importNames)

	out := Output{Markup: lowered.Markup}

	var b strings.Builder
	b.WriteString("/* generated by mtm; do not edit */\n")
	b.WriteString("(function () {\n  'use strict';\n\n")
	b.WriteString(signalStoreJS)
	b.WriteString("\n")
	b.WriteString(conditionInterpreterJS)
	b.WriteString("\n")
	b.WriteString(routerJS)
	b.WriteString("\n")

	emitVariables(&b, c, declared)
	emitFunctions(&b, c, declared)
	emitTables(&b, c)
	emitConditions(&b, c, lowered.Conditions, declared, opts, &out)
	emitWrappers(&b, c, opts, &out)

	b.WriteString("\n")
	b.WriteString(binderJS)
	b.WriteString("\n")

	// Every reactive variable drives the update cycle.
	for _, v := range c.Variables {
		if v.Kind == parser.Reactive {
			fmt.Fprintf(&b, "  %s.subscribe(updateAll);\n", v.Name)
		}
	}

	emitRouteMeta(&b, c)

	b.WriteString(`
  function boot() {
    wireEvents(document);
    mountComponents(document);
    MTM.router.start();
    updateAll();
  }
  if (document.readyState === 'loading') {
    document.addEventListener('DOMContentLoaded', boot);
  } else {
    boot();
  }
})();
`)

	out.JS = b.String()
	return out
}

func emitVariables(b *strings.Builder, c *parser.Component, declared map[string]bool) {
	if len(c.Variables) == 0 {
		return
	}
	b.WriteString("  // state\n")
	for _, v := range c.Variables {
		switch v.Kind {
		case parser.Reactive:
			if m := signalCallRe.FindStringSubmatch(v.ValueExpr); m != nil {
				// signal('key', initial) declares its own store key.
				fmt.Fprintf(b, "  var %s = MTM.store.create('%s', %s);\n",
					v.Name, m[1], RewriteRefs(strings.TrimSpace(m[2]), declared))
			} else {
				fmt.Fprintf(b, "  var %s = MTM.store.create('%s', %s);\n",
					v.Name, v.Name, RewriteRefs(v.ValueExpr, declared))
			}
		case parser.Computed:
			// One-shot value wrapped so the uniform name.value rewrite
			// stays valid; not signal-backed, never re-evaluated.
			fmt.Fprintf(b, "  var %s = { value: %s };\n",
				v.Name, RewriteRefs(v.ValueExpr, declared))
		}
	}
	b.WriteString("\n")
}

func emitFunctions(b *strings.Builder, c *parser.Component, declared map[string]bool) {
	if len(c.Functions) == 0 {
		return
	}
	b.WriteString("  // event handlers\n")
	for _, fn := range c.Functions {
		body := RewriteRefs(fn.Body, declared)
		fmt.Fprintf(b, "  var %s = (%s) => {\n%s\n  };\n", fn.Name, fn.Params, body)
	}
	b.WriteString("\n")
}

func emitTables(b *strings.Builder, c *parser.Component) {
	b.WriteString("  var vars = {")
	for i, v := range c.Variables {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(b, " %s: %s", v.Name, v.Name)
	}
	b.WriteString(" };\n")

	b.WriteString("  var handlers = {")
	for i, fn := range c.Functions {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(b, " %s: %s", fn.Name, fn.Name)
	}
	b.WriteString(" };\n")
}

func emitConditions(b *strings.Builder, c *parser.Component, conditions []string, declared map[string]bool, opts Options, out *Output) {
	b.WriteString("  var conditionIndex = {};\n")
	for _, cond := range conditions {
		node, err := expr.Parse(cond)
		if err != nil {
			out.Warnings = append(out.Warnings, diag.New(diag.ConditionSyntax, opts.SourceFile, 0,
				"cannot parse condition %q: %v", cond, err).
				Suggest("conditions may use variable names, literals, comparisons, !, && and ||"))
			fmt.Fprintf(b, "  conditionIndex[%s] = { ast: null };\n", strconv.Quote(cond))
			continue
		}
		if err := node.Validate(declared); err != nil {
			out.Warnings = append(out.Warnings, diag.New(diag.ConditionSyntax, opts.SourceFile, 0,
				"condition %q: %v", cond, err).
				Suggest("conditions may only reference variables declared in this component"))
		}
		fmt.Fprintf(b, "  conditionIndex[%s] = { ast: %s };\n", strconv.Quote(cond), node.JSON())
	}
	b.WriteString("\n")
}

func emitWrappers(b *strings.Builder, c *parser.Component, opts Options, out *Output) {
	var mounted []string
	for _, imp := range c.Imports {
		adapter, err := adapters.ForFramework(imp.Framework)
		if err != nil {
			out.Warnings = append(out.Warnings, diag.New(diag.ImportResolution, opts.SourceFile, imp.Line,
				"import %q: %v; the component will not be mounted", imp.Name, err).
				Suggest("use a .tsx/.jsx, .vue, .svelte, or .solid.tsx component source"))
			continue
		}
		def := adapters.ComponentDefinition{
			Name:      imp.Name,
			Path:      imp.Path,
			Framework: imp.Framework,
		}
		b.WriteString("  " + strings.ReplaceAll(adapter.GenerateWrapper(def), "\n", "\n  ") + "\n")
		mounted = append(mounted, imp.Name)
	}

	b.WriteString("  var mounts = {")
	for i, name := range mounted {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(b, " %s: mount%s", name, name)
	}
	b.WriteString(" };\n")
}

func emitRouteMeta(b *strings.Builder, c *parser.Component) {
	route := c.Frontmatter.Get("route")
	if route == "" {
		return
	}
	title := c.Frontmatter.Get("title")
	if title == "" {
		title = c.Name
	}
	fmt.Fprintf(b, "  MTM.routeMeta[%s] = { title: %s, description: %s };\n",
		strconv.Quote(route), strconv.Quote(title), strconv.Quote(c.Frontmatter.Get("description")))
}
