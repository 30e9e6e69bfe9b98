// internal/parser/ast.go
package parser

import (
	"mtm/internal/adapters"
	"mtm/internal/frontmatter"
)

// VariableKind distinguishes signal-backed variables from one-shot computed
// values.
type VariableKind string

const (
	Reactive VariableKind = "reactive"
	Computed VariableKind = "computed"
)

// Variable is a $name declaration from the source body.
type Variable struct {
	Name      string
	Kind      VariableKind
	ValueExpr string
	Line      int
}

// Function is a $name = (params) => { ... } block. Body is opaque source
// text; $variable occurrences inside it are rewritten at codegen time.
type Function struct {
	Name   string
	Params string
	Body   string
	Line   int
}

// Import is a component import, tagged with the framework its path implies.
type Import struct {
	Name      string
	Path      string
	Framework adapters.Framework
	Line      int
}

// Component is the full AST for one compiled file. It is created fresh per
// file, never mutated after Build returns, and never shared across files.
type Component struct {
	Name        string
	Framework   string
	Frontmatter *frontmatter.Frontmatter
	Imports     []Import
	Variables   []Variable
	Functions   []Function
	Template    string
}

// Build folds a token stream into a Component in a single left-to-right
// pass. Later COMPONENT_NAME tokens overwrite earlier ones; imports,
// variables, and functions keep encounter order — codegen iterates them in
// this order, which is what makes emission deterministic.
func Build(fm *frontmatter.Frontmatter, tokens []Token) *Component {
	if fm == nil {
		fm = frontmatter.New()
	}
	c := &Component{
		Name:        "Component",
		Framework:   fm.Get("framework"),
		Frontmatter: fm,
	}
	if c.Framework == "" {
		c.Framework = "mtm"
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case TokImport:
			c.Imports = append(c.Imports, Import{
				Name:      tok.Name,
				Path:      tok.Path,
				Framework: tok.Framework,
				Line:      tok.Line,
			})
		case TokReactiveVariable:
			c.Variables = append(c.Variables, Variable{
				Name:      tok.Name,
				Kind:      Reactive,
				ValueExpr: tok.Value,
				Line:      tok.Line,
			})
		case TokComputedVariable:
			c.Variables = append(c.Variables, Variable{
				Name:      tok.Name,
				Kind:      Computed,
				ValueExpr: tok.Value,
				Line:      tok.Line,
			})
		case TokFunction:
			c.Functions = append(c.Functions, Function{
				Name:   tok.Name,
				Params: tok.Params,
				Body:   tok.Value,
				Line:   tok.Line,
			})
		case TokTemplate:
			c.Template = tok.Value
		case TokComponentName:
			c.Name = tok.Name
		}
	}

	return c
}

// Parse is the convenience entry point used by the compiler: frontmatter
// extraction, tokenization, and AST construction in one call.
func Parse(source string, detect Detector) *Component {
	fm, body := frontmatter.Extract(source)
	return Build(fm, Tokenize(body, detect))
}
