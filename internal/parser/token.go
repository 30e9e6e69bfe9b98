// internal/parser/token.go
package parser

import "mtm/internal/adapters"

// TokenKind classifies one token in the flat stream produced by Tokenize.
type TokenKind string

const (
	TokImport           TokenKind = "IMPORT"
	TokReactiveVariable TokenKind = "REACTIVE_VARIABLE"
	TokComputedVariable TokenKind = "COMPUTED_VARIABLE"
	TokFunction         TokenKind = "FUNCTION"
	TokTemplate         TokenKind = "TEMPLATE"
	TokComponentName    TokenKind = "COMPONENT_NAME"
)

// Token is one lexical item from an .mtm body. Which fields are populated
// depends on Kind; Line is the 1-based source line the token started on
// (relative to the body, after the frontmatter block).
type Token struct {
	Kind      TokenKind
	Name      string
	Value     string // variable initializer / template content / function body
	Params    string // FUNCTION only, the raw parameter list
	Path      string // IMPORT only
	Framework adapters.Framework
	Line      int
}
