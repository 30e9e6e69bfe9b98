// internal/expr/expr.go

// Package expr parses the restricted condition language allowed inside
// {#if ...} template blocks. The grammar is deliberately small: identifiers,
// number/string/boolean literals, comparison operators, boolean operators,
// and parentheses. Conditions are parsed at compile time into a small AST
// that is embedded (as JSON) into the generated runtime, where a matching
// interpreter evaluates it against the signal store. Arbitrary evaluation of
// template text is never performed.
package expr

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Node is one node of a parsed condition. Exactly one shape is populated,
// selected by Op:
//
//	"ident" — Name
//	"lit"   — Value (pre-marshalled literal)
//	"not"   — Expr
//	"bin"   — Sym, Left, Right
type Node struct {
	Op    string          `json:"op"`
	Name  string          `json:"name,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
	Sym   string          `json:"sym,omitempty"`
	Left  *Node           `json:"left,omitempty"`
	Right *Node           `json:"right,omitempty"`
	Expr  *Node           `json:"expr,omitempty"`
}

// Parse parses a condition string.
func Parse(src string) (*Node, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, fmt.Errorf("unexpected %q after expression", p.peek().text)
	}
	return n, nil
}

// Idents returns every identifier referenced by the expression, first
// occurrence order, no duplicates.
func (n *Node) Idents() []string {
	seen := make(map[string]bool)
	var out []string
	var walk func(*Node)
	walk = func(m *Node) {
		if m == nil {
			return
		}
		if m.Op == "ident" && !seen[m.Name] {
			seen[m.Name] = true
			out = append(out, m.Name)
		}
		walk(m.Left)
		walk(m.Right)
		walk(m.Expr)
	}
	walk(n)
	return out
}

// Validate rejects any identifier that is not a declared variable name.
func (n *Node) Validate(declared map[string]bool) error {
	for _, id := range n.Idents() {
		if !declared[id] {
			return fmt.Errorf("unknown identifier %q", id)
		}
	}
	return nil
}

// JSON renders the AST as compact JSON for embedding into the generated
// runtime. Marshalling a struct is deterministic, which the codegen purity
// guarantee depends on.
func (n *Node) JSON() string {
	b, _ := json.Marshal(n)
	return string(b)
}

// Eval evaluates the expression against an environment of variable values.
// It mirrors the interpreter embedded in the generated JavaScript and is
// what the tests exercise. Unknown identifiers are an error, never a silent
// undefined.
func (n *Node) Eval(env map[string]interface{}) (interface{}, error) {
	switch n.Op {
	case "ident":
		v, ok := env[n.Name]
		if !ok {
			return nil, fmt.Errorf("unknown identifier %q", n.Name)
		}
		return v, nil
	case "lit":
		var v interface{}
		if err := json.Unmarshal(n.Value, &v); err != nil {
			return nil, err
		}
		return v, nil
	case "not":
		v, err := n.Expr.Eval(env)
		if err != nil {
			return nil, err
		}
		return !truthy(v), nil
	case "bin":
		l, err := n.Left.Eval(env)
		if err != nil {
			return nil, err
		}
		// Short-circuit the boolean operators.
		switch n.Sym {
		case "&&":
			if !truthy(l) {
				return false, nil
			}
			r, err := n.Right.Eval(env)
			if err != nil {
				return nil, err
			}
			return truthy(r), nil
		case "||":
			if truthy(l) {
				return true, nil
			}
			r, err := n.Right.Eval(env)
			if err != nil {
				return nil, err
			}
			return truthy(r), nil
		}
		r, err := n.Right.Eval(env)
		if err != nil {
			return nil, err
		}
		return compare(n.Sym, l, r)
	}
	return nil, fmt.Errorf("malformed expression node %q", n.Op)
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}

func asNumber(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	default:
		return 0, false
	}
}

func compare(sym string, l, r interface{}) (interface{}, error) {
	if sym == "==" || sym == "!=" {
		eq := equal(l, r)
		if sym == "!=" {
			return !eq, nil
		}
		return eq, nil
	}
	ln, lok := asNumber(l)
	rn, rok := asNumber(r)
	if !lok || !rok {
		ls, lsok := l.(string)
		rs, rsok := r.(string)
		if !lsok || !rsok {
			return nil, fmt.Errorf("operator %q needs two numbers or two strings", sym)
		}
		switch sym {
		case "<":
			return ls < rs, nil
		case "<=":
			return ls <= rs, nil
		case ">":
			return ls > rs, nil
		case ">=":
			return ls >= rs, nil
		}
	}
	switch sym {
	case "<":
		return ln < rn, nil
	case "<=":
		return ln <= rn, nil
	case ">":
		return ln > rn, nil
	case ">=":
		return ln >= rn, nil
	}
	return nil, fmt.Errorf("unsupported operator %q", sym)
}

func equal(l, r interface{}) bool {
	if ln, ok := asNumber(l); ok {
		if rn, ok := asNumber(r); ok {
			return ln == rn
		}
	}
	return l == r
}

// --- lexer ---

type token struct {
	text string
	kind string // "ident", "num", "str", "op", "lparen", "rparen"
}

func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '(':
			toks = append(toks, token{"(", "lparen"})
			i++
		case c == ')':
			toks = append(toks, token{")", "rparen"})
			i++
		case c == '\'' || c == '"':
			quote := c
			j := i + 1
			for j < len(src) && src[j] != quote {
				j++
			}
			if j >= len(src) {
				return nil, fmt.Errorf("unterminated string literal")
			}
			toks = append(toks, token{src[i+1 : j], "str"})
			i = j + 1
		case unicode.IsDigit(rune(c)):
			j := i
			for j < len(src) && (unicode.IsDigit(rune(src[j])) || src[j] == '.') {
				j++
			}
			toks = append(toks, token{src[i:j], "num"})
			i = j
		case isIdentStart(c):
			j := i
			for j < len(src) && isIdentPart(src[j]) {
				j++
			}
			toks = append(toks, token{src[i:j], "ident"})
			i = j
		default:
			matched := false
			for _, op := range []string{"==", "!=", "<=", ">=", "&&", "||", "<", ">", "!"} {
				if strings.HasPrefix(src[i:], op) {
					toks = append(toks, token{op, "op"})
					i += len(op)
					matched = true
					break
				}
			}
			if !matched {
				return nil, fmt.Errorf("unexpected character %q", string(c))
			}
		}
	}
	return toks, nil
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || unicode.IsLetter(rune(c))
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || unicode.IsDigit(rune(c))
}

// --- parser ---

type parser struct {
	toks []token
	pos  int
}

func (p *parser) atEnd() bool { return p.pos >= len(p.toks) }

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) advance() token { t := p.toks[p.pos]; p.pos++; return t }

func (p *parser) match(text string) bool {
	if !p.atEnd() && p.peek().text == text && p.peek().kind == "op" {
		p.pos++
		return true
	}
	return false
}

func (p *parser) parseOr() (*Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.match("||") {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Node{Op: "bin", Sym: "||", Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (*Node, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.match("&&") {
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &Node{Op: "bin", Sym: "&&", Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseComparison() (*Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for _, sym := range []string{"==", "!=", "<=", ">=", "<", ">"} {
		if p.match(sym) {
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			return &Node{Op: "bin", Sym: sym, Left: left, Right: right}, nil
		}
	}
	return left, nil
}

func (p *parser) parseUnary() (*Node, error) {
	if p.match("!") {
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Node{Op: "not", Expr: inner}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (*Node, error) {
	if p.atEnd() {
		return nil, fmt.Errorf("unexpected end of expression")
	}
	t := p.advance()
	switch t.kind {
	case "lparen":
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.atEnd() || p.peek().kind != "rparen" {
			return nil, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return inner, nil
	case "num":
		f, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number literal %q", t.text)
		}
		raw, _ := json.Marshal(f)
		return &Node{Op: "lit", Value: raw}, nil
	case "str":
		raw, _ := json.Marshal(t.text)
		return &Node{Op: "lit", Value: raw}, nil
	case "ident":
		switch t.text {
		case "true":
			return &Node{Op: "lit", Value: json.RawMessage("true")}, nil
		case "false":
			return &Node{Op: "lit", Value: json.RawMessage("false")}, nil
		}
		// Template conditions may reference variables in $name form; the
		// leading sigil is not part of the runtime identifier.
		return &Node{Op: "ident", Name: strings.TrimPrefix(t.text, "$")}, nil
	}
	return nil, fmt.Errorf("unexpected token %q", t.text)
}
