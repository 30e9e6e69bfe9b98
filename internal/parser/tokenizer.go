// internal/parser/tokenizer.go
package parser

import (
	"regexp"
	"strings"

	"mtm/internal/adapters"
)

// Detector maps an import path to a framework tag. The default is
// adapters.Detect; a path-resolving collaborator may inject a detector that
// expands tsconfig-style aliases before classifying.
type Detector func(path string) adapters.Framework

var (
	importRe       = regexp.MustCompile(`^import\s+(\w+)\s+from\s+['"]([^'"]+)['"]`)
	reactiveRe     = regexp.MustCompile(`^\$(\w+)!\s*=\s*(.+)$`)
	computedRe     = regexp.MustCompile(`^\$(\w+)\s*=\s*(.+)$`)
	functionOpenRe = regexp.MustCompile(`^\$(\w+)\s*=\s*\(([^)]*)\)\s*=>\s*\{\s*$`)
	functionLineRe = regexp.MustCompile(`^\$(\w+)\s*=\s*\(([^)]*)\)\s*=>\s*\{\s*(.*?)\s*\}\s*$`)
	componentRe    = regexp.MustCompile(`^export\s+default\s+function\s+(\w+)`)
)

// Tokenize scans an .mtm body line by line into a flat token stream.
//
// The scanner has three modes. In NORMAL mode each line is matched against
// the rules below, first match wins. A function-open line switches to
// function-body mode, which accumulates lines verbatim until a line that is
// exactly "}" — the scan does not count nested braces, so a nested block
// whose closing brace sits alone at column zero ends the function early
// (a documented limitation of the language, not of this scanner). A
// "<template>" line switches to template mode, accumulating verbatim until
// "</template>". Neither mode nests.
//
// Rules, in priority order:
//  1. blank line or "//" comment: skipped
//  2. import Name from "path"
//  3. $name! = expr           (reactive variable)
//  4. $name = expr            (computed variable; expr must not contain "=>")
//  5. $name = (params) => {   (function block; the one-line form
//     "$name = (params) => { body }" is accepted as a complete function)
//  6. <template> ... </template>
//  7. export default function Name
//
// Lines matching nothing are silently skipped; tokenization never fails.
func Tokenize(body string, detect Detector) []Token {
	if detect == nil {
		detect = adapters.Detect
	}

	var tokens []Token
	lines := strings.Split(body, "\n")

	const (
		modeNormal = iota
		modeTemplate
		modeFunction
	)
	mode := modeNormal

	var acc []string
	var pending Token

	for i, line := range lines {
		lineNum := i + 1

		switch mode {
		case modeTemplate:
			if strings.TrimSpace(line) == "</template>" {
				pending.Value = strings.Join(acc, "\n")
				tokens = append(tokens, pending)
				acc = nil
				mode = modeNormal
				continue
			}
			acc = append(acc, line)
			continue

		case modeFunction:
			if line == "}" {
				pending.Value = strings.Join(acc, "\n")
				tokens = append(tokens, pending)
				acc = nil
				mode = modeNormal
				continue
			}
			acc = append(acc, line)
			continue
		}

		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}

		if m := importRe.FindStringSubmatch(trimmed); m != nil {
			tokens = append(tokens, Token{
				Kind:      TokImport,
				Name:      m[1],
				Path:      m[2],
				Framework: detect(m[2]),
				Line:      lineNum,
			})
			continue
		}

		if m := reactiveRe.FindStringSubmatch(trimmed); m != nil {
			tokens = append(tokens, Token{
				Kind:  TokReactiveVariable,
				Name:  m[1],
				Value: strings.TrimSpace(m[2]),
				Line:  lineNum,
			})
			continue
		}

		// The function rules must be probed before the computed rule is
		// accepted: a "$name = (a) => {" line also matches the computed
		// pattern, but its initializer contains "=>". A function whose
		// whole body sits on the declaration line is emitted directly.
		if m := functionLineRe.FindStringSubmatch(trimmed); m != nil {
			tokens = append(tokens, Token{
				Kind:   TokFunction,
				Name:   m[1],
				Params: strings.TrimSpace(m[2]),
				Value:  m[3],
				Line:   lineNum,
			})
			continue
		}

		if m := functionOpenRe.FindStringSubmatch(trimmed); m != nil {
			pending = Token{
				Kind:   TokFunction,
				Name:   m[1],
				Params: strings.TrimSpace(m[2]),
				Line:   lineNum,
			}
			mode = modeFunction
			continue
		}

		if m := computedRe.FindStringSubmatch(trimmed); m != nil && !strings.Contains(m[2], "=>") {
			tokens = append(tokens, Token{
				Kind:  TokComputedVariable,
				Name:  m[1],
				Value: strings.TrimSpace(m[2]),
				Line:  lineNum,
			})
			continue
		}

		if trimmed == "<template>" {
			pending = Token{Kind: TokTemplate, Line: lineNum}
			mode = modeTemplate
			continue
		}

		if m := componentRe.FindStringSubmatch(trimmed); m != nil {
			tokens = append(tokens, Token{Kind: TokComponentName, Name: m[1], Line: lineNum})
			continue
		}
	}

	return tokens
}
