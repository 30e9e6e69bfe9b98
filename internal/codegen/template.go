// internal/codegen/template.go
package codegen

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	ifBlockRe       = regexp.MustCompile(`(?s)\{#if\s+([^}]+)\}(.*?)\{/if\}`)
	eventAttrRe     = regexp.MustCompile(`([A-Za-z]\w*)=\{\$(\w+)\}`)
	interpolationRe = regexp.MustCompile(`\{\$(\w+)\}`)

	// Enough escaping for a double-quoted attribute value; getAttribute
	// hands the original text back to the runtime.
	attrEscaper = strings.NewReplacer(`&`, "&amp;", `"`, "&#34;")
)

// Lowered is the result of template lowering: plain HTML whose reactive
// spots are marked with data-* attributes, plus every {#if} condition in
// template encounter order.
type Lowered struct {
	Markup     string
	Conditions []string
}

// LowerTemplate rewrites the MTM template sugar into bindable markup:
//
//	{#if cond}...{/if}   ->  <div data-if="cond" style="display:none">...</div>
//	click={$fn}          ->  data-click="$fn"
//	other={$fn}          ->  data-event-other="$fn"
//	{$name}              ->  <span data-bind="$name"></span>
//	<Imported/>          ->  <div data-component="Imported"></div>
//
// The passes run in that order; event attributes must be rewritten before
// interpolations or click={$fn} would be half-consumed by the {$fn} rule.
// Condition text is carried entity-escaped in data-if; evaluation happens in
// the runtime against the compiler-built expression AST, never via eval.
func LowerTemplate(tmpl string, importNames []string) Lowered {
	var conditions []string

	markup := ifBlockRe.ReplaceAllStringFunc(tmpl, func(m string) string {
		parts := ifBlockRe.FindStringSubmatch(m)
		cond := strings.TrimSpace(parts[1])
		conditions = append(conditions, cond)
		return fmt.Sprintf(`<div data-if="%s" style="display:none">%s</div>`,
			attrEscaper.Replace(cond), parts[2])
	})

	markup = eventAttrRe.ReplaceAllStringFunc(markup, func(m string) string {
		parts := eventAttrRe.FindStringSubmatch(m)
		event, handler := parts[1], parts[2]
		if event == "click" {
			return fmt.Sprintf(`data-click="$%s"`, handler)
		}
		return fmt.Sprintf(`data-event-%s="$%s"`, event, handler)
	})

	markup = interpolationRe.ReplaceAllString(markup, `<span data-bind="$$$1"></span>`)

	for _, name := range importNames {
		selfClosing := regexp.MustCompile(`<` + name + `(\s[^>]*)?/>`)
		markup = selfClosing.ReplaceAllString(markup,
			fmt.Sprintf(`<div data-component="%s"$1></div>`, name))
	}

	return Lowered{Markup: markup, Conditions: conditions}
}
