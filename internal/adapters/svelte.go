// internal/adapters/svelte.go
package adapters

import (
	"fmt"
	"regexp"
	"strings"
)

type svelteAdapter struct{}

func (svelteAdapter) Framework() Framework { return Svelte }

// export let label = "hi";  /  export let count;
var svelteExportLetRe = regexp.MustCompile(`export\s+let\s+(\w+)(\s*=\s*([^;\n]+))?`)

func (svelteAdapter) ExtractProps(source string) []Prop {
	var props []Prop
	for _, m := range svelteExportLetRe.FindAllStringSubmatch(source, -1) {
		props = append(props, Prop{
			Name: m[1],
			Type: inferSvelteType(strings.TrimSpace(m[3])),
			// A default value makes the prop optional.
			Optional: m[2] != "",
		})
	}
	return props
}

func inferSvelteType(defaultVal string) string {
	switch {
	case defaultVal == "":
		return "any"
	case defaultVal == "true" || defaultVal == "false":
		return "boolean"
	case regexp.MustCompile(`^-?\d`).MatchString(defaultVal):
		return "number"
	case strings.HasPrefix(defaultVal, `"`) || strings.HasPrefix(defaultVal, "'"):
		return "string"
	default:
		return "any"
	}
}

func (svelteAdapter) GenerateWrapper(def ComponentDefinition) string {
	return fmt.Sprintf(`function mount%s(host, props) {
  var instance = new %s({ target: host, props: props });
  return function () { instance.$destroy(); };
}`, def.Name, def.Name)
}
