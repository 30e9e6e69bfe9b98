// internal/adapters/react.go
package adapters

import (
	"fmt"
	"regexp"
	"strings"
)

type reactAdapter struct{}

func (reactAdapter) Framework() Framework { return React }

// Matches `name: type` lines inside an `interface XxxProps { ... }` block
// and destructured props in a function signature.
var (
	reactPropsBlockRe = regexp.MustCompile(`(?s)interface\s+\w*Props\s*\{(.*?)\}`)
	reactPropLineRe   = regexp.MustCompile(`(\w+)(\?)?\s*:\s*([^;,\n]+)`)
	reactDestructRe   = regexp.MustCompile(`function\s+\w+\s*\(\s*\{([^}]*)\}`)
)

func (reactAdapter) ExtractProps(source string) []Prop {
	var props []Prop
	if block := reactPropsBlockRe.FindStringSubmatch(source); block != nil {
		for _, m := range reactPropLineRe.FindAllStringSubmatch(block[1], -1) {
			props = append(props, Prop{
				Name:     m[1],
				Type:     strings.TrimSpace(m[3]),
				Optional: m[2] == "?",
			})
		}
		return props
	}
	if m := reactDestructRe.FindStringSubmatch(source); m != nil {
		for _, name := range strings.Split(m[1], ",") {
			name = strings.TrimSpace(strings.SplitN(name, "=", 2)[0])
			if name != "" {
				props = append(props, Prop{Name: name, Type: "any"})
			}
		}
	}
	return props
}

func (reactAdapter) GenerateWrapper(def ComponentDefinition) string {
	return fmt.Sprintf(`function mount%s(host, props) {
  var root = ReactDOM.createRoot(host);
  root.render(React.createElement(%s, props));
  return function () { root.unmount(); };
}`, def.Name, def.Name)
}
