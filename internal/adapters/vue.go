// internal/adapters/vue.go
package adapters

import (
	"fmt"
	"regexp"
	"strings"
)

type vueAdapter struct{}

func (vueAdapter) Framework() Framework { return Vue }

var (
	// defineProps<{ label: string, count?: number }>()
	vueDefinePropsRe = regexp.MustCompile(`(?s)defineProps\s*<\s*\{(.*?)\}\s*>`)
	// props: { label: String, count: Number }
	vueOptionsPropsRe = regexp.MustCompile(`(?s)props\s*:\s*\{(.*?)\}`)
	vuePropLineRe     = regexp.MustCompile(`(\w+)(\?)?\s*:\s*([^;,\n]+)`)
)

func (vueAdapter) ExtractProps(source string) []Prop {
	block := vueDefinePropsRe.FindStringSubmatch(source)
	if block == nil {
		block = vueOptionsPropsRe.FindStringSubmatch(source)
	}
	if block == nil {
		return nil
	}
	var props []Prop
	for _, m := range vuePropLineRe.FindAllStringSubmatch(block[1], -1) {
		props = append(props, Prop{
			Name:     m[1],
			Type:     strings.TrimSpace(m[3]),
			Optional: m[2] == "?",
		})
	}
	return props
}

func (vueAdapter) GenerateWrapper(def ComponentDefinition) string {
	return fmt.Sprintf(`function mount%s(host, props) {
  var app = Vue.createApp(%s, props);
  app.mount(host);
  return function () { app.unmount(); };
}`, def.Name, def.Name)
}
