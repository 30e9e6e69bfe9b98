// internal/adapters/solid.go
package adapters

import "fmt"

type solidAdapter struct{}

func (solidAdapter) Framework() Framework { return Solid }

// Solid component sources use the same TypeScript props conventions as
// React, so the extraction rules are shared.
func (solidAdapter) ExtractProps(source string) []Prop {
	return reactAdapter{}.ExtractProps(source)
}

func (solidAdapter) GenerateWrapper(def ComponentDefinition) string {
	return fmt.Sprintf(`function mount%s(host, props) {
  return SolidWeb.render(function () { return %s(props); }, host);
}`, def.Name, def.Name)
}
