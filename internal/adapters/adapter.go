// internal/adapters/adapter.go
package adapters

import "fmt"

// Prop is a component property extracted from a framework source file.
type Prop struct {
	Name     string
	Type     string
	Optional bool
}

// ComponentDefinition is what the code generator hands an adapter when it
// needs a mount wrapper for an imported component.
type ComponentDefinition struct {
	Name      string
	Path      string
	Framework Framework
	Props     []Prop
}

// Adapter is the per-framework capability: it knows how to pull prop
// metadata out of one framework's source format and how to generate the
// JavaScript that mounts such a component into a host element.
//
// An adapter is selected once per import, at resolution time, and threaded
// through explicitly; call sites never re-dispatch on the framework tag.
type Adapter interface {
	Framework() Framework
	ExtractProps(source string) []Prop
	GenerateWrapper(def ComponentDefinition) string
}

// ForFramework returns the adapter implementation for a framework tag.
func ForFramework(tag Framework) (Adapter, error) {
	switch tag {
	case React:
		return reactAdapter{}, nil
	case Vue:
		return vueAdapter{}, nil
	case Solid:
		return solidAdapter{}, nil
	case Svelte:
		return svelteAdapter{}, nil
	default:
		return nil, fmt.Errorf("no adapter for framework %q", tag)
	}
}

// ForPath is the common entry point: detect then select.
func ForPath(path string) (Adapter, error) {
	return ForFramework(Detect(path))
}
