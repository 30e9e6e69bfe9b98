// internal/adapters/adapters_test.go
package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	cases := map[string]Framework{
		"./Button.tsx":        React,
		"./Button.jsx":        React,
		"./Card.vue":          Vue,
		"./Toggle.svelte":     Svelte,
		"./Chart.solid.tsx":   Solid,
		"./solid/Counter.tsx": Solid,
		"./thing.wasm":        Unknown,
		"./plain.js":          Unknown,
	}
	for path, want := range cases {
		assert.Equal(t, want, Detect(path), "path %s", path)
	}
}

func TestForFrameworkUnknown(t *testing.T) {
	_, err := ForFramework(Unknown)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown")
}

func TestForPath(t *testing.T) {
	a, err := ForPath("./Card.vue")
	require.NoError(t, err)
	assert.Equal(t, Vue, a.Framework())
}

func TestReactPropsFromInterface(t *testing.T) {
	src := `
interface ButtonProps {
  label: string;
  count?: number;
}
export default function Button({ label, count }: ButtonProps) {}
`
	a, _ := ForFramework(React)
	props := a.ExtractProps(src)
	require.Len(t, props, 2)
	assert.Equal(t, Prop{Name: "label", Type: "string", Optional: false}, props[0])
	assert.Equal(t, Prop{Name: "count", Type: "number", Optional: true}, props[1])
}

func TestReactPropsFromDestructuring(t *testing.T) {
	src := `export default function Button({ label, count = 0 }) { return null; }`
	a, _ := ForFramework(React)
	props := a.ExtractProps(src)
	require.Len(t, props, 2)
	assert.Equal(t, "label", props[0].Name)
	assert.Equal(t, "count", props[1].Name)
	assert.Equal(t, "any", props[1].Type)
}

func TestVuePropsFromDefineProps(t *testing.T) {
	src := `<script setup lang="ts">
const props = defineProps<{ label: string, count?: number }>()
</script>`
	a, _ := ForFramework(Vue)
	props := a.ExtractProps(src)
	require.Len(t, props, 2)
	assert.Equal(t, "label", props[0].Name)
	assert.True(t, props[1].Optional)
}

func TestSveltePropsFromExportLet(t *testing.T) {
	src := `<script>
  export let label = "hi";
  export let count = 3;
  export let handler;
</script>`
	a, _ := ForFramework(Svelte)
	props := a.ExtractProps(src)
	require.Len(t, props, 3)
	assert.Equal(t, Prop{Name: "label", Type: "string", Optional: true}, props[0])
	assert.Equal(t, Prop{Name: "count", Type: "number", Optional: true}, props[1])
	assert.Equal(t, Prop{Name: "handler", Type: "any", Optional: false}, props[2])
}

func TestWrapperNaming(t *testing.T) {
	def := ComponentDefinition{Name: "Button"}
	for _, tag := range []Framework{React, Vue, Solid, Svelte} {
		a, err := ForFramework(tag)
		require.NoError(t, err)
		w := a.GenerateWrapper(def)
		assert.Contains(t, w, "function mountButton(host, props)", "framework %s", tag)
	}
}
