// internal/compiler/compiler_test.go
package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mtm/internal/diag"
	"mtm/internal/document"
	"mtm/internal/resolver"
	"mtm/internal/routes"
)

const counterSource = `---
route: "/counter"
title: "Counter"
compileJsMode: inline
---
$count! = signal('count', 0)

$increment = () => {
  $count = $count + 1
}

export default function Counter

<template>
  <button click={$increment}>{$count}</button>
</template>
`

func TestCompileInline(t *testing.T) {
	cc := New(routes.NewRegistry(), nil, Options{Site: document.Site{Title: "Site"}})

	artifact, err := cc.Compile(counterSource, "pages/counter.mtm")
	require.NoError(t, err)

	assert.Equal(t, ModeInline, artifact.Mode.Kind)
	assert.Empty(t, artifact.JSPath)
	assert.Contains(t, artifact.HTML, "<script>")
	assert.Contains(t, artifact.HTML, "MTM.store.create('count', 0)")
	assert.Contains(t, artifact.HTML, "<title>Counter | Site</title>")
}

func TestCompileExternalDerivesFilename(t *testing.T) {
	src := "---\ncompileJsMode: external.js\n---\nexport default function MyCounter\n<template>\n<p>hi</p>\n</template>\n"
	cc := New(nil, nil, Options{})

	artifact, err := cc.Compile(src, "pages/c.mtm")
	require.NoError(t, err)
	assert.Equal(t, ModeExternal, artifact.Mode.Kind)
	assert.Equal(t, "js/mycounter.js", artifact.JSPath)
	assert.Contains(t, artifact.HTML, `<script src="js/mycounter.js">`)
	assert.NotEmpty(t, artifact.JS)
}

func TestCompileCustomPath(t *testing.T) {
	src := "---\ncompileJsMode: bundle.js\n---\n<template>\n<p>hi</p>\n</template>\n"
	cc := New(nil, nil, Options{})

	artifact, err := cc.Compile(src, "pages/c.mtm")
	require.NoError(t, err)
	assert.Equal(t, "bundle.js", artifact.JSPath)
}

func TestRouteMustStartWithSlash(t *testing.T) {
	src := "---\nroute: counter\n---\n"
	cc := New(routes.NewRegistry(), nil, Options{})

	_, err := cc.Compile(src, "pages/c.mtm")
	require.Error(t, err)
	d, ok := err.(*diag.Diagnostic)
	require.True(t, ok)
	assert.Equal(t, diag.FrontmatterValidation, d.Kind)
	assert.Equal(t, "pages/c.mtm", d.File)
	assert.NotEmpty(t, d.Suggestions)
}

func TestRouteConflictIsFatalForFile(t *testing.T) {
	registry := routes.NewRegistry()
	cc := New(registry, nil, Options{})

	_, err := cc.Compile("---\nroute: /home\n---\n", "pages/a.mtm")
	require.NoError(t, err)

	_, err = cc.Compile("---\nroute: /home\n---\n", "pages/b.mtm")
	require.Error(t, err)
	assert.Equal(t, diag.RouteConflict, err.(*diag.Diagnostic).Kind)
}

func TestInvalidModeCarriesFile(t *testing.T) {
	src := "---\ncompileJsMode: nonsense\n---\n"
	cc := New(nil, nil, Options{})

	_, err := cc.Compile(src, "pages/c.mtm")
	require.Error(t, err)
	d := err.(*diag.Diagnostic)
	assert.Equal(t, diag.InvalidCompilationMode, d.Kind)
	assert.Equal(t, "pages/c.mtm", d.File)
}

func TestUnresolvableImportIsFatal(t *testing.T) {
	dir := t.TempDir()
	res := resolver.New(dir, nil)
	cc := New(nil, res, Options{})

	src := "import Missing from \"./Missing.tsx\"\n<template>\n<p>hi</p>\n</template>\n"
	_, err := cc.Compile(src, filepath.Join(dir, "pages", "c.mtm"))
	require.Error(t, err)
	assert.Equal(t, diag.ImportResolution, err.(*diag.Diagnostic).Kind)
}

func TestResolvableImportCompiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pages"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pages", "Button.tsx"), []byte("export default function Button() {}"), 0644))

	res := resolver.New(dir, nil)
	cc := New(nil, res, Options{})

	src := "import Button from \"./Button.tsx\"\n<template>\n<Button/>\n</template>\n"
	artifact, err := cc.Compile(src, filepath.Join(dir, "pages", "c.mtm"))
	require.NoError(t, err)
	assert.Contains(t, artifact.HTML, `data-component="Button"`)
}
