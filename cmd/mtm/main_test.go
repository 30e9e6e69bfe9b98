// cmd/mtm/main_test.go
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileSingleProductionWritesScriptBesidePage(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "page.mtm")
	content := "---\ncompileJsMode: external.js\n---\nexport default function App\n<template>\n<p>hi</p>\n</template>\n"
	require.NoError(t, os.WriteFile(src, []byte(content), 0644))

	// No js/ directory exists yet; the compile must create it.
	require.NoError(t, compileSingle(src, appConfig{prod: true}))

	html, err := os.ReadFile(src + ".html")
	require.NoError(t, err)
	assert.Contains(t, string(html), `<script src="js/app.js"></script>`)

	js, err := os.ReadFile(filepath.Join(dir, "js", "app.js"))
	require.NoError(t, err)
	assert.Contains(t, string(js), "'use strict'")
}

func TestCompileSingleInline(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "page.mtm")
	content := "$count! = signal('count', 0)\n<template>\n<p>{$count}</p>\n</template>\n"
	require.NoError(t, os.WriteFile(src, []byte(content), 0644))

	require.NoError(t, compileSingle(src, appConfig{}))

	html, err := os.ReadFile(src + ".html")
	require.NoError(t, err)
	assert.Contains(t, string(html), "MTM.store.create('count', 0)")

	_, err = os.Stat(filepath.Join(dir, "js"))
	assert.True(t, os.IsNotExist(err))
}
