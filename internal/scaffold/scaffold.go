// internal/scaffold/scaffold.go
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateNewSite lays down the conventional project skeleton.
func CreateNewSite(name string) error {
	fmt.Println("Scaffolding new project in:", name)
	mkdir := func(path string) error { return os.MkdirAll(filepath.Join(name, path), 0755) }
	writeFile := func(path, content string) error {
		return os.WriteFile(filepath.Join(name, path), []byte(content), 0644)
	}

	dirs := []string{"pages", "components", "static/css", "static/js", "static/images"}
	for _, dir := range dirs {
		if err := mkdir(dir); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	files := map[string]string{
		"mtm.yaml":             projectYamlContent,
		"pages/index.mtm":      indexPageContent,
		"pages/about.md":       aboutPageContent,
		"static/css/style.css": staticCssContent,
	}
	for path, content := range files {
		if err := writeFile(path, content); err != nil {
			return fmt.Errorf("failed to write file %s: %w", path, err)
		}
	}

	fmt.Println("Project scaffolded. You can now:")
	fmt.Println("  cd", name)
	fmt.Println("  mtm build")
	fmt.Println("  mtm serve")
	return nil
}

// CreateNewPage writes a fresh .mtm page under pages/, routed at its slug.
func CreateNewPage(title string) error {
	slug := strings.ToLower(strings.ReplaceAll(title, " ", "-"))
	path := filepath.Join("pages", slug+".mtm")

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("page %s already exists", path)
	}

	content := fmt.Sprintf(`---
title: %q
route: "/%s"
---
export default function %s

<template>
  <h1>%s</h1>
</template>
`, title, slug, pascalCase(title), title)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return err
	}
	fmt.Println("Created:", path)
	return nil
}

func pascalCase(title string) string {
	var b strings.Builder
	for _, word := range strings.Fields(title) {
		b.WriteString(strings.ToUpper(word[:1]))
		if len(word) > 1 {
			b.WriteString(word[1:])
		}
	}
	if b.Len() == 0 {
		return "Page"
	}
	return b.String()
}

const projectYamlContent = `title: My MTM Site
author: Your Name
description: A new site powered by mtm.
lang: en
pages_dir: pages
static_dir: static
output_dir: dist
`

const indexPageContent = `---
title: "Home"
route: "/"
---
$count! = signal('count', 0)

$increment = ($event) => {
  $count = $count + 1
}

export default function Home

<template>
  <h1>Welcome</h1>
  <p>You clicked <strong>{$count}</strong> times.</p>
  <button click={$increment}>Click me</button>
  {#if count > 4}
    <p>That is plenty of clicks.</p>
  {/if}
  <p><a href="/about">About this site</a></p>
</template>
`

const aboutPageContent = `---
title: About
description: What this site is.
---

# About

This page is plain markdown, rendered into the same shell as the
compiled components. Edit it at ` + "`pages/about.md`" + `.
`

const staticCssContent = `body {
  font-family: sans-serif;
  max-width: 700px;
  margin: 2em auto;
  padding: 0 1em;
  line-height: 1.6;
  color: #222;
  background: #fdfdfd;
}
button {
  font-size: 1em;
  padding: 0.4em 1em;
}
`
