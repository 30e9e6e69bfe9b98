// internal/adapters/framework.go
package adapters

import "strings"

// Framework tags the UI framework a component import belongs to.
type Framework string

const (
	React   Framework = "react"
	Vue     Framework = "vue"
	Solid   Framework = "solid"
	Svelte  Framework = "svelte"
	Unknown Framework = "unknown"
)

// Detect infers the framework from an import path by extension and path
// convention. The checks run in priority order: .vue and .svelte are
// unambiguous, "solid" must win over the generic .tsx check because Solid
// components conventionally use the .solid.tsx suffix.
func Detect(path string) Framework {
	switch {
	case strings.HasSuffix(path, ".vue"):
		return Vue
	case strings.HasSuffix(path, ".svelte"):
		return Svelte
	case strings.Contains(path, "solid") || strings.HasSuffix(path, ".solid.tsx"):
		return Solid
	case strings.HasSuffix(path, ".tsx") || strings.HasSuffix(path, ".jsx"):
		return React
	default:
		return Unknown
	}
}
