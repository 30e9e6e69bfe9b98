// internal/frontmatter/frontmatter.go
package frontmatter

import (
	"regexp"
	"strings"
)

// Frontmatter is the ordered key/value metadata block at the top of an .mtm
// file. Order is preserved so opaque keys can be passed through to the HTML
// assembler in the order the author wrote them.
type Frontmatter struct {
	keys   []string
	values map[string]string
}

// New returns an empty Frontmatter.
func New() *Frontmatter {
	return &Frontmatter{values: make(map[string]string)}
}

// Set stores a key/value pair, preserving first-insertion order. Setting an
// existing key overwrites its value in place.
func (f *Frontmatter) Set(key, value string) {
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
}

// Get returns the value for key, or the empty string.
func (f *Frontmatter) Get(key string) string {
	return f.values[key]
}

// Has reports whether key was present in the block.
func (f *Frontmatter) Has(key string) bool {
	_, ok := f.values[key]
	return ok
}

// Keys returns the keys in source order.
func (f *Frontmatter) Keys() []string {
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

// Len returns the number of parsed keys.
func (f *Frontmatter) Len() int {
	return len(f.keys)
}

var keyValueRe = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_-]*)\s*:\s*(.*)$`)

// Extract splits a source file into its frontmatter block and body.
//
// If the first line (trimmed) is exactly "---", subsequent lines are scanned
// until a closing "---"; everything between is parsed as key/value metadata
// and everything after the closing delimiter is the body. Without an opening
// delimiter the frontmatter is empty and the body is the whole source.
//
// Malformed metadata lines are silently skipped, as are blank lines and
// lines starting with "#". A single layer of matching single or double
// quotes is stripped from values.
func Extract(source string) (*Frontmatter, string) {
	fm := New()
	lines := strings.Split(source, "\n")

	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return fm, source
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			closing = i
			break
		}
	}
	if closing == -1 {
		// Unterminated block: treat the whole file as body, nothing parsed.
		return fm, source
	}

	for _, line := range lines[1:closing] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		m := keyValueRe.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		fm.Set(m[1], unquote(strings.TrimSpace(m[2])))
	}

	body := strings.Join(lines[closing+1:], "\n")
	return fm, body
}

// unquote strips exactly one layer of matching single or double quotes.
func unquote(v string) string {
	if len(v) >= 2 {
		first, last := v[0], v[len(v)-1]
		if first == last && (first == '"' || first == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}
