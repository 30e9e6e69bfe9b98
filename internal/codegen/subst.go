// internal/codegen/subst.go
package codegen

import "strings"

// RewriteRefs replaces $name references in a JavaScript fragment with
// name.value, for every declared variable name. The scan is span-aware:
// occurrences inside string literals (single, double, template) and inside
// line or block comments are left untouched. A $name immediately followed
// by "." is also left alone, and so is any $word that is not a declared
// variable.
func RewriteRefs(src string, declared map[string]bool) string {
	var b strings.Builder
	b.Grow(len(src))

	const (
		code = iota
		singleQuote
		doubleQuote
		backtick
		lineComment
		blockComment
	)
	state := code

	i := 0
	for i < len(src) {
		c := src[i]

		switch state {
		case singleQuote:
			b.WriteByte(c)
			if c == '\\' && i+1 < len(src) {
				b.WriteByte(src[i+1])
				i += 2
				continue
			}
			if c == '\'' || c == '\n' {
				state = code
			}
			i++
			continue
		case doubleQuote:
			b.WriteByte(c)
			if c == '\\' && i+1 < len(src) {
				b.WriteByte(src[i+1])
				i += 2
				continue
			}
			if c == '"' || c == '\n' {
				state = code
			}
			i++
			continue
		case backtick:
			b.WriteByte(c)
			if c == '\\' && i+1 < len(src) {
				b.WriteByte(src[i+1])
				i += 2
				continue
			}
			if c == '`' {
				state = code
			}
			i++
			continue
		case lineComment:
			b.WriteByte(c)
			if c == '\n' {
				state = code
			}
			i++
			continue
		case blockComment:
			b.WriteByte(c)
			if c == '*' && i+1 < len(src) && src[i+1] == '/' {
				b.WriteByte('/')
				i += 2
				state = code
				continue
			}
			i++
			continue
		}

		switch {
		case c == '\'':
			state = singleQuote
			b.WriteByte(c)
			i++
		case c == '"':
			state = doubleQuote
			b.WriteByte(c)
			i++
		case c == '`':
			state = backtick
			b.WriteByte(c)
			i++
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			state = lineComment
			b.WriteString("//")
			i += 2
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			state = blockComment
			b.WriteString("/*")
			i += 2
		case c == '$':
			name, width := scanIdent(src[i+1:])
			next := i + 1 + width
			followedByDot := next < len(src) && src[next] == '.'
			if name != "" && declared[name] && !followedByDot {
				b.WriteString(name)
				b.WriteString(".value")
			} else {
				b.WriteByte('$')
				b.WriteString(name)
			}
			i = next
		default:
			b.WriteByte(c)
			i++
		}
	}

	return b.String()
}

// scanIdent returns the identifier at the start of s and its byte width.
func scanIdent(s string) (string, int) {
	i := 0
	for i < len(s) {
		c := s[i]
		alpha := c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
		digit := c >= '0' && c <= '9'
		if !alpha && !(digit && i > 0) {
			break
		}
		i++
	}
	return s[:i], i
}
