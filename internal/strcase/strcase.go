// Package strcase normalizes rule and field names to their canonical
// PascalCase form so that snake_case, kebab-case, camelCase and PascalCase
// spellings of the same name resolve identically.
package strcase

import (
	"strings"
	"unicode"
)

// Pascal returns the PascalCase form of s. "date_format", "dateFormat" and
// "DateFormat" all map to "DateFormat"; acronym runs collapse to a single
// word ("UUID" -> "Uuid").
func Pascal(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, w := range words(s) {
		r := []rune(w)
		b.WriteRune(unicode.ToUpper(r[0]))
		for _, c := range r[1:] {
			b.WriteRune(unicode.ToLower(c))
		}
	}
	return b.String()
}

// words splits s on explicit separators and on case boundaries. A boundary
// opens before an upper rune that follows a lower rune or digit, and before
// the last upper rune of an acronym run when a lower rune follows it.
func words(s string) []string {
	runes := []rune(s)
	var out []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = nil
		}
	}
	for i, r := range runes {
		if r == '_' || r == '-' || r == ' ' || r == '.' {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(cur) > 0 {
			prev := cur[len(cur)-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return out
}
