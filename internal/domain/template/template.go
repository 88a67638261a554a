// Package template renders the {token} placeholders used by notification
// message templates. Rendering is total: a token with no matching field
// becomes an empty string, so a half-filled student record can never make a
// bulk dispatch fail.
package template

import "regexp"

var tokenRe = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Render substitutes every {token} in tmpl with fields[token], or the empty
// string when the field is absent.
func Render(tmpl string, fields map[string]string) string {
	return tokenRe.ReplaceAllStringFunc(tmpl, func(match string) string {
		key := match[1 : len(match)-1]
		return fields[key]
	})
}

// Tokens lists the distinct placeholder names in tmpl, in order of first
// appearance.
func Tokens(tmpl string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range tokenRe.FindAllStringSubmatch(tmpl, -1) {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		out = append(out, m[1])
	}
	return out
}
