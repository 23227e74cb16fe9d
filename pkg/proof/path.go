package proof

import (
	"regexp"
	"strings"
)

// placeholderPattern matches proof path placeholders: {name} or {name:type}.
var placeholderPattern = regexp.MustCompile(`\{([^:}]+)(?::([^}]+))?\}`)

// Placeholder describes one path parameter declared in a route path.
type Placeholder struct {
	Name string // parameter name
	Type string // declared type, "" when the placeholder is untyped
}

// Placeholders extracts the placeholders of a route path in order of
// appearance.
func Placeholders(path string) []Placeholder {
	matches := placeholderPattern.FindAllStringSubmatch(path, -1)
	out := make([]Placeholder, 0, len(matches))
	for _, m := range matches {
		out = append(out, Placeholder{Name: m[1], Type: m[2]})
	}
	return out
}

// ConvertPath rewrites a proof route path into the colon syntax shared by the
// supported frameworks: /users/{id:int} becomes /users/:id. Wildcard
// placeholders {name:*} become *name.
func ConvertPath(path string) string {
	return placeholderPattern.ReplaceAllStringFunc(path, func(m string) string {
		sub := placeholderPattern.FindStringSubmatch(m)
		if sub[2] == "*" {
			return "*" + sub[1]
		}
		return ":" + sub[1]
	})
}

// NormalizeMethod upper-cases an HTTP method name.
func NormalizeMethod(method string) string {
	return strings.ToUpper(method)
}
