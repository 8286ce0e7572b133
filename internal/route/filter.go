package route

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Match returns the registered routes matching any of the glob patterns.
// Patterns use doublestar syntax, so "/ko/**" selects the Korean edition
// and "/*/pipe" a page by slug. An empty pattern list matches everything.
func (r *Registry) Match(patterns []string) []string {
	if len(patterns) == 0 {
		return r.Routes()
	}
	var out []string
	for _, route := range r.routes {
		if MatchesAny(route, patterns) {
			out = append(out, route)
		}
	}
	return out
}

// MatchesAny reports whether route matches one of the patterns. Patterns
// without a leading slash are anchored at the root.
func MatchesAny(route string, patterns []string) bool {
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if !strings.HasPrefix(pattern, "/") {
			pattern = "/" + pattern
		}
		if matched, err := doublestar.Match(pattern, route); err == nil && matched {
			return true
		}
	}
	return false
}
