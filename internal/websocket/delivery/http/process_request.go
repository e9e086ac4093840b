package http

import (
	"net/http"
	"strings"
)

// checkOrigin accepts the exact origins listed, and "*.example.com" style
// suffix entries. An empty list accepts everything.
func checkOrigin(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
			if strings.HasPrefix(a, "*.") && strings.HasSuffix(origin, strings.TrimPrefix(a, "*")) {
				return true
			}
		}
		return false
	}
}
