package middleware

import "strings"

// DefaultOrigins are the origins the editor web view is served from.
var DefaultOrigins = Origins{
	"tauri://localhost",
	"http://tauri.localhost",
	"http://localhost:5173",
}

// Origins is the browser origin allowlist shared by CORS and the WebSocket
// upgrader. "*" allows every origin.
type Origins []string

// AllowAll reports whether the list contains "*".
func (o Origins) AllowAll() bool {
	for _, origin := range o {
		if origin == "*" {
			return true
		}
	}
	return false
}

// Allowed reports whether a request carrying origin may reach the API.
// Requests without an Origin header do not come from a browser page.
func (o Origins) Allowed(origin string) bool {
	if origin == "" || o.AllowAll() {
		return true
	}
	for _, allowed := range o {
		if strings.EqualFold(strings.TrimSuffix(allowed, "/"), origin) {
			return true
		}
	}
	return false
}
