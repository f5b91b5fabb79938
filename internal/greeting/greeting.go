// Package greeting renders the API key greeting served on the root path.
package greeting

import (
	"io"
	"net/http"
)

const (
	prefix = "Hello! The API key starts with: "
	suffix = "..."

	// VisibleChars is how many leading characters of the key are echoed.
	VisibleChars = 4
)

// Truncate returns at most n leading characters of s, counted in runes.
// Shorter strings are returned whole.
func Truncate(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Message returns the full greeting text for apiKey.
func Message(apiKey string) string {
	return prefix + Truncate(apiKey, VisibleChars) + suffix
}

// Handler returns an http.Handler that always writes the greeting for apiKey.
// The message is rendered once; the handler holds no other state.
func Handler(apiKey string) http.Handler {
	body := Message(apiKey)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, body)
	})
}
