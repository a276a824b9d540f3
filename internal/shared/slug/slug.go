// Package slug derives the normalized keys used to enforce uniqueness of reference data names.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Make strips diacritics, lowercases, collapses every run of characters outside [a-z0-9]
// into a single hyphen and trims hyphens from both ends. "Suporte Técnico" becomes "suporte-tecnico".
func Make(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	stripped = strings.ToLower(strings.TrimSpace(stripped))

	var b strings.Builder
	b.Grow(len(stripped))
	pendingDash := false
	for _, r := range stripped {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}

// Join builds a composite key such as "hardware::impressora".
func Join(parts ...string) string {
	keys := make([]string, len(parts))
	for i, p := range parts {
		keys[i] = Make(p)
	}
	return strings.Join(keys, "::")
}
