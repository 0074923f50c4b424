package generate

import (
	"strings"
	"unicode"
)

// maxSlugLen caps normalized slugs.
const maxSlugLen = 80

// Slugify normalizes text into a URL-friendly slug: lowercase ASCII
// alphanumerics separated by single hyphens, at most maxSlugLen runes.
// Normalizing an already-normalized slug returns it unchanged.
func Slugify(text string) string {
	var b strings.Builder
	prevHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			prevHyphen = false
		case unicode.IsSpace(r) || r == '_' || r == '-':
			if !prevHyphen {
				b.WriteRune('-')
				prevHyphen = true
			}
		default:
			// punctuation and non-ASCII letters are stripped
		}
	}
	s := strings.TrimRight(b.String(), "-")
	if len(s) > maxSlugLen {
		s = strings.TrimRight(s[:maxSlugLen], "-")
	}
	return s
}
