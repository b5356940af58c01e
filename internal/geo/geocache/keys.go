package geocache

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
)

// Key builds the shared-cache key for a raw location string. The key carries
// a sanitized ASCII prefix for readability and an xxhash suffix so that
// distinct inputs never collide after sanitization. Lookup stays exact-string:
// the hash covers the raw input, case and formatting included.
func Key(location string) string {
	safe := sanitizeForKey(location)

	const maxTextLen = 80
	if len(safe) > maxTextLen {
		safe = safe[:maxTextLen]
	}

	sum := xxhash.Sum64String(location)

	return fmt.Sprintf("geo:%s:h=%016x", safe, sum)
}

func sanitizeForKey(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))

	var prev rune
	for _, r := range s {
		out := rune(0)
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f':
			out = '_'
		case isAlphaNum(r) || r == '_' || r == '-':
			out = r
		default:
			// Any other rune (including non-ASCII) becomes '-'
			out = '-'
		}
		if (out == '_' || out == '-') && out == prev {
			continue
		}
		b.WriteRune(out)
		prev = out
	}
	return b.String()
}

func isAlphaNum(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		unicode.IsDigit(r)
}
