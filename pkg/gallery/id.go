package gallery

import (
	"strings"
	"unicode"
)

const maxIDLength = 64

// makeID turns s into a lowercase, dash separated, URL-safe id.
// Common Latin diacritics are folded to ASCII; other characters become
// separators.
func makeID(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastWasSep := true
	n := 0

	for _, r := range s {
		if n >= maxIDLength {
			break
		}

		r = unicode.ToLower(r)
		if folded, ok := diacritics[r]; ok {
			r = folded
		}

		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastWasSep = false
			n++
			continue
		}

		if !lastWasSep && n+1 < maxIDLength {
			b.WriteByte('-')
			lastWasSep = true
			n++
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

var diacritics = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a', 'æ': 'a',
	'ç': 'c', 'č': 'c',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
	'ñ': 'n',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o', 'ø': 'o', 'œ': 'o',
	'š': 's', 'ß': 's',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u',
	'ý': 'y', 'ÿ': 'y',
	'ž': 'z',
}
