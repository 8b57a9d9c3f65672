package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)

	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

// Trim removes leading and trailing whitespace the way browsers trim form
// input: U+FEFF counts as whitespace, U+0085 does not.
func Trim(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// IsSpace reports whether r is whitespace or a line terminator as browsers
// define them for String.prototype.trim.
func IsSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}

// RemoveExtraWhitespace collapses runs of whitespace into a single space and trims.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// SingleLine converts a multi-line string to a single line by replacing
// line breaks with spaces and normalizing whitespace.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return RemoveExtraWhitespace(s)
}

// StripHTML removes every HTML element and returns plain text.
// Entities are unescaped so the result can be escaped once at render time.
func StripHTML(s string) string {
	return html.UnescapeString(policy().Sanitize(s))
}

func policy() *bluemonday.Policy {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

// Compose chains transforms into one, applied left to right.
func Compose(transforms ...func(string) string) func(string) string {
	return func(s string) string {
		for _, t := range transforms {
			s = t(s)
		}
		return s
	}
}
