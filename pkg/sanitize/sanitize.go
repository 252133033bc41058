// Package sanitize turns CMS body markup into plain-text snippets.
package sanitize

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^<>]*>`)

// StripTags removes angle-bracket tag patterns from s. Removal is applied
// repeatedly until a fixpoint so that malformed or nested markup like
// "<<b>i>text</<b>i>" is fully stripped as well.
func StripTags(s string) string {
	for {
		stripped := tagPattern.ReplaceAllString(s, "")
		if stripped == s {
			return s
		}
		s = stripped
	}
}

// CollapseWhitespace trims s and replaces any run of whitespace with a single space
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate shortens s to at most max characters
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// Snippet strips markup from s, collapses whitespace and truncates to max characters
func Snippet(s string, max int) string {
	return Truncate(CollapseWhitespace(StripTags(s)), max)
}
