package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text untouched", input: "hello world", want: "hello world"},
		{name: "simple tags", input: "<p>hello <b>world</b></p>", want: "hello world"},
		{name: "nested malformed tags", input: "<<b>i>text</<b>i>", want: "text"},
		{name: "unclosed bracket kept", input: "a < b", want: "a < b"},
		{name: "attributes", input: `<a href="/news/x">link</a>`, want: "link"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTags(tt.input))
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("  a\n\tb   c  "))
	assert.Equal(t, "", CollapseWhitespace("   \n "))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab", Truncate("abcd", 2))
	assert.Equal(t, "héllo", Truncate("héllo", 5))
}

func TestSnippet(t *testing.T) {
	body := "<p>" + strings.Repeat("word ", 50) + "</p>"
	got := Snippet(body, 150)
	assert.LessOrEqual(t, len([]rune(got)), 150)
	assert.NotContains(t, got, "<")
	assert.NotContains(t, got, "\n")
}
