package search

import (
	"context"
	"strings"
)

// maxDescriptionLength bounds projected result descriptions
const maxDescriptionLength = 150

// Matcher decides which items of one content type match a query and projects
// them into the uniform result shape
type Matcher interface {
	Type() ContentType
	Collect(ctx context.Context, fetcher *CollectionFetcher, query string) ([]SearchResult, error)
}

// defaultMatchers returns the matchers in type-processing order:
// articles, then people, then teams.
func defaultMatchers() []Matcher {
	return []Matcher{articleMatcher{}, personMatcher{}, teamMatcher{}}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
