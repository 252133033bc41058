package search

import (
	"context"
	"strings"

	"github.com/kcvvelewijt/clubsite-api/internal/services/cms"
)

// personMatcher covers players and staff alike: staff entries live in the
// same upstream collection and differ only by a missing shirt number, so no
// separate code path exists for them.
type personMatcher struct{}

func (personMatcher) Type() ContentType { return TypePerson }

func (personMatcher) Collect(ctx context.Context, fetcher *CollectionFetcher, query string) ([]SearchResult, error) {
	people, err := fetcher.FetchPeople(ctx)
	if err != nil {
		return nil, err
	}

	var results []SearchResult
	for _, person := range people {
		if matchesPerson(person, query) {
			results = append(results, projectPerson(person))
		}
	}
	return results, nil
}

func matchesPerson(p cms.Person, query string) bool {
	return containsFold(personDisplayName(p), query) ||
		containsFold(p.Position, query) ||
		containsFold(p.PositionCode, query)
}

func projectPerson(p cms.Person) SearchResult {
	return SearchResult{
		ID:          p.ID,
		Type:        TypePerson,
		Title:       personDisplayName(p),
		Description: personPosition(p),
		URL:         "/people/" + p.Slug,
		ImageURL:    p.Image,
	}
}

func personDisplayName(p cms.Person) string {
	name := strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
	if name == "" {
		return p.Title
	}
	return name
}

func personPosition(p cms.Person) string {
	if p.Position != "" {
		return p.Position
	}
	return p.PositionCode
}
