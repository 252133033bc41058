package search

import (
	"context"

	"github.com/kcvvelewijt/clubsite-api/internal/services/cms"
)

type teamMatcher struct{}

func (teamMatcher) Type() ContentType { return TypeTeam }

func (teamMatcher) Collect(ctx context.Context, fetcher *CollectionFetcher, query string) ([]SearchResult, error) {
	teams, err := fetcher.FetchTeams(ctx)
	if err != nil {
		return nil, err
	}

	var results []SearchResult
	for _, team := range teams {
		if containsFold(team.Title, query) {
			results = append(results, projectTeam(team))
		}
	}
	return results, nil
}

func projectTeam(t cms.Team) SearchResult {
	return SearchResult{
		ID:       t.ID,
		Type:     TypeTeam,
		Title:    t.Title,
		URL:      "/team/" + t.Slug,
		ImageURL: t.Image,
	}
}
