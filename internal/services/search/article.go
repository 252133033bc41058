package search

import (
	"context"

	"github.com/kcvvelewijt/clubsite-api/internal/services/cms"
	"github.com/kcvvelewijt/clubsite-api/pkg/sanitize"
)

type articleMatcher struct{}

func (articleMatcher) Type() ContentType { return TypeArticle }

func (articleMatcher) Collect(ctx context.Context, fetcher *CollectionFetcher, query string) ([]SearchResult, error) {
	articles, err := fetcher.FetchArticles(ctx)
	if err != nil {
		return nil, err
	}

	var results []SearchResult
	for _, article := range articles {
		if matchesArticle(article, query) {
			results = append(results, projectArticle(article))
		}
	}
	return results, nil
}

func matchesArticle(a cms.Article, query string) bool {
	if containsFold(a.Title, query) {
		return true
	}
	for _, tag := range a.Tags {
		if containsFold(tag.Name, query) {
			return true
		}
	}
	return containsFold(a.Body, query)
}

func projectArticle(a cms.Article) SearchResult {
	description := sanitize.Truncate(a.Summary, maxDescriptionLength)
	if description == "" {
		description = sanitize.Snippet(a.Body, maxDescriptionLength)
	}

	var tags []string
	for _, tag := range a.Tags {
		tags = append(tags, tag.Name)
	}

	return SearchResult{
		ID:          a.ID,
		Type:        TypeArticle,
		Title:       a.Title,
		Description: description,
		URL:         "/news/" + a.Slug,
		ImageURL:    a.Image,
		Tags:        tags,
		Date:        a.Date,
	}
}
