package search

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kcvvelewijt/clubsite-api/internal/services/cache"
	"github.com/kcvvelewijt/clubsite-api/internal/services/cms"
)

// PageFetcher is the paginated collection-fetch capability the CMS
// integration provides
type PageFetcher interface {
	FetchPage(ctx context.Context, collection string, page, pageSize int) (*cms.Page, error)
}

const peopleCacheKey = "people:all"

// FetcherOptions configures a CollectionFetcher
type FetcherOptions struct {
	PageSize       int
	MaxPages       int
	PeopleCache    cache.Cache
	PeopleCacheTTL time.Duration
}

// CollectionFetcher accumulates full upstream collections by paging through
// the content delivery API. Paging stops after MaxPages regardless of the
// upstream's hasNextPage signal, trading completeness for guaranteed
// termination against a misbehaving upstream.
type CollectionFetcher struct {
	client      PageFetcher
	pageSize    int
	maxPages    int
	peopleCache cache.Cache
	peopleTTL   time.Duration
}

// NewCollectionFetcher creates a CollectionFetcher
func NewCollectionFetcher(client PageFetcher, opts FetcherOptions) *CollectionFetcher {
	if opts.PageSize <= 0 {
		opts.PageSize = 50
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = 20
	}
	if opts.PeopleCacheTTL <= 0 {
		opts.PeopleCacheTTL = 5 * time.Minute
	}

	return &CollectionFetcher{
		client:      client,
		pageSize:    opts.PageSize,
		maxPages:    opts.MaxPages,
		peopleCache: opts.PeopleCache,
		peopleTTL:   opts.PeopleCacheTTL,
	}
}

// FetchArticles returns the full articles collection
func (f *CollectionFetcher) FetchArticles(ctx context.Context) ([]cms.Article, error) {
	raw, err := f.fetchAllRaw(ctx, cms.CollectionArticles)
	if err != nil {
		return nil, err
	}
	return decodeEntries[cms.Article](raw, cms.CollectionArticles)
}

// FetchPeople returns the full people collection, served from the shared TTL
// cache when fresh. Concurrent cold-cache calls are not deduplicated: each
// miss pages through the upstream independently and the last write wins.
func (f *CollectionFetcher) FetchPeople(ctx context.Context) ([]cms.Person, error) {
	if f.peopleCache != nil {
		if data, ok := f.peopleCache.Get(ctx, peopleCacheKey); ok {
			var people []cms.Person
			if err := json.Unmarshal(data, &people); err == nil {
				return people, nil
			}
			log.Warn().Msg("discarding undecodable people cache entry")
		}
	}

	raw, err := f.fetchAllRaw(ctx, cms.CollectionPeople)
	if err != nil {
		return nil, err
	}

	people, err := decodeEntries[cms.Person](raw, cms.CollectionPeople)
	if err != nil {
		return nil, err
	}

	if f.peopleCache != nil {
		if data, err := json.Marshal(people); err == nil {
			_ = f.peopleCache.Set(ctx, peopleCacheKey, data, f.peopleTTL)
		}
	}

	return people, nil
}

// FetchTeams returns the full teams collection
func (f *CollectionFetcher) FetchTeams(ctx context.Context) ([]cms.Team, error) {
	raw, err := f.fetchAllRaw(ctx, cms.CollectionTeams)
	if err != nil {
		return nil, err
	}
	return decodeEntries[cms.Team](raw, cms.CollectionTeams)
}

// fetchAllRaw pages through one collection until the upstream reports no more
// pages or the page cap is reached. Any single page failure aborts the whole
// fetch; partial collections are never returned.
func (f *CollectionFetcher) fetchAllRaw(ctx context.Context, collection string) ([]json.RawMessage, error) {
	var items []json.RawMessage

	for page := 1; page <= f.maxPages; page++ {
		result, err := f.client.FetchPage(ctx, collection, page, f.pageSize)
		if err != nil {
			return nil, fmt.Errorf("fetching %s page %d: %w", collection, page, err)
		}

		items = append(items, result.Items...)

		if !result.HasNextPage {
			return items, nil
		}
	}

	log.Warn().
		Str("collection", collection).
		Int("max_pages", f.maxPages).
		Msg("collection fetch stopped at page cap, results may be incomplete")
	return items, nil
}

func decodeEntries[T any](items []json.RawMessage, collection string) ([]T, error) {
	entries := make([]T, 0, len(items))
	for _, item := range items {
		var entry T
		if err := json.Unmarshal(item, &entry); err != nil {
			return nil, fmt.Errorf("decoding %s entry: %w", collection, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
