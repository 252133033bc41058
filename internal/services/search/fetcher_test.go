package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcvvelewijt/clubsite-api/internal/services/cache"
	"github.com/kcvvelewijt/clubsite-api/internal/services/cms"
)

// fakePageFetcher serves canned pages per collection and records call counts
type fakePageFetcher struct {
	mu        sync.Mutex
	pages     map[string][]*cms.Page
	failPage  map[string]int
	callCount map[string]int
}

func newFakePageFetcher() *fakePageFetcher {
	return &fakePageFetcher{
		pages:     make(map[string][]*cms.Page),
		failPage:  make(map[string]int),
		callCount: make(map[string]int),
	}
}

func (f *fakePageFetcher) FetchPage(ctx context.Context, collection string, page, pageSize int) (*cms.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.callCount[collection]++

	if failOn, ok := f.failPage[collection]; ok && failOn == page {
		return nil, errors.New("upstream unavailable")
	}

	pages := f.pages[collection]
	if page > len(pages) {
		return &cms.Page{HasNextPage: false}, nil
	}
	return pages[page-1], nil
}

func (f *fakePageFetcher) calls(collection string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.callCount[collection]
}

func pageOf(hasNext bool, entries ...any) *cms.Page {
	page := &cms.Page{HasNextPage: hasNext}
	for _, entry := range entries {
		data, err := json.Marshal(entry)
		if err != nil {
			panic(err)
		}
		page.Items = append(page.Items, data)
	}
	return page
}

func TestFetchArticlesFollowsPagination(t *testing.T) {
	upstream := newFakePageFetcher()
	upstream.pages[cms.CollectionArticles] = []*cms.Page{
		pageOf(true, cms.Article{ID: "a1", Title: "First"}),
		pageOf(true, cms.Article{ID: "a2", Title: "Second"}),
		pageOf(false, cms.Article{ID: "a3", Title: "Third"}),
	}

	fetcher := NewCollectionFetcher(upstream, FetcherOptions{PageSize: 50, MaxPages: 20})

	articles, err := fetcher.FetchArticles(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 3)
	assert.Equal(t, "a1", articles[0].ID)
	assert.Equal(t, "a3", articles[2].ID)
	assert.Equal(t, 3, upstream.calls(cms.CollectionArticles))
}

func TestFetchArticlesStopsAtPageCap(t *testing.T) {
	upstream := newFakePageFetcher()
	// Upstream always claims there is another page
	for i := 0; i < 50; i++ {
		upstream.pages[cms.CollectionArticles] = append(
			upstream.pages[cms.CollectionArticles],
			pageOf(true, cms.Article{ID: fmt.Sprintf("a%d", i)}),
		)
	}

	fetcher := NewCollectionFetcher(upstream, FetcherOptions{PageSize: 50, MaxPages: 3})

	articles, err := fetcher.FetchArticles(context.Background())
	require.NoError(t, err)
	assert.Len(t, articles, 3)
	assert.Equal(t, 3, upstream.calls(cms.CollectionArticles))
}

func TestFetchArticlesAbortsOnPageFailure(t *testing.T) {
	upstream := newFakePageFetcher()
	upstream.pages[cms.CollectionArticles] = []*cms.Page{
		pageOf(true, cms.Article{ID: "a1"}),
		pageOf(false, cms.Article{ID: "a2"}),
	}
	upstream.failPage[cms.CollectionArticles] = 2

	fetcher := NewCollectionFetcher(upstream, FetcherOptions{})

	articles, err := fetcher.FetchArticles(context.Background())
	require.Error(t, err)
	assert.Nil(t, articles)
	assert.Contains(t, err.Error(), "page 2")
}

func TestFetchArticlesMalformedEntry(t *testing.T) {
	upstream := newFakePageFetcher()
	upstream.pages[cms.CollectionArticles] = []*cms.Page{
		{Items: []json.RawMessage{json.RawMessage(`{"id": 42}`)}, HasNextPage: false},
	}

	fetcher := NewCollectionFetcher(upstream, FetcherOptions{})

	_, err := fetcher.FetchArticles(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding articles entry")
}

func TestFetchPeopleUsesCache(t *testing.T) {
	upstream := newFakePageFetcher()
	upstream.pages[cms.CollectionPeople] = []*cms.Page{
		pageOf(false, cms.Person{ID: "p1", FirstName: "Jan", LastName: "Peeters"}),
	}

	peopleCache := cache.NewMemoryCache()
	defer peopleCache.Stop()

	fetcher := NewCollectionFetcher(upstream, FetcherOptions{
		PeopleCache:    peopleCache,
		PeopleCacheTTL: time.Minute,
	})

	ctx := context.Background()

	people, err := fetcher.FetchPeople(ctx)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, 1, upstream.calls(cms.CollectionPeople))

	// Warm cache: no further upstream calls
	people, err = fetcher.FetchPeople(ctx)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "Jan", people[0].FirstName)
	assert.Equal(t, 1, upstream.calls(cms.CollectionPeople))
}

func TestFetchPeopleCacheExpiry(t *testing.T) {
	upstream := newFakePageFetcher()
	upstream.pages[cms.CollectionPeople] = []*cms.Page{
		pageOf(false, cms.Person{ID: "p1"}),
	}

	peopleCache := cache.NewMemoryCache()
	defer peopleCache.Stop()

	fetcher := NewCollectionFetcher(upstream, FetcherOptions{
		PeopleCache:    peopleCache,
		PeopleCacheTTL: 10 * time.Millisecond,
	})

	ctx := context.Background()

	_, err := fetcher.FetchPeople(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, upstream.calls(cms.CollectionPeople))

	time.Sleep(20 * time.Millisecond)

	_, err = fetcher.FetchPeople(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, upstream.calls(cms.CollectionPeople))
}

func TestFetchPeopleWithoutCache(t *testing.T) {
	upstream := newFakePageFetcher()
	upstream.pages[cms.CollectionPeople] = []*cms.Page{
		pageOf(false, cms.Person{ID: "p1"}),
	}

	fetcher := NewCollectionFetcher(upstream, FetcherOptions{})

	ctx := context.Background()

	_, err := fetcher.FetchPeople(ctx)
	require.NoError(t, err)
	_, err = fetcher.FetchPeople(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, upstream.calls(cms.CollectionPeople))
}
