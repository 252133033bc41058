package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcvvelewijt/clubsite-api/internal/services/cms"
)

func fixtureUpstream() *fakePageFetcher {
	upstream := newFakePageFetcher()
	upstream.pages[cms.CollectionArticles] = []*cms.Page{
		pageOf(false,
			cms.Article{ID: "a1", Title: "Tournament recap", Slug: "tournament-recap", Body: "u15 results"},
		),
	}
	upstream.pages[cms.CollectionPeople] = []*cms.Page{
		pageOf(false,
			cms.Person{ID: "p1", FirstName: "Tom", LastName: "Tournee", Slug: "tom-tournee"},
		),
	}
	upstream.pages[cms.CollectionTeams] = []*cms.Page{
		pageOf(false,
			cms.Team{ID: "t1", Title: "U15 Tournament Squad", Slug: "u15-tournament"},
		),
	}
	return upstream
}

func TestAggregateAllTypesInOrder(t *testing.T) {
	upstream := fixtureUpstream()
	aggregator := NewAggregator(NewCollectionFetcher(upstream, FetcherOptions{}))

	results, err := aggregator.Aggregate(context.Background(), "tourn", FilterAll)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Concatenation order before ranking: articles, people, teams
	assert.Equal(t, TypeArticle, results[0].Type)
	assert.Equal(t, TypePerson, results[1].Type)
	assert.Equal(t, TypeTeam, results[2].Type)
}

func TestAggregateFilterFetchesOnlyThatCollection(t *testing.T) {
	upstream := fixtureUpstream()
	aggregator := NewAggregator(NewCollectionFetcher(upstream, FetcherOptions{}))

	results, err := aggregator.Aggregate(context.Background(), "tourn", TypeFilter(TypeTeam))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, TypeTeam, results[0].Type)

	assert.Equal(t, 0, upstream.calls(cms.CollectionArticles))
	assert.Equal(t, 0, upstream.calls(cms.CollectionPeople))
	assert.Equal(t, 1, upstream.calls(cms.CollectionTeams))
}

func TestAggregateFailsWhenOneCollectionFails(t *testing.T) {
	upstream := fixtureUpstream()
	upstream.failPage[cms.CollectionPeople] = 1
	aggregator := NewAggregator(NewCollectionFetcher(upstream, FetcherOptions{}))

	results, err := aggregator.Aggregate(context.Background(), "tourn", FilterAll)
	require.Error(t, err)
	assert.Nil(t, results)
	assert.Contains(t, err.Error(), "collecting person results")
}

func TestAggregateKeepsIDCollisionsAcrossTypes(t *testing.T) {
	upstream := newFakePageFetcher()
	upstream.pages[cms.CollectionArticles] = []*cms.Page{
		pageOf(false, cms.Article{ID: "42", Title: "Shared id article"}),
	}
	upstream.pages[cms.CollectionPeople] = []*cms.Page{
		pageOf(false, cms.Person{ID: "42", FirstName: "Shared", LastName: "Id"}),
	}
	upstream.pages[cms.CollectionTeams] = []*cms.Page{pageOf(false)}

	aggregator := NewAggregator(NewCollectionFetcher(upstream, FetcherOptions{}))

	results, err := aggregator.Aggregate(context.Background(), "shared", FilterAll)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}
