package search

import (
	"context"
	"fmt"
)

// Aggregator fans a query out across the type matchers implied by a filter
// and concatenates their results in type-processing order. No deduplication
// happens across types: an id collision between, say, an article and a person
// is legitimate and both results are kept, disambiguated by their type.
type Aggregator struct {
	fetcher  *CollectionFetcher
	matchers []Matcher
}

// NewAggregator creates an Aggregator over the default matchers
func NewAggregator(fetcher *CollectionFetcher) *Aggregator {
	return &Aggregator{
		fetcher:  fetcher,
		matchers: defaultMatchers(),
	}
}

// Aggregate runs every matcher admitted by the filter. A failure in any
// matcher fails the whole aggregation; partial results are never returned.
func (a *Aggregator) Aggregate(ctx context.Context, query string, filter TypeFilter) ([]SearchResult, error) {
	var results []SearchResult

	for _, matcher := range a.matchers {
		if !filter.Includes(matcher.Type()) {
			continue
		}

		matched, err := matcher.Collect(ctx, a.fetcher, query)
		if err != nil {
			return nil, fmt.Errorf("collecting %s results: %w", matcher.Type(), err)
		}
		results = append(results, matched...)
	}

	return results, nil
}
