package search

import "context"

// Service runs the search pipeline: fetch, match, rank
type Service struct {
	aggregator *Aggregator
}

// NewService creates a search Service on top of a collection fetcher
func NewService(fetcher *CollectionFetcher) *Service {
	return &Service{aggregator: NewAggregator(fetcher)}
}

// Search aggregates and ranks results for a normalized query. The query must
// already have passed NormalizeQuery; validation is the endpoint's job.
func (s *Service) Search(ctx context.Context, query string, filter TypeFilter) (*Response, error) {
	results, err := s.aggregator.Aggregate(ctx, query, filter)
	if err != nil {
		return nil, err
	}

	Rank(results, query)

	if results == nil {
		results = []SearchResult{}
	}

	return &Response{
		Query:   query,
		Count:   len(results),
		Results: results,
	}, nil
}
