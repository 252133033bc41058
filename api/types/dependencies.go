package types

import (
	"context"

	"github.com/kcvvelewijt/clubsite-api/internal/services/search"
)

// Searcher is the search capability handlers depend on
type Searcher interface {
	Search(ctx context.Context, query string, filter search.TypeFilter) (*search.Response, error)
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	SearchService Searcher
}
