package search

import (
	"sort"
	"strings"
)

// Rank orders results in place by a three-tier comparator: exact title match
// first, then titles starting with the query, then case-insensitive title
// order. The sort is stable, so results tying on all three keys keep their
// aggregation order; that makes the final ordering deterministic for
// identical inputs even though the comparator alone is not a strict total
// order.
func Rank(results []SearchResult, query string) {
	q := strings.ToLower(query)

	sort.SliceStable(results, func(i, j int) bool {
		ti := strings.ToLower(results[i].Title)
		tj := strings.ToLower(results[j].Title)

		exactI, exactJ := ti == q, tj == q
		if exactI != exactJ {
			return exactI
		}

		prefixI, prefixJ := strings.HasPrefix(ti, q), strings.HasPrefix(tj, q)
		if prefixI != prefixJ {
			return prefixI
		}

		return ti < tj
	})
}
