package search

import (
	"errors"
	"strings"
)

// ContentType identifies one searchable content collection
type ContentType string

const (
	TypeArticle ContentType = "article"
	TypePerson  ContentType = "person"
	TypeTeam    ContentType = "team"
)

// TypeFilter restricts a search to one content type. The zero value matches
// all types.
type TypeFilter string

// FilterAll matches every content type
const FilterAll TypeFilter = ""

// Validation errors reported before any fetch work begins
var (
	ErrQueryRequired = errors.New("search query is required")
	ErrQueryTooShort = errors.New("search query must be at least 2 characters")
	ErrInvalidType   = errors.New("invalid type")
)

// Includes reports whether the filter admits the given content type
func (f TypeFilter) Includes(t ContentType) bool {
	return f == FilterAll || string(f) == string(t)
}

// Param returns the URL query parameter value for the filter, empty for all
func (f TypeFilter) Param() string {
	return string(f)
}

// NormalizeQuery trims the raw query and enforces the minimum length.
// Queries failing normalization never reach the aggregation pipeline.
func NormalizeQuery(raw string) (string, error) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return "", ErrQueryRequired
	}
	if len([]rune(q)) < 2 {
		return "", ErrQueryTooShort
	}
	return q, nil
}

// ParseTypeFilter validates a raw type parameter, case-insensitively.
// An empty value means no filter.
func ParseTypeFilter(raw string) (TypeFilter, error) {
	if raw == "" {
		return FilterAll, nil
	}
	switch ContentType(strings.ToLower(raw)) {
	case TypeArticle:
		return TypeFilter(TypeArticle), nil
	case TypePerson:
		return TypeFilter(TypePerson), nil
	case TypeTeam:
		return TypeFilter(TypeTeam), nil
	default:
		return FilterAll, ErrInvalidType
	}
}

// SearchResult is one ranked entry in a search response. Constructed once per
// matching upstream item per request and never mutated afterwards.
type SearchResult struct {
	ID          string      `json:"id"`
	Type        ContentType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	URL         string      `json:"url"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Date        string      `json:"date,omitempty"`
}

// Response is the body of a successful search. Count always equals
// len(Results).
type Response struct {
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	Results []SearchResult `json:"results"`
}
