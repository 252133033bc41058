package cms

import "encoding/json"

// Collection identifiers understood by the content delivery API.
const (
	CollectionArticles = "articles"
	CollectionPeople   = "people"
	CollectionTeams    = "teams"
)

// Page is one page of entries from a collection
type Page struct {
	Items       []json.RawMessage `json:"items"`
	Page        int               `json:"page"`
	PageSize    int               `json:"pageSize"`
	Total       int               `json:"total"`
	HasNextPage bool              `json:"hasNextPage"`
}

// Tag is a taxonomy term attached to an article
type Tag struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Article is a news article entry
type Article struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Summary string `json:"summary"`
	Body    string `json:"body"`
	Tags    []Tag  `json:"tags"`
	Date    string `json:"date"`
	Image   string `json:"image"`
}

// Person is a player or staff member entry. Staff members live in the same
// collection as players and are distinguished only by a missing shirt number.
type Person struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Title        string `json:"title"`
	Position     string `json:"position"`
	PositionCode string `json:"positionCode"`
	ShirtNumber  *int   `json:"shirtNumber"`
	Slug         string `json:"slug"`
	Image        string `json:"image"`
}

// Team is a team page entry
type Team struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Image string `json:"image"`
}
