package models

// SortKey selects the result ordering of a catalog query.
type SortKey string

const (
	SortRelevance SortKey = "relevance"
	SortRating    SortKey = "rating"
	SortViews     SortKey = "views"
	SortName      SortKey = "name"
)

// QuerySpec describes free text, structured filters and the sort order of a query.
// Zero values mean "no filter": empty Type/Continent behave like "all".
type QuerySpec struct {
	Text         string   `json:"text,omitempty"`
	Type         Category `json:"type,omitempty"`
	Continent    string   `json:"continent,omitempty"`
	MinRating    float64  `json:"min_rating,omitempty"`
	FeaturedOnly bool     `json:"featured_only,omitempty"`
	SortBy       SortKey  `json:"sort_by,omitempty"`
}

// QueryResult is an ordered result list and its length.
type QueryResult struct {
	Places []Place `json:"data"`
	Total  int     `json:"total"`
}
