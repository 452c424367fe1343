package models

// Category is the coarse classification every canonical place carries.
type Category string

const (
	CategoryLandmark   Category = "landmark"
	CategoryCity       Category = "city"
	CategoryNature     Category = "nature"
	CategoryHistorical Category = "historical"

	// CategoryAll is a filter value only; no place is ever classified as "all".
	CategoryAll Category = "all"
)

// Valid reports whether c is one of the four place categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryLandmark, CategoryCity, CategoryNature, CategoryHistorical:
		return true
	}
	return false
}

// Coordinates is a latitude/longitude pair. (0,0) means the position is unknown.
type Coordinates struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Known reports whether the coordinates carry a real position.
func (c Coordinates) Known() bool {
	return c.Latitude != 0 || c.Longitude != 0
}

// Place is the canonical, provider-independent point of interest returned by the API.
type Place struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Location    string      `json:"location,omitempty" yaml:"location"`
	Coordinates Coordinates `json:"coordinates" yaml:"coordinates"`
	Rating      float64     `json:"rating" yaml:"rating"`
	PhotoURL    string      `json:"photo_url" yaml:"photo_url"`
	Country     string      `json:"country,omitempty" yaml:"country"`
	Continent   string      `json:"continent" yaml:"continent"`
	Category    Category    `json:"category" yaml:"category"`
	Featured    bool        `json:"featured" yaml:"featured"`
	Views       string      `json:"views,omitempty" yaml:"views"`
}

// PlaceDetails is a place together with the provider extras shown on a detail page.
type PlaceDetails struct {
	Place
	Website string  `json:"website,omitempty"`
	Tel     string  `json:"tel,omitempty"`
	Hours   *Hours  `json:"hours,omitempty"`
	Stats   *Stats  `json:"stats,omitempty"`
	Photos  []Photo `json:"photos"`
}

// Photo is a gallery entry with its resolved full-size URL.
type Photo struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at,omitempty"`
	Prefix    string `json:"prefix"`
	Suffix    string `json:"suffix"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	URL       string `json:"url"`
}
