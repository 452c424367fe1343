package models

// RawPlace is a place record as returned by the Foursquare Places API (v3).
// Every field except ID and Name may be missing.
type RawPlace struct {
	ID          string        `json:"fsq_id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Location    RawLocation   `json:"location"`
	Geocodes    *RawGeocodes  `json:"geocodes,omitempty"`
	Categories  []RawCategory `json:"categories,omitempty"`
	Rating      *float64      `json:"rating,omitempty"`
	Photos      []PhotoRef    `json:"photos,omitempty"`
	Stats       *Stats        `json:"stats,omitempty"`
	Website     string        `json:"website,omitempty"`
	Tel         string        `json:"tel,omitempty"`
	Hours       *Hours        `json:"hours,omitempty"`
}

type RawLocation struct {
	Country          string `json:"country,omitempty"`
	Locality         string `json:"locality,omitempty"`
	Region           string `json:"region,omitempty"`
	Address          string `json:"address,omitempty"`
	FormattedAddress string `json:"formatted_address,omitempty"`
}

type RawGeocodes struct {
	Main *RawPoint `json:"main,omitempty"`
}

type RawPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type RawCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PhotoRef is a provider photo reference. The image URL is built from
// prefix, a size token and suffix.
type PhotoRef struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at,omitempty"`
	Prefix    string `json:"prefix"`
	Suffix    string `json:"suffix"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
}

type Stats struct {
	TotalPhotos  int `json:"total_photos"`
	TotalRatings int `json:"total_ratings"`
	TotalTips    int `json:"total_tips"`
}

type Hours struct {
	Display string `json:"display,omitempty"`
	OpenNow *bool  `json:"open_now,omitempty"`
}
