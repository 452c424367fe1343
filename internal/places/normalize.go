// Package places turns provider records into canonical places and runs
// catalog queries over them. Everything here is pure over its inputs; the
// only I/O is the optional photo lookup a caller passes in.
package places

import (
	"context"
	"math"
	"strings"

	"places-api/internal/models"
)

const (
	// DefaultRating is used when the provider has no rating for a place.
	DefaultRating = 4.5
	MaxRating     = 5.0
)

type options struct {
	photos   PhotoFetcher
	featured bool
}

// Option configures a single Normalize call.
type Option func(*options)

// WithPhotoFetcher enables the photo lookup used when the record embeds no photo.
func WithPhotoFetcher(f PhotoFetcher) Option {
	return func(o *options) { o.photos = f }
}

// WithFeatured marks the resulting place as featured.
func WithFeatured(featured bool) Option {
	return func(o *options) { o.featured = featured }
}

// Normalize converts a raw provider record into a canonical place. Missing
// optional fields get their documented defaults; a missing id or name is a
// *ValidationError.
func Normalize(ctx context.Context, raw models.RawPlace, opts ...Option) (models.Place, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if strings.TrimSpace(raw.ID) == "" {
		return models.Place{}, &ValidationError{Field: "id"}
	}
	if strings.TrimSpace(raw.Name) == "" {
		return models.Place{}, &ValidationError{Field: "name", ID: raw.ID}
	}

	description := raw.Description
	if description == "" {
		description = "Explore " + raw.Name
	}

	return models.Place{
		ID:          raw.ID,
		Name:        raw.Name,
		Description: description,
		Location:    locationLabel(raw.Location),
		Coordinates: coordinates(raw.Geocodes),
		Rating:      ConvertRating(raw.Rating),
		PhotoURL:    resolvePhoto(ctx, raw, o.photos),
		Country:     raw.Location.Country,
		Continent:   ContinentOf(raw.Location.Country),
		Category:    Classify(raw.Categories),
		Featured:    o.featured,
	}, nil
}

// ConvertRating maps a 0-10 provider rating onto the 0-5 scale.
func ConvertRating(upstream *float64) float64 {
	if upstream == nil || math.IsNaN(*upstream) {
		return DefaultRating
	}
	return ClampRating(*upstream / 2)
}

// ClampRating forces r into [0, MaxRating].
func ClampRating(r float64) float64 {
	if math.IsNaN(r) || r < 0 {
		return 0
	}
	if r > MaxRating {
		return MaxRating
	}
	return r
}

func coordinates(g *models.RawGeocodes) models.Coordinates {
	if g == nil || g.Main == nil {
		return models.Coordinates{}
	}
	return models.Coordinates{Latitude: g.Main.Latitude, Longitude: g.Main.Longitude}
}

func locationLabel(loc models.RawLocation) string {
	if loc.FormattedAddress != "" {
		return loc.FormattedAddress
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{loc.Locality, loc.Region, loc.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
