package places

import (
	"context"
	"fmt"

	"places-api/internal/models"

	"github.com/rs/zerolog/log"
)

// PlaceholderPhotoURL is served for places without any resolvable photo.
const PlaceholderPhotoURL = "/placeholder.svg"

// PhotoFetcher looks up photos for a place outside of its primary payload.
type PhotoFetcher interface {
	FetchPhotos(ctx context.Context, placeID string) ([]models.PhotoRef, error)
}

// PhotoFetcherFunc adapts a plain function to PhotoFetcher.
type PhotoFetcherFunc func(ctx context.Context, placeID string) ([]models.PhotoRef, error)

func (f PhotoFetcherFunc) FetchPhotos(ctx context.Context, placeID string) ([]models.PhotoRef, error) {
	return f(ctx, placeID)
}

// PhotoURL builds the full-size URL of a photo reference.
func PhotoURL(p models.PhotoRef) (string, bool) {
	if p.Prefix == "" || p.Suffix == "" {
		return "", false
	}
	return p.Prefix + "original" + p.Suffix, true
}

// photoResolver yields a URL or reports absence so the next resolver runs.
type photoResolver func(ctx context.Context, raw models.RawPlace) (string, bool)

// firstPhoto runs resolvers in order and returns the first hit.
func firstPhoto(ctx context.Context, raw models.RawPlace, resolvers ...photoResolver) (string, bool) {
	for _, resolve := range resolvers {
		if url, ok := resolve(ctx, raw); ok {
			return url, true
		}
	}
	return "", false
}

func embeddedPhoto(_ context.Context, raw models.RawPlace) (string, bool) {
	if len(raw.Photos) == 0 {
		return "", false
	}
	return PhotoURL(raw.Photos[0])
}

func fetchedPhoto(fetcher PhotoFetcher) photoResolver {
	return func(ctx context.Context, raw models.RawPlace) (string, bool) {
		if fetcher == nil {
			return "", false
		}
		photos, err := fetcher.FetchPhotos(ctx, raw.ID)
		if err != nil {
			log.Debug().
				Err(fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)).
				Str("place_id", raw.ID).
				Msg("photo lookup failed, using placeholder")
			return "", false
		}
		if len(photos) == 0 {
			return "", false
		}
		return PhotoURL(photos[0])
	}
}

func resolvePhoto(ctx context.Context, raw models.RawPlace, fetcher PhotoFetcher) string {
	if url, ok := firstPhoto(ctx, raw, embeddedPhoto, fetchedPhoto(fetcher)); ok {
		return url
	}
	return PlaceholderPhotoURL
}
