package service

import (
	"context"
	"fmt"
	"time"

	"places-api/internal/foursquare"
	"places-api/internal/models"
	"places-api/internal/places"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// PlaceProvider is the upstream places API.
type PlaceProvider interface {
	SearchPlaces(ctx context.Context, params foursquare.SearchParams) ([]models.RawPlace, error)
	GetPlace(ctx context.Context, id string) (models.RawPlace, error)
	GetPlacePhotos(ctx context.Context, id string, limit int) ([]models.PhotoRef, error)
}

// SearchOptions tunes how provider records are normalized.
type SearchOptions struct {
	// LookupPhotos enables a per-record photo request for search results
	// that do not embed a photo.
	LookupPhotos bool
	PhotoTimeout time.Duration
	Concurrency  int
	// GalleryLimit caps the photos fetched for a detail page.
	GalleryLimit int
}

// PlaceSearchService proxies the upstream places API and normalizes its answers.
type PlaceSearchService struct {
	provider PlaceProvider
	engine   *places.Engine
	opts     SearchOptions
}

// NewPlaceSearchService creates a new place search service
func NewPlaceSearchService(provider PlaceProvider, engine *places.Engine, opts SearchOptions) *PlaceSearchService {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.GalleryLimit < 1 {
		opts.GalleryLimit = foursquare.DefaultPhotoLimit
	}
	return &PlaceSearchService{provider: provider, engine: engine, opts: opts}
}

// Search fetches places from the provider, normalizes them and runs spec over
// the normalized set. Records without id or name are dropped.
func (s *PlaceSearchService) Search(ctx context.Context, params foursquare.SearchParams, spec models.QuerySpec) (models.QueryResult, error) {
	raws, err := s.provider.SearchPlaces(ctx, params)
	if err != nil {
		return models.QueryResult{}, fmt.Errorf("service: failed to search places: %w", err)
	}

	normalized, err := s.normalizeAll(ctx, raws)
	if err != nil {
		return models.QueryResult{}, fmt.Errorf("service: failed to normalize places: %w", err)
	}

	return s.engine.Run(normalized, spec), nil
}

// Details fetches one place with its photo gallery. A failed photo request
// leaves the gallery empty instead of failing the call.
func (s *PlaceSearchService) Details(ctx context.Context, id string) (models.PlaceDetails, error) {
	if id == "" {
		return models.PlaceDetails{}, fmt.Errorf("service: place id cannot be empty")
	}

	raw, err := s.provider.GetPlace(ctx, id)
	if err != nil {
		return models.PlaceDetails{}, fmt.Errorf("service: failed to get place: %w", err)
	}

	photos, err := s.provider.GetPlacePhotos(ctx, id, s.opts.GalleryLimit)
	if err != nil {
		log.Warn().Err(err).Str("place_id", id).Msg("photo gallery unavailable")
		photos = nil
	}
	if len(photos) > 0 {
		raw.Photos = photos
	}

	place, err := places.Normalize(ctx, raw)
	if err != nil {
		return models.PlaceDetails{}, fmt.Errorf("service: failed to normalize place: %w", err)
	}

	return models.PlaceDetails{
		Place:   place,
		Website: raw.Website,
		Tel:     raw.Tel,
		Hours:   raw.Hours,
		Stats:   raw.Stats,
		Photos:  gallery(raw.Photos),
	}, nil
}

// normalizeAll normalizes raws concurrently and keeps their order.
func (s *PlaceSearchService) normalizeAll(ctx context.Context, raws []models.RawPlace) ([]models.Place, error) {
	out := make([]models.Place, len(raws))
	valid := make([]bool, len(raws))
	fetcher := s.photoFetcher()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)
	for i, raw := range raws {
		i, raw := i, raw
		g.Go(func() error {
			p, err := places.Normalize(gctx, raw, places.WithPhotoFetcher(fetcher))
			if err != nil {
				if places.IsValidationError(err) {
					log.Warn().Err(err).Msg("dropping invalid place record")
					return nil
				}
				return err
			}
			out[i] = p
			valid[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	kept := out[:0]
	for i, p := range out {
		if valid[i] {
			kept = append(kept, p)
		}
	}
	return kept, nil
}

func (s *PlaceSearchService) photoFetcher() places.PhotoFetcher {
	if !s.opts.LookupPhotos {
		return nil
	}
	return places.PhotoFetcherFunc(func(ctx context.Context, id string) ([]models.PhotoRef, error) {
		if s.opts.PhotoTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.opts.PhotoTimeout)
			defer cancel()
		}
		return s.provider.GetPlacePhotos(ctx, id, 1)
	})
}

func gallery(refs []models.PhotoRef) []models.Photo {
	photos := make([]models.Photo, 0, len(refs))
	for _, ref := range refs {
		url, ok := places.PhotoURL(ref)
		if !ok {
			continue
		}
		photos = append(photos, models.Photo{
			ID:        ref.ID,
			CreatedAt: ref.CreatedAt,
			Prefix:    ref.Prefix,
			Suffix:    ref.Suffix,
			Width:     ref.Width,
			Height:    ref.Height,
			URL:       url,
		})
	}
	return photos
}
