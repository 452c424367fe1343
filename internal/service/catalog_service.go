package service

import (
	"context"
	"fmt"

	"places-api/internal/models"
	"places-api/internal/places"
)

// CatalogRepository interface for dependency injection
type CatalogRepository interface {
	ListPlaces(ctx context.Context) ([]models.Place, error)
}

// CatalogService answers queries over the curated attraction catalog.
type CatalogService struct {
	repo         CatalogRepository
	engine       *places.Engine
	suggestLimit int
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo CatalogRepository, engine *places.Engine) *CatalogService {
	return &CatalogService{repo: repo, engine: engine, suggestLimit: places.DefaultSuggestLimit}
}

// Attractions filters and orders the catalog.
func (s *CatalogService) Attractions(ctx context.Context, spec models.QuerySpec) (models.QueryResult, error) {
	list, err := s.repo.ListPlaces(ctx)
	if err != nil {
		return models.QueryResult{}, fmt.Errorf("service: failed to list catalog: %w", err)
	}
	return s.engine.Run(list, spec), nil
}

// Suggest returns quick-search hits for text, at most six.
func (s *CatalogService) Suggest(ctx context.Context, text string) ([]models.Place, error) {
	list, err := s.repo.ListPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list catalog: %w", err)
	}
	return s.engine.Suggest(list, text, s.suggestLimit), nil
}
