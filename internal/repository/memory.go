package repository

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"places-api/internal/models"
	"places-api/internal/places"

	"gopkg.in/yaml.v3"
)

//go:embed seed/catalog.yaml
var defaultCatalog []byte

type catalogFile struct {
	Places []models.Place `yaml:"places"`
}

// MemoryCatalog serves a fixed, read-only list of places.
type MemoryCatalog struct {
	places []models.Place
}

// NewMemoryCatalog creates a catalog over the given places in their given order.
func NewMemoryCatalog(list []models.Place) *MemoryCatalog {
	return &MemoryCatalog{places: list}
}

// LoadMemoryCatalog reads a YAML catalog file. An empty path loads the
// embedded default catalog.
func LoadMemoryCatalog(path string) (*MemoryCatalog, error) {
	data := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to read catalog: %w", err)
		}
		data = b
	}

	list, err := ParseCatalog(data)
	if err != nil {
		return nil, err
	}
	return NewMemoryCatalog(list), nil
}

// ParseCatalog decodes and validates a YAML catalog document.
func ParseCatalog(data []byte) ([]models.Place, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("repository: failed to parse catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Places))
	for i := range f.Places {
		p := &f.Places[i]
		if p.ID == "" {
			return nil, fmt.Errorf("repository: catalog entry %d: %w", i, &places.ValidationError{Field: "id"})
		}
		if p.Name == "" {
			return nil, fmt.Errorf("repository: catalog entry %d: %w", i, &places.ValidationError{Field: "name", ID: p.ID})
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("repository: duplicate catalog id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
		fillDefaults(p)
	}
	return f.Places, nil
}

// fillDefaults applies the canonical defaults to hand-written catalog entries.
func fillDefaults(p *models.Place) {
	if p.Description == "" {
		p.Description = "Explore " + p.Name
	}
	if p.PhotoURL == "" {
		p.PhotoURL = places.PlaceholderPhotoURL
	}
	if p.Continent == "" {
		p.Continent = places.ContinentOf(p.Country)
	}
	if !p.Category.Valid() {
		p.Category = models.CategoryLandmark
	}
	p.Rating = places.ClampRating(p.Rating)
}

// ListPlaces returns a copy of the catalog.
func (m *MemoryCatalog) ListPlaces(ctx context.Context) ([]models.Place, error) {
	out := make([]models.Place, len(m.places))
	copy(out, m.places)
	return out, nil
}
