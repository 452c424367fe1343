package repository

import (
	"context"
	"fmt"

	"places-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// DefaultTable is the catalog table used when none is configured.
const DefaultTable = "places"

var placeColumns = []string{
	"id", "name", "description", "location", "latitude", "longitude",
	"rating", "photo_url", "country", "continent", "category", "featured", "views",
}

// Repository reads the attraction catalog from PostgreSQL.
type Repository struct {
	db    *pgxpool.Pool
	table string
}

// NewRepository creates a new PostgreSQL catalog repository
func NewRepository(db *pgxpool.Pool, table string) *Repository {
	if table == "" {
		table = DefaultTable
	}
	return &Repository{db: db, table: table}
}

// SchemaSQL returns the DDL of a catalog table. Rows keep their import order
// through the position column.
func SchemaSQL(table string) string {
	t := pq.QuoteIdentifier(table)
	return fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %[1]s (
		position BIGSERIAL PRIMARY KEY,
		id TEXT NOT NULL UNIQUE CHECK (id <> ''),
		name TEXT NOT NULL CHECK (name <> ''),
		description TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		longitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		rating DOUBLE PRECISION NOT NULL DEFAULT 4.5 CHECK (rating BETWEEN 0 AND 5),
		photo_url TEXT NOT NULL DEFAULT '',
		country TEXT NOT NULL DEFAULT '',
		continent TEXT NOT NULL DEFAULT 'Unknown',
		category TEXT NOT NULL CHECK (category IN ('landmark', 'city', 'nature', 'historical')),
		featured BOOLEAN NOT NULL DEFAULT FALSE,
		views TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS %[2]s ON %[1]s (continent, category);
	`, t, pq.QuoteIdentifier(table+"_continent_category_idx"))
}

// EnsureSchema creates the catalog table if it does not exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, SchemaSQL(r.table)); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// ListPlaces returns every catalog place in import order.
func (r *Repository) ListPlaces(ctx context.Context) ([]models.Place, error) {
	sql := fmt.Sprintf(`
		SELECT
			id,
			name,
			description,
			location,
			latitude,
			longitude,
			rating,
			photo_url,
			country,
			continent,
			category,
			featured,
			views
		FROM %s
		ORDER BY position
	`, pq.QuoteIdentifier(r.table))

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute catalog query: %w", err)
	}
	defer rows.Close()

	list := []models.Place{}
	for rows.Next() {
		var p models.Place
		var category string
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Location,
			&p.Coordinates.Latitude,
			&p.Coordinates.Longitude,
			&p.Rating,
			&p.PhotoURL,
			&p.Country,
			&p.Continent,
			&category,
			&p.Featured,
			&p.Views,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan place: %w", err)
		}
		p.Category = models.Category(category)
		list = append(list, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return list, nil
}

// InsertPlaces bulk-loads places with COPY and returns the number of rows written.
func (r *Repository) InsertPlaces(ctx context.Context, list []models.Place) (int64, error) {
	n, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{r.table},
		placeColumns,
		pgx.CopyFromSlice(len(list), func(i int) ([]any, error) {
			p := list[i]
			return []any{
				p.ID, p.Name, p.Description, p.Location,
				p.Coordinates.Latitude, p.Coordinates.Longitude,
				p.Rating, p.PhotoURL, p.Country, p.Continent,
				string(p.Category), p.Featured, p.Views,
			}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy places: %w", err)
	}
	return n, nil
}

// CountPlaces returns the number of catalog rows.
func (r *Repository) CountPlaces(ctx context.Context) (int, error) {
	var count int
	sql := fmt.Sprintf("SELECT COUNT(*) FROM %s", pq.QuoteIdentifier(r.table))
	if err := r.db.QueryRow(ctx, sql).Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count places: %w", err)
	}
	return count, nil
}
