//go:build integration

package repository

import (
	"context"
	"testing"

	"places-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

func TestRepository_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool, "tour places")
	ctx := context.Background()

	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.EnsureSchema(ctx), "schema creation is idempotent")

	seed := []models.Place{
		{
			ID:          "kyoto",
			Name:        "Kyoto",
			Description: "Temples and gardens",
			Location:    "Kyoto, Japan",
			Coordinates: models.Coordinates{Latitude: 35.0116, Longitude: 135.7681},
			Rating:      4.9,
			PhotoURL:    "/placeholder.svg",
			Country:     "Japan",
			Continent:   "Asia",
			Category:    models.CategoryCity,
			Views:       "850K",
		},
		{
			ID:          "eiffel-tower",
			Name:        "Eiffel Tower",
			Description: "Iconic iron tower",
			Location:    "Paris, France",
			Rating:      4.8,
			PhotoURL:    "/placeholder.svg",
			Country:     "France",
			Continent:   "Europe",
			Category:    models.CategoryLandmark,
			Featured:    true,
			Views:       "1.2M",
		},
	}

	n, err := repo.InsertPlaces(ctx, seed)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	count, err := repo.CountPlaces(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	got, err := repo.ListPlaces(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed, got, "rows come back in import order")
}

func TestRepository_EmptyTable(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool, "")
	ctx := context.Background()
	require.NoError(t, repo.EnsureSchema(ctx))

	got, err := repo.ListPlaces(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Place{}, got)
}
