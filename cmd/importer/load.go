package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"places-api/internal/config"
	"places-api/internal/models"
	"places-api/internal/places"
	"places-api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var (
	catalogFile string
	rawFile     string
	featuredIDs []string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Import a YAML catalog of canonical places",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(catalogFile)
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		list, err := repository.ParseCatalog(data)
		if err != nil {
			return err
		}
		fmt.Printf("Parsed %d places\n", len(list))
		return importPlaces(cmd.Context(), list)
	},
}

var rawCmd = &cobra.Command{
	Use:   "raw",
	Short: "Normalize and import a JSON array of Foursquare place records",
	RunE: func(cmd *cobra.Command, args []string) error {
		raws, err := parseRaw(rawFile)
		if err != nil {
			return err
		}
		list := normalizeRaw(cmd.Context(), raws, featuredIDs)
		fmt.Printf("Normalized %d of %d records\n", len(list), len(raws))
		return importPlaces(cmd.Context(), list)
	},
}

func init() {
	catalogCmd.Flags().StringVar(&catalogFile, "file", "", "path to the YAML catalog")
	catalogCmd.MarkFlagRequired("file")

	rawCmd.Flags().StringVar(&rawFile, "file", "", "path to the JSON records")
	rawCmd.Flags().StringSliceVar(&featuredIDs, "featured", nil, "place ids to mark as featured")
	rawCmd.MarkFlagRequired("file")
}

func parseRaw(path string) ([]models.RawPlace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	var raws []models.RawPlace
	if err := json.NewDecoder(f).Decode(&raws); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	return raws, nil
}

// normalizeRaw converts raws and skips records that fail validation.
func normalizeRaw(ctx context.Context, raws []models.RawPlace, featured []string) []models.Place {
	isFeatured := make(map[string]bool, len(featured))
	for _, id := range featured {
		isFeatured[id] = true
	}

	list := make([]models.Place, 0, len(raws))
	for i, raw := range raws {
		p, err := places.Normalize(ctx, raw, places.WithFeatured(isFeatured[raw.ID]))
		if err != nil {
			fmt.Printf("Skipping record %d: %v\n", i, err)
			continue
		}
		list = append(list, p)
	}
	return list
}

func importPlaces(ctx context.Context, list []models.Place) error {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if cfg.DBSource == "" {
		return fmt.Errorf("db_source is not configured")
	}

	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer pool.Close()

	repo := repository.NewRepository(pool, cfg.Catalog.Table)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	n, err := repo.InsertPlaces(ctx, list)
	if err != nil {
		return err
	}

	count, err := repo.CountPlaces(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Successfully imported %d places (%d in table)\n", n, count)
	return nil
}
