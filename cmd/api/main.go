package main

import (
	"context"
	"os"

	"places-api/internal/config"
	"places-api/internal/foursquare"
	"places-api/internal/handler"
	"places-api/internal/places"
	"places-api/internal/repository"
	"places-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	setupLogger(config.Log.Level, config.Log.Pretty)

	if config.Foursquare.APIKey == "" {
		log.Warn().Msg("foursquare api key is not set, /api/places will fail upstream")
	}

	catalog, closeCatalog := openCatalog(config)
	defer closeCatalog()

	// Initialize layers
	engine := places.NewEngine(config.Catalog.Locale)
	client := foursquare.NewClient(config.Foursquare.BaseURL, config.Foursquare.APIKey, config.Foursquare.Timeout)

	placeSearchService := service.NewPlaceSearchService(client, engine, service.SearchOptions{
		LookupPhotos: config.Normalizer.LookupPhotos,
		PhotoTimeout: config.Normalizer.PhotoTimeout,
		Concurrency:  config.Normalizer.Concurrency,
	})
	catalogService := service.NewCatalogService(catalog, engine)

	placesHandler := handler.NewPlacesHandler(placeSearchService)
	attractionsHandler := handler.NewAttractionsHandler(catalogService)

	if config.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := handler.NewRouter(placesHandler, attractionsHandler)

	log.Info().Str("addr", config.ServerAddress).Str("catalog", config.Catalog.Source).Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogger(level string, pretty bool) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func openCatalog(cfg config.Config) (service.CatalogRepository, func()) {
	if cfg.Catalog.Source == "postgres" {
		// Database connection
		conn, err := pgxpool.New(context.Background(), cfg.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		return repository.NewRepository(conn, cfg.Catalog.Table), conn.Close
	}

	catalog, err := repository.LoadMemoryCatalog(cfg.Catalog.File)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load catalog")
	}
	return catalog, func() {}
}
