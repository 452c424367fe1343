package main

import (
	"encoding/json"
	"os"

	"places-api/internal/models"
	"places-api/internal/places"
	"places-api/internal/repository"

	"github.com/spf13/cobra"
)

var (
	queryFile   string
	querySpec   models.QuerySpec
	queryType   string
	querySort   string
	queryLocale string
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run a catalog query against a YAML catalog and print JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := repository.LoadMemoryCatalog(queryFile)
		if err != nil {
			return err
		}
		list, err := catalog.ListPlaces(cmd.Context())
		if err != nil {
			return err
		}

		spec := querySpec
		spec.Type = models.Category(queryType)
		spec.SortBy = models.SortKey(querySort)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(places.NewEngine(queryLocale).Run(list, spec))
	},
}

func init() {
	f := queryCmd.Flags()
	f.StringVar(&queryFile, "file", "", "YAML catalog (default: embedded catalog)")
	f.StringVar(&querySpec.Text, "q", "", "free-text filter")
	f.StringVar(&queryType, "type", "all", "landmark, city, nature, historical or all")
	f.StringVar(&querySpec.Continent, "continent", "all", "continent filter")
	f.Float64Var(&querySpec.MinRating, "min-rating", 0, "minimum rating")
	f.BoolVar(&querySpec.FeaturedOnly, "featured", false, "featured places only")
	f.StringVar(&querySort, "sort", "relevance", "relevance, rating, views or name")
	f.StringVar(&queryLocale, "locale", "en", "collation locale for name sorting")
}
