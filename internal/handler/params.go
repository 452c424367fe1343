package handler

import (
	"fmt"
	"strconv"
	"strings"

	"places-api/internal/foursquare"
	"places-api/internal/models"

	"github.com/gin-gonic/gin"
)

// parseQuerySpec reads the catalog query parameters q, type, continent,
// min_rating, featured and sort.
func parseQuerySpec(c *gin.Context) (models.QuerySpec, error) {
	spec := models.QuerySpec{
		Text:      c.Query("q"),
		Type:      models.Category(strings.ToLower(c.DefaultQuery("type", string(models.CategoryAll)))),
		Continent: c.DefaultQuery("continent", "all"),
		SortBy:    models.SortKey(c.DefaultQuery("sort", string(models.SortRelevance))),
	}

	if s := c.Query("min_rating"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return spec, fmt.Errorf("invalid min_rating format")
		}
		spec.MinRating = v
	}

	if s := c.Query("featured"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return spec, fmt.Errorf("invalid featured format")
		}
		spec.FeaturedOnly = v
	}

	return spec, nil
}

// parseSearchParams reads the upstream search parameters.
func parseSearchParams(c *gin.Context) (foursquare.SearchParams, error) {
	params := foursquare.SearchParams{
		Query:      c.Query("query"),
		Near:       c.Query("near"),
		LL:         c.Query("ll"),
		Categories: c.Query("categories"),
		Fields:     c.Query("fields"),
		Sort:       c.Query("upstream_sort"),
		Limit:      foursquare.DefaultSearchLimit,
	}

	if s := c.Query("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > 50 {
			return params, fmt.Errorf("invalid limit: must be an integer between 1 and 50")
		}
		params.Limit = v
	}

	if s := c.Query("radius"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return params, fmt.Errorf("invalid radius format")
		}
		params.Radius = v
	}

	if params.Query == "" && params.Near == "" && params.LL == "" {
		return params, fmt.Errorf("missing required query parameter 'query', 'near' or 'll'")
	}
	return params, nil
}
