package handler

import (
	"context"
	"net/http"

	"places-api/internal/foursquare"
	"places-api/internal/models"

	"github.com/gin-gonic/gin"
)

// PlaceSearchService interface for dependency injection
type PlaceSearchService interface {
	Search(context.Context, foursquare.SearchParams, models.QuerySpec) (models.QueryResult, error)
	Details(context.Context, string) (models.PlaceDetails, error)
}

// PlacesHandler handles the places proxy endpoints
type PlacesHandler struct {
	service PlaceSearchService
}

// NewPlacesHandler creates a new places handler
func NewPlacesHandler(svc PlaceSearchService) *PlacesHandler {
	return &PlacesHandler{service: svc}
}

type listResponse struct {
	Success bool           `json:"success"`
	Data    []models.Place `json:"data"`
	Total   int            `json:"total"`
}

type detailsResponse struct {
	Success bool                `json:"success"`
	Data    models.PlaceDetails `json:"data"`
}

// Search handles GET /api/places requests
//
//	@Summary	Search places through the upstream places API
//	@Tags		places
//	@Produce	json
//	@Param		query		query	string	false	"upstream search text"
//	@Param		near		query	string	false	"place name to search near"
//	@Param		ll			query	string	false	"latitude,longitude"
//	@Param		limit		query	int		false	"upstream result limit (1-50)"
//	@Param		q			query	string	false	"filter text"
//	@Param		type		query	string	false	"landmark, city, nature, historical or all"
//	@Param		continent	query	string	false	"continent or all"
//	@Param		min_rating	query	number	false	"minimum rating (0-5)"
//	@Param		featured	query	bool	false	"featured places only"
//	@Param		sort		query	string	false	"relevance, rating, views or name"
//	@Success	200	{object}	listResponse
//	@Failure	400	{object}	errorResponse
//	@Failure	500	{object}	errorResponse
//	@Router		/api/places [get]
func (h *PlacesHandler) Search(c *gin.Context) {
	params, err := parseSearchParams(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	spec, err := parseQuerySpec(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	result, err := h.service.Search(c.Request.Context(), params, spec)
	if err != nil {
		respondError(c, err, "Failed to fetch places")
		return
	}

	c.JSON(http.StatusOK, listResponse{Success: true, Data: result.Places, Total: result.Total})
}

// Details handles GET /api/places/:id requests
//
//	@Summary	Place details with photo gallery
//	@Tags		places
//	@Produce	json
//	@Param		id	path	string	true	"place id"
//	@Success	200	{object}	detailsResponse
//	@Failure	500	{object}	errorResponse
//	@Router		/api/places/{id} [get]
func (h *PlacesHandler) Details(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		badRequest(c, "missing required path parameter 'id'")
		return
	}

	details, err := h.service.Details(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch place details")
		return
	}

	c.JSON(http.StatusOK, detailsResponse{Success: true, Data: details})
}
