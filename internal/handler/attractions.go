package handler

import (
	"context"
	"net/http"

	"places-api/internal/models"

	"github.com/gin-gonic/gin"
)

// CatalogService interface for dependency injection
type CatalogService interface {
	Attractions(context.Context, models.QuerySpec) (models.QueryResult, error)
	Suggest(context.Context, string) ([]models.Place, error)
}

// AttractionsHandler serves the curated attraction catalog
type AttractionsHandler struct {
	service CatalogService
}

// NewAttractionsHandler creates a new attractions handler
func NewAttractionsHandler(svc CatalogService) *AttractionsHandler {
	return &AttractionsHandler{service: svc}
}

// List handles GET /api/attractions requests
//
//	@Summary	Query the attraction catalog
//	@Tags		attractions
//	@Produce	json
//	@Param		q			query	string	false	"filter text"
//	@Param		type		query	string	false	"landmark, city, nature, historical or all"
//	@Param		continent	query	string	false	"continent or all"
//	@Param		min_rating	query	number	false	"minimum rating (0-5)"
//	@Param		featured	query	bool	false	"featured places only"
//	@Param		sort		query	string	false	"relevance, rating, views or name"
//	@Success	200	{object}	listResponse
//	@Failure	400	{object}	errorResponse
//	@Router		/api/attractions [get]
func (h *AttractionsHandler) List(c *gin.Context) {
	spec, err := parseQuerySpec(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	result, err := h.service.Attractions(c.Request.Context(), spec)
	if err != nil {
		respondError(c, err, "Failed to fetch attractions")
		return
	}

	c.JSON(http.StatusOK, listResponse{Success: true, Data: result.Places, Total: result.Total})
}

// Suggest handles GET /api/search/suggest requests
//
//	@Summary	Quick search over the catalog
//	@Tags		attractions
//	@Produce	json
//	@Param		q	query	string	true	"search text"
//	@Success	200	{object}	listResponse
//	@Router		/api/search/suggest [get]
func (h *AttractionsHandler) Suggest(c *gin.Context) {
	hits, err := h.service.Suggest(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err, "Failed to search attractions")
		return
	}

	c.JSON(http.StatusOK, listResponse{Success: true, Data: hits, Total: len(hits)})
}
