package handler

import (
	"errors"
	"net/http"

	"places-api/internal/foursquare"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// errorResponse is the body of every failed API call.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

// respondError maps upstream API failures to their own status and
// everything else to 500 with a generic message.
func respondError(c *gin.Context, err error, msg string) {
	var upstream *foursquare.UpstreamError
	if errors.As(err, &upstream) {
		log.Warn().Err(err).Int("upstream_status", upstream.StatusCode).Msg(msg)
		c.JSON(upstream.StatusCode, errorResponse{
			Error:   upstream.Error(),
			Details: upstream.Body,
		})
		return
	}

	log.Error().Err(err).Msg(msg)
	c.JSON(http.StatusInternalServerError, errorResponse{Error: msg})
}
